package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CampService/internal/domain"
	"github.com/m04kA/SMC-CampService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CampService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"tent_id",
	"mobile",
	"notes",
	"is_vip",
	"check_in_date",
	"check_out_date",
	"status",
	"created_by",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями и участниками групп
type Repository struct {
	db DBExecutor
}

// toDateArg передает значение для DATE-колонки текстом YYYY-MM-DD в календаре
// самого time.Time. Зонированный timestamptz Postgres привел бы к дате через
// часовой пояс сессии БД и сдвинул бы календарный день
func toDateArg(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(domain.DateFormat)
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование вместе с участниками группы
// Порядок members сохраняется через position; member с position 0 — team head.
// Вызывающий обязан обернуть вызов в транзакцию: вставка бронирования и участников
// должна быть атомарной, чтобы не оставлять осиротевшие строки при ошибке
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"tent_id",
			"mobile",
			"notes",
			"is_vip",
			"check_in_date",
			"check_out_date",
			"status",
			"created_by",
		).
		Values(
			booking.TentID,
			booking.Mobile,
			booking.Notes,
			booking.IsVIP,
			toDateArg(booking.CheckInDate),
			toDateArg(booking.CheckOutDate),
			booking.Status,
			booking.CreatedBy,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	if len(booking.Members) == 0 {
		return booking, nil
	}

	insertMembers := psqlbuilder.Insert("members").
		Columns("booking_id", "position", "name", "age", "gender")

	for i := range booking.Members {
		insertMembers = insertMembers.Values(
			booking.ID,
			i,
			booking.Members[i].Name,
			booking.Members[i].Age,
			booking.Members[i].Gender,
		)
	}

	query, args, err = insertMembers.Suffix("RETURNING id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build members insert: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - insert members: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	// RETURNING id для multi-values INSERT возвращает id в порядке вставки
	for i := 0; rows.Next(); i++ {
		if err := rows.Scan(&booking.Members[i].ID); err != nil {
			return nil, fmt.Errorf("%w: Create - scan member id: %v", ErrScanRow, err)
		}
		booking.Members[i].BookingID = booking.ID
		booking.Members[i].Position = i
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Create - members rows error: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByID получает бронирование с участниками по ID
// Внутри транзакции блокирует строку бронирования (FOR UPDATE) — на этом строится
// атомарность переходов статуса: второй конкурентный переход увидит новое состояние
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	members, err := r.loadMembers(ctx, []int64{booking.ID})
	if err != nil {
		return nil, err
	}
	booking.Members = members[booking.ID]

	return booking, nil
}

// GetByTentWithFilter получает бронирования палатки с фильтрацией по статусу
// По умолчанию возвращает только активные (CONFIRMED, CHECKED_IN) бронирования
func (r *Repository) GetByTentWithFilter(ctx context.Context, filter domain.TentBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"tent_id": filter.TentID}).
		OrderBy("created_at DESC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		activeStatusStrings := make([]string, len(domain.ActiveStatuses))
		for i, s := range domain.ActiveStatuses {
			activeStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": activeStatusStrings})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTentWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTentWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, err
	}

	if len(bookings) == 0 {
		return bookings, nil
	}

	ids := make([]int64, len(bookings))
	for i, b := range bookings {
		ids[i] = b.ID
	}

	members, err := r.loadMembers(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, b := range bookings {
		b.Members = members[b.ID]
	}

	return bookings, nil
}

// GetMemberByID получает участника по ID
func (r *Repository) GetMemberByID(ctx context.Context, id int64) (*domain.Member, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "booking_id", "position", "name", "age", "gender").
		From("members").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetMemberByID - build select query: %v", ErrBuildQuery, err)
	}

	var member domain.Member
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&member.ID,
		&member.BookingID,
		&member.Position,
		&member.Name,
		&member.Age,
		&member.Gender,
	)

	if err == sql.ErrNoRows {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetMemberByID - scan member: %v", ErrScanRow, err)
	}

	return &member, nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateStatus")
}

// UpdateCheckOutDate проставляет дату выезда
func (r *Repository) UpdateCheckOutDate(ctx context.Context, id int64, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("check_out_date", toDateArg(&date)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateCheckOutDate - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateCheckOutDate")
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Cancel")
}

// UpdateSharedInfo обновляет групповые поля бронирования (mobile/notes/даты)
func (r *Repository) UpdateSharedInfo(ctx context.Context, id int64, patch domain.BookingSharedPatch) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if patch.Mobile != nil {
		updateBuilder = updateBuilder.Set("mobile", *patch.Mobile)
	}
	if patch.Notes != nil {
		updateBuilder = updateBuilder.Set("notes", *patch.Notes)
	}
	if patch.CheckInDate != nil {
		updateBuilder = updateBuilder.Set("check_in_date", toDateArg(patch.CheckInDate))
	}
	if patch.CheckOutDate != nil {
		updateBuilder = updateBuilder.Set("check_out_date", toDateArg(patch.CheckOutDate))
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateSharedInfo - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateSharedInfo")
}

// UpdateMemberIdentity обновляет личные поля участника (name/age/gender)
func (r *Repository) UpdateMemberIdentity(ctx context.Context, memberID int64, patch domain.MemberIdentityPatch) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("members").
		Where(squirrel.Eq{"id": memberID})

	if patch.Name != nil {
		updateBuilder = updateBuilder.Set("name", *patch.Name)
	}
	if patch.Age != nil {
		updateBuilder = updateBuilder.Set("age", *patch.Age)
	}
	if patch.Gender != nil {
		updateBuilder = updateBuilder.Set("gender", *patch.Gender)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateMemberIdentity - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateMemberIdentity - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateMemberIdentity - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrMemberNotFound
	}

	return nil
}

// CountActiveMembers вычисляет текущую занятость палатки:
// сумму размеров групп по всем бронированиям в статусах CONFIRMED и CHECKED_IN.
// Занятость нигде не хранится — всегда вычисляется по живым строкам
func (r *Repository) CountActiveMembers(ctx context.Context, tentID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatusStrings := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatusStrings[i] = string(s)
	}

	query, args, err := psqlbuilder.Select("COUNT(m.id)").
		From("members m").
		Join("bookings b ON b.id = m.booking_id").
		Where(squirrel.Eq{"b.tent_id": tentID}).
		Where(squirrel.Eq{"b.status": activeStatusStrings}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveMembers - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveMembers - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// HasActiveByTent проверяет наличие активных бронирований у палатки
// Используется как явный guard перед удалением палатки
func (r *Repository) HasActiveByTent(ctx context.Context, tentID int64) (bool, error) {
	return r.hasActive(ctx, squirrel.Eq{"b.tent_id": tentID}, "HasActiveByTent", "")
}

// HasActiveBySector проверяет наличие активных бронирований у любой палатки сектора
// Используется как явный guard перед массовым удалением палаток сектора
func (r *Repository) HasActiveBySector(ctx context.Context, sectorID int64) (bool, error) {
	return r.hasActive(ctx, squirrel.Eq{"t.sector_id": sectorID}, "HasActiveBySector", "JOIN tents t ON t.id = b.tent_id")
}

func (r *Repository) hasActive(ctx context.Context, where squirrel.Eq, op, join string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatusStrings := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatusStrings[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select("1").
		From("bookings b")

	if join != "" {
		selectBuilder = selectBuilder.JoinClause(join)
	}

	query, args, err := selectBuilder.
		Where(where).
		Where(squirrel.Eq{"b.status": activeStatusStrings}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
	}

	return true, nil
}

// GetOverdue находит просроченные проживания: статус CHECKED_IN и плановая дата
// выезда строго раньше before (начала текущего календарного дня).
// Возвращает контекст для текста уведомления: палатку, сектор, событие, team head
func (r *Repository) GetOverdue(ctx context.Context, before time.Time) ([]*domain.OverdueStay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.id",
		"b.tent_id",
		"t.name",
		"s.name",
		"s.event_id",
		"b.check_out_date",
		"COALESCE((SELECT m.name FROM members m WHERE m.booking_id = b.id AND m.position = 0), '')",
		"(SELECT COUNT(*) FROM members m WHERE m.booking_id = b.id)",
	).
		From("bookings b").
		Join("tents t ON t.id = b.tent_id").
		Join("sectors s ON s.id = t.sector_id").
		Where(squirrel.Eq{"b.status": domain.StatusCheckedIn}).
		Where(squirrel.NotEq{"b.check_out_date": nil}).
		Where(squirrel.Lt{"b.check_out_date": toDateArg(&before)}).
		OrderBy("b.check_out_date ASC, b.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOverdue - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverdue - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	stays := make([]*domain.OverdueStay, 0)
	for rows.Next() {
		var stay domain.OverdueStay
		err := rows.Scan(
			&stay.BookingID,
			&stay.TentID,
			&stay.TentName,
			&stay.SectorName,
			&stay.EventID,
			&stay.CheckOutDate,
			&stay.HeadName,
			&stay.MemberCount,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetOverdue - scan row: %v", ErrScanRow, err)
		}
		stays = append(stays, &stay)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOverdue - rows error: %v", ErrScanRow, err)
	}

	return stays, nil
}

func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// loadMembers загружает участников для набора бронирований одним запросом
// Результат сгруппирован по booking_id, внутри группы упорядочен по position
func (r *Repository) loadMembers(ctx context.Context, bookingIDs []int64) (map[int64][]domain.Member, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "booking_id", "position", "name", "age", "gender").
		From("members").
		Where(squirrel.Eq{"booking_id": bookingIDs}).
		OrderBy("booking_id ASC, position ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: loadMembers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadMembers - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make(map[int64][]domain.Member, len(bookingIDs))
	for rows.Next() {
		var member domain.Member
		err := rows.Scan(
			&member.ID,
			&member.BookingID,
			&member.Position,
			&member.Name,
			&member.Age,
			&member.Gender,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: loadMembers - scan row: %v", ErrScanRow, err)
		}
		result[member.BookingID] = append(result[member.BookingID], member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadMembers - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

func scanBooking(row *sql.Row) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.TentID,
		&booking.Mobile,
		&booking.Notes,
		&booking.IsVIP,
		&booking.CheckInDate,
		&booking.CheckOutDate,
		&booking.Status,
		&booking.CreatedBy,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanBooking - scan row: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.TentID,
			&booking.Mobile,
			&booking.Notes,
			&booking.IsVIP,
			&booking.CheckInDate,
			&booking.CheckOutDate,
			&booking.Status,
			&booking.CreatedBy,
			&booking.CancellationReason,
			&booking.CancelledAt,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
