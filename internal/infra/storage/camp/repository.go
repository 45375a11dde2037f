package camp

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CampService/internal/domain"
	"github.com/m04kA/SMC-CampService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CampService/pkg/psqlbuilder"
)

// pgUniqueViolation код нарушения уникальности PostgreSQL
const pgUniqueViolation = "23505"

// Repository репозиторий для работы с секторами и палатками
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateSector создает сектор
func (r *Repository) CreateSector(ctx context.Context, sector *domain.Sector) (*domain.Sector, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("sectors").
		Columns("event_id", "name").
		Values(sector.EventID, sector.Name).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateSector - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&sector.ID, &sector.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateSector - execute insert: %v", ErrExecQuery, err)
	}

	return sector, nil
}

// GetSectorByID получает сектор по ID
func (r *Repository) GetSectorByID(ctx context.Context, id int64) (*domain.Sector, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "event_id", "name", "created_at").
		From("sectors").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSectorByID - build select query: %v", ErrBuildQuery, err)
	}

	var sector domain.Sector
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sector.ID,
		&sector.EventID,
		&sector.Name,
		&sector.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSectorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSectorByID - scan sector: %v", ErrScanRow, err)
	}

	return &sector, nil
}

// RenameSector переименовывает сектор
func (r *Repository) RenameSector(ctx context.Context, id int64, name string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("sectors").
		Set("name", name).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: RenameSector - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "RenameSector", ErrSectorNotFound)
}

// DeleteSector удаляет сектор
func (r *Repository) DeleteSector(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("sectors").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteSector - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "DeleteSector", ErrSectorNotFound)
}

// CountTentsBySector возвращает количество палаток в секторе
func (r *Repository) CountTentsBySector(ctx context.Context, sectorID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("tents").
		Where(squirrel.Eq{"sector_id": sectorID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountTentsBySector - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountTentsBySector - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// CreateTent создает одну палатку
func (r *Repository) CreateTent(ctx context.Context, tent *domain.Tent) (*domain.Tent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tents").
		Columns("sector_id", "name", "capacity").
		Values(tent.SectorID, tent.Name, tent.Capacity).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateTent - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&tent.ID, &tent.CreatedAt, &tent.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateTentName
		}
		return nil, fmt.Errorf("%w: CreateTent - execute insert: %v", ErrExecQuery, err)
	}

	return tent, nil
}

// CreateTents создает пакет палаток одним INSERT
// Уникальный индекс (sector_id, name) отклоняет весь пакет при любой коллизии имен:
// вставляются либо все строки, либо ни одной
func (r *Repository) CreateTents(ctx context.Context, tents []*domain.Tent) ([]*domain.Tent, error) {
	if len(tents) == 0 {
		return tents, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("tents").
		Columns("sector_id", "name", "capacity")

	for _, tent := range tents {
		insertBuilder = insertBuilder.Values(tent.SectorID, tent.Name, tent.Capacity)
	}

	query, args, err := insertBuilder.
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateTents - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateTentName
		}
		return nil, fmt.Errorf("%w: CreateTents - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for i := 0; rows.Next(); i++ {
		if err := rows.Scan(&tents[i].ID, &tents[i].CreatedAt, &tents[i].UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: CreateTents - scan row: %v", ErrScanRow, err)
		}
	}
	if err := rows.Err(); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateTentName
		}
		return nil, fmt.Errorf("%w: CreateTents - rows error: %v", ErrScanRow, err)
	}

	return tents, nil
}

// GetTentByID получает палатку по ID
func (r *Repository) GetTentByID(ctx context.Context, id int64) (*domain.Tent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "sector_id", "name", "capacity", "created_at", "updated_at").
		From("tents").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetTentByID - build select query: %v", ErrBuildQuery, err)
	}

	var tent domain.Tent
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tent.ID,
		&tent.SectorID,
		&tent.Name,
		&tent.Capacity,
		&tent.CreatedAt,
		&tent.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetTentByID - scan tent: %v", ErrScanRow, err)
	}

	return &tent, nil
}

// GetTentsBySector получает палатки сектора, отсортированные по имени
func (r *Repository) GetTentsBySector(ctx context.Context, sectorID int64) ([]*domain.Tent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "sector_id", "name", "capacity", "created_at", "updated_at").
		From("tents").
		Where(squirrel.Eq{"sector_id": sectorID}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetTentsBySector - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTentsBySector - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tents := make([]*domain.Tent, 0)
	for rows.Next() {
		var tent domain.Tent
		err := rows.Scan(
			&tent.ID,
			&tent.SectorID,
			&tent.Name,
			&tent.Capacity,
			&tent.CreatedAt,
			&tent.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetTentsBySector - scan row: %v", ErrScanRow, err)
		}
		tents = append(tents, &tent)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetTentsBySector - rows error: %v", ErrScanRow, err)
	}

	return tents, nil
}

// UpdateTent обновляет имя и вместимость палатки
func (r *Repository) UpdateTent(ctx context.Context, id int64, name string, capacity int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tents").
		Set("name", name).
		Set("capacity", capacity).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateTent - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateTentName
		}
		return fmt.Errorf("%w: UpdateTent - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateTent - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrTentNotFound
	}

	return nil
}

// DeleteTent удаляет палатку
// Проверка отсутствия активных бронирований — ответственность сервисного слоя
func (r *Repository) DeleteTent(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("tents").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteTent - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "DeleteTent", ErrTentNotFound)
}

// DeleteTentsBySector удаляет все палатки сектора, возвращает количество удаленных
func (r *Repository) DeleteTentsBySector(ctx context.Context, sectorID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("tents").
		Where(squirrel.Eq{"sector_id": sectorID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteTentsBySector - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteTentsBySector - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteTentsBySector - get rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}

// GetEventIDByTent возвращает событие, к которому относится палатка (через её сектор)
func (r *Repository) GetEventIDByTent(ctx context.Context, tentID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("s.event_id").
		From("tents t").
		Join("sectors s ON s.id = t.sector_id").
		Where(squirrel.Eq{"t.id": tentID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: GetEventIDByTent - build select query: %v", ErrBuildQuery, err)
	}

	var eventID int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&eventID)
	if err == sql.ErrNoRows {
		return 0, ErrTentNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: GetEventIDByTent - scan row: %v", ErrScanRow, err)
	}

	return eventID, nil
}

func (r *Repository) execExpectingRow(ctx context.Context, executor dbmetrics.DBExecutor, query string, args []interface{}, op string, notFound error) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return notFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	return false
}
