package notification

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CampService/internal/domain"
	"github.com/m04kA/SMC-CampService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CampService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с уведомлениями
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория уведомлений
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет уведомление
func (r *Repository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("notifications").
		Columns("event_id", "target_role", "message", "type").
		Values(n.EventID, n.TargetRole, n.Message, n.Type).
		Suffix("RETURNING id, is_read, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&n.ID, &n.IsRead, &n.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return n, nil
}

// ListVisible возвращает уведомления, видимые зрителю, новые первыми, не более limit
// Правило видимости: событие совпадает или уведомление системное (event_id IS NULL),
// и targetRole пустой, 'ALL' или совпадает с ролью зрителя
func (r *Repository) ListVisible(ctx context.Context, filter domain.NotificationsFilter, limit uint64) ([]*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.visibleBuilder(psqlbuilder.Select(
		"id",
		"event_id",
		"target_role",
		"message",
		"type",
		"is_read",
		"created_at",
	), filter).
		OrderBy("created_at DESC, id DESC").
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListVisible - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListVisible - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		var n domain.Notification
		err := rows.Scan(
			&n.ID,
			&n.EventID,
			&n.TargetRole,
			&n.Message,
			&n.Type,
			&n.IsRead,
			&n.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListVisible - scan row: %v", ErrScanRow, err)
		}
		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListVisible - rows error: %v", ErrScanRow, err)
	}

	return notifications, nil
}

// CountUnread возвращает число непрочитанных уведомлений по тому же фильтру видимости
func (r *Repository) CountUnread(ctx context.Context, filter domain.NotificationsFilter) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.visibleBuilder(psqlbuilder.Select("COUNT(*)"), filter).
		Where(squirrel.Eq{"is_read": false}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountUnread - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountUnread - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// MarkRead помечает уведомления из явного набора id прочитанными
// Флаг read меняется только false → true; уже прочитанные строки не трогаются
func (r *Repository) MarkRead(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("notifications").
		Set("is_read", true).
		Where(squirrel.Eq{"id": ids}).
		Where(squirrel.Eq{"is_read": false}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: MarkRead - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: MarkRead - execute update: %v", ErrExecQuery, err)
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: MarkRead - get rows affected: %v", ErrExecQuery, err)
	}

	return updated, nil
}

// visibleBuilder применяет фильтр видимости зрителя к builder'у
func (r *Repository) visibleBuilder(selectBuilder squirrel.SelectBuilder, filter domain.NotificationsFilter) squirrel.SelectBuilder {
	selectBuilder = selectBuilder.From("notifications")

	// Скоуп события: системные уведомления видны всем; событийные — только в своем событии
	if filter.EventID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"event_id": nil},
			squirrel.Eq{"event_id": *filter.EventID},
		})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"event_id": nil})
	}

	// Скоуп роли: NULL и 'ALL' видны любой роли
	selectBuilder = selectBuilder.Where(squirrel.Or{
		squirrel.Eq{"target_role": nil},
		squirrel.Eq{"target_role": domain.TargetRoleAll},
		squirrel.Eq{"target_role": filter.Role},
	})

	if filter.OnlyUnread {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_read": false})
	}

	return selectBuilder
}
