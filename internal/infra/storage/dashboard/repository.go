package dashboard

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/eywa-crm/EYWA-ScheduleService/internal/domain"
	"github.com/eywa-crm/EYWA-ScheduleService/pkg/psqlbuilder"
	"github.com/eywa-crm/EYWA-ScheduleService/pkg/txmanager"
)

// Repository репозиторий рукописных заметок дашборда
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр репозитория дашборда
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// ListHighlights возвращает заметки в порядке, заданном менеджерами
// Пустой список - валидный результат, никаких заглушек
func (r *Repository) ListHighlights(ctx context.Context) ([]*domain.Highlight, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"title",
		"detail",
		"tone",
		"sort_order",
		"created_at",
		"updated_at",
	).
		From("dashboard_highlights").
		OrderBy("sort_order ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListHighlights - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListHighlights - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	highlights := make([]*domain.Highlight, 0)
	for rows.Next() {
		var h domain.Highlight
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&h.ID,
			&h.Title,
			&h.Detail,
			&h.Tone,
			&h.SortOrder,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListHighlights - scan row: %v", ErrScanRow, err)
		}

		h.CreatedAt = createdAt.Time
		h.UpdatedAt = updatedAt.Time

		highlights = append(highlights, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListHighlights - rows error: %v", ErrScanRow, err)
	}

	return highlights, nil
}
