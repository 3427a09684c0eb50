package clients

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/eywa-crm/EYWA-ScheduleService/pkg/psqlbuilder"
	"github.com/eywa-crm/EYWA-ScheduleService/pkg/txmanager"
)

// Repository read-side репозиторий клиентов для KPI дашборда
// Таблицей clients владеет клиентский модуль, здесь только подсчеты
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// CountCreatedBetween возвращает число клиентов, заведенных за период
// Границы периода включительные
func (r *Repository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(id)").
		From("clients").
		Where(squirrel.Expr("created_at::date >= ?", from)).
		Where(squirrel.Expr("created_at::date <= ?", to)).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountCreatedBetween - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountCreatedBetween - execute query: %v", ErrExecQuery, err)
	}

	return count, nil
}
