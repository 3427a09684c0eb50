package payments

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/eywa-crm/EYWA-ScheduleService/pkg/psqlbuilder"
	"github.com/eywa-crm/EYWA-ScheduleService/pkg/txmanager"
)

const statusCompleted = "completed"

// Repository read-side репозиторий платежей для KPI дашборда
// Таблицей payments владеет платежный модуль, здесь только агрегаты
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// SumCompletedAmount возвращает сумму завершенных платежей за период
// Границы периода включительные, сравнение по дате создания платежа
func (r *Repository) SumCompletedAmount(ctx context.Context, from, to time.Time) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(total_amount), 0)").
		From("payments").
		Where(squirrel.Expr("created_at::date >= ?", from)).
		Where(squirrel.Expr("created_at::date <= ?", to)).
		Where(squirrel.Eq{"status": statusCompleted}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: SumCompletedAmount - build select query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: SumCompletedAmount - execute query: %v", ErrExecQuery, err)
	}

	return total, nil
}

// CountSubscriptionsSold возвращает число проданных абонементов за период
//
// Абонементом считается завершенный платеж по Body-направлению
// (категория или название услуги содержит "body"), который не является
// разовым занятием: quantity > 1 либо в названии услуги есть "абонемент".
// Повторные оплаты одного клиента за одну услугу схлопываются в один
// абонемент группировкой по (клиент, услуга)
func (r *Repository) CountSubscriptionsSold(ctx context.Context, from, to time.Time) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	grouped := psqlbuilder.Select(
		"COALESCE(client_id, client_name) AS client_key",
		"service_name",
	).
		From("payments").
		Where(squirrel.Expr("created_at::date >= ?", from)).
		Where(squirrel.Expr("created_at::date <= ?", to)).
		Where(squirrel.Eq{"status": statusCompleted}).
		Where(squirrel.Gt{"quantity": 0}).
		Where(squirrel.Or{
			squirrel.ILike{"service_category": "%body%"},
			squirrel.ILike{"service_name": "%body%"},
		}).
		Where(squirrel.Or{
			squirrel.Gt{"quantity": 1},
			squirrel.ILike{"service_name": "%абонемент%"},
		}).
		GroupBy("COALESCE(client_id, client_name)", "service_name")

	query, args, err := psqlbuilder.Select("COUNT(*)").
		FromSelect(grouped, "sold").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountSubscriptionsSold - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: CountSubscriptionsSold - execute query: %v", ErrExecQuery, err)
	}

	return count, nil
}
