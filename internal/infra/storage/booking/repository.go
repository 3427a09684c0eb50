package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/eywa-crm/EYWA-ScheduleService/internal/domain"
	"github.com/eywa-crm/EYWA-ScheduleService/pkg/psqlbuilder"
	"github.com/eywa-crm/EYWA-ScheduleService/pkg/txmanager"
)

var bookingColumns = []string{
	"id",
	"public_id",
	"booking_date",
	"booking_time",
	"category",
	"service_name",
	"trainer_id",
	"trainer_name",
	"clients",
	"max_capacity",
	"current_count",
	"status",
	"notes",
	"capsule_id",
	"capsule_name",
	"created_at",
	"updated_at",
}

// Repository репозиторий записей расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись в расписании
// Проверка вместимости выполняется на уровне сервиса до вызова
func (r *Repository) Create(ctx context.Context, bk *domain.Booking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	clientsJSON, err := json.Marshal(bk.Clients)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal clients: %v", ErrEncodeClients, err)
	}

	query, args, err := psqlbuilder.Insert("schedule_bookings").
		Columns(
			"public_id",
			"booking_date",
			"booking_time",
			"category",
			"service_name",
			"trainer_id",
			"trainer_name",
			"clients",
			"max_capacity",
			"current_count",
			"status",
			"notes",
			"capsule_id",
			"capsule_name",
		).
		Values(
			bk.PublicID,
			bk.Date,
			bk.Time,
			bk.Category,
			bk.ServiceName,
			bk.TrainerID,
			bk.TrainerName,
			clientsJSON,
			bk.MaxCapacity,
			bk.CurrentCount,
			bk.Status,
			bk.Notes,
			bk.CapsuleID,
			bk.CapsuleName,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&bk.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	bk.CreatedAt = createdAt.Time
	bk.UpdatedAt = updatedAt.Time

	return bk, nil
}

// GetByPublicID получает запись по внешнему идентификатору
// Внутри транзакции строка блокируется через FOR UPDATE: так проверка
// вместимости при обновлении не гоняется с другими писателями
func (r *Repository) GetByPublicID(ctx context.Context, publicID string) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("schedule_bookings").
		Where(squirrel.Eq{"public_id": publicID})

	if txmanager.InTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPublicID - build select query: %v", ErrBuildQuery, err)
	}

	bk, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPublicID - scan booking: %v", ErrScanRow, err)
	}

	return bk, nil
}

// List получает записи по фильтру
// Все условия фильтра объединяются через AND, границы диапазона дат
// включительные, результат отсортирован по (дата, время) по возрастанию
func (r *Repository) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := listQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// Update перезаписывает изменяемые поля записи по public_id
// Сервис собирает итоговое состояние из исходной строки и патча,
// репозиторий не принимает решений о частичности
func (r *Repository) Update(ctx context.Context, bk *domain.Booking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	clientsJSON, err := json.Marshal(bk.Clients)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - marshal clients: %v", ErrEncodeClients, err)
	}

	query, args, err := psqlbuilder.Update("schedule_bookings").
		Set("booking_date", bk.Date).
		Set("booking_time", bk.Time).
		Set("category", bk.Category).
		Set("service_name", bk.ServiceName).
		Set("trainer_id", bk.TrainerID).
		Set("trainer_name", bk.TrainerName).
		Set("clients", clientsJSON).
		Set("max_capacity", bk.MaxCapacity).
		Set("current_count", bk.CurrentCount).
		Set("status", bk.Status).
		Set("notes", bk.Notes).
		Set("capsule_id", bk.CapsuleID).
		Set("capsule_name", bk.CapsuleName).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"public_id": bk.PublicID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	bk.UpdatedAt = updatedAt.Time

	return bk, nil
}

// Delete удаляет запись по public_id
// Возвращает false без ошибки, если записи не было
func (r *Repository) Delete(ctx context.Context, publicID string) (bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("schedule_bookings").
		Where(squirrel.Eq{"public_id": publicID}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

// listQuery строит SELECT по фильтру
// Все условия объединяются через AND, границы диапазона дат
// включительные (>= и <=), сортировка по (дата, время) по возрастанию
func listQuery(filter domain.BookingFilter) (string, []interface{}, error) {
	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("schedule_bookings")

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}
	if filter.Category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": *filter.Category})
	}
	if len(filter.Categories) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": filter.Categories})
	}
	if filter.TrainerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"trainer_id": *filter.TrainerID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Tag != nil {
		selectBuilder = selectBuilder.Where(tagCondition(*filter.Tag))
	}

	return selectBuilder.OrderBy("booking_date ASC", "booking_time ASC").ToSql()
}

// tagCondition переводит нормализованный тег категории в SQL-условие
// Коворкинг и детские записи исторически заводились с произвольными
// названиями категорий, поэтому отбираются по подстроке
func tagCondition(tag domain.CategoryTag) squirrel.Sqlizer {
	switch tag {
	case domain.TagCoworking:
		or := squirrel.Or{}
		for _, pattern := range domain.CoworkingLikePatterns() {
			or = append(or, squirrel.ILike{"category": pattern})
		}
		or = append(or, squirrel.NotEq{"capsule_id": nil})
		return or
	case domain.TagKids:
		or := squirrel.Or{}
		for _, pattern := range domain.KidsLikePatterns() {
			or = append(or, squirrel.ILike{"category": pattern})
		}
		return or
	case domain.TagBodyMind:
		return squirrel.Eq{"category": domain.CategoryBodyMind}
	case domain.TagReformer:
		return squirrel.Eq{"category": domain.CategoryPilatesReformer}
	default:
		return squirrel.Eq{"category": domain.ClassCategories}
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в domain.Booking
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var bk domain.Booking
	var clientsJSON []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&bk.ID,
		&bk.PublicID,
		&bk.Date,
		&bk.Time,
		&bk.Category,
		&bk.ServiceName,
		&bk.TrainerID,
		&bk.TrainerName,
		&clientsJSON,
		&bk.MaxCapacity,
		&bk.CurrentCount,
		&bk.Status,
		&bk.Notes,
		&bk.CapsuleID,
		&bk.CapsuleName,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	bk.Clients = make([]domain.ClientRef, 0)
	if len(clientsJSON) > 0 {
		if err := json.Unmarshal(clientsJSON, &bk.Clients); err != nil {
			return nil, fmt.Errorf("unmarshal clients: %v", err)
		}
	}

	bk.CreatedAt = createdAt.Time
	bk.UpdatedAt = updatedAt.Time

	return &bk, nil
}

// scanBookings сканирует результаты запроса в слайс записей
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		bk, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, bk)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
