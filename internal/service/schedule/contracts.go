package schedule

import (
	"context"

	"github.com/eywa-crm/EYWA-ScheduleService/internal/domain"
)

// BookingRepository интерфейс репозитория записей расписания
type BookingRepository interface {
	Create(ctx context.Context, bk *domain.Booking) (*domain.Booking, error)
	GetByPublicID(ctx context.Context, publicID string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	Update(ctx context.Context, bk *domain.Booking) (*domain.Booking, error)
	Delete(ctx context.Context, publicID string) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
