package analytics

import (
	"context"
	"time"

	"github.com/eywa-crm/EYWA-ScheduleService/internal/domain"
)

// BookingRepository интерфейс репозитория записей расписания
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
}

// TimeProvider источник текущего времени
// Нужен, чтобы окно "текущая неделя" было детерминированным в тестах
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider на системных часах
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
