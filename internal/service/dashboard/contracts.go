package dashboard

import (
	"context"
	"time"

	"github.com/eywa-crm/EYWA-ScheduleService/internal/domain"
	analyticsModels "github.com/eywa-crm/EYWA-ScheduleService/internal/service/analytics/models"
)

// BookingRepository интерфейс репозитория записей расписания
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
}

// PaymentsRepository агрегаты платежей для KPI
type PaymentsRepository interface {
	SumCompletedAmount(ctx context.Context, from, to time.Time) (int64, error)
	CountSubscriptionsSold(ctx context.Context, from, to time.Time) (int64, error)
}

// ClientsRepository агрегаты клиентской базы для KPI
type ClientsRepository interface {
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}

// HighlightsRepository заметки дашборда
type HighlightsRepository interface {
	ListHighlights(ctx context.Context) ([]*domain.Highlight, error)
}

// AnalyticsProvider аналитика загрузки групповых занятий
type AnalyticsProvider interface {
	GetAnalytics(ctx context.Context, startDate, endDate *time.Time) (*analyticsModels.ScheduleAnalytics, error)
}

// TimeProvider источник текущего времени
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
