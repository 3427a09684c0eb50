package get_schedule_analytics

import (
	"context"
	"time"

	"github.com/eywa-crm/EYWA-ScheduleService/internal/service/analytics/models"
)

type AnalyticsService interface {
	GetAnalytics(ctx context.Context, startDate, endDate *time.Time) (*models.ScheduleAnalytics, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
