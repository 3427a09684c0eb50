package get_dashboard_summary

import (
	"context"

	"github.com/eywa-crm/EYWA-ScheduleService/internal/service/dashboard/models"
)

type DashboardService interface {
	GetSummary(ctx context.Context) (*models.DashboardSummary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
