package get_booking

import (
	"context"

	"github.com/eywa-crm/EYWA-ScheduleService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetByPublicID(ctx context.Context, publicID string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
