package update_booking

import (
	"context"

	"github.com/eywa-crm/EYWA-ScheduleService/internal/service/schedule/models"
)

type ScheduleService interface {
	Update(ctx context.Context, publicID string, req *models.UpdateBookingRequest) (*models.BookingResponse, error)
}

type Validator interface {
	Struct(s interface{}) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
