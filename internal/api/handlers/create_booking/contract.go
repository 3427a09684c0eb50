package create_booking

import (
	"context"

	"github.com/eywa-crm/EYWA-ScheduleService/internal/service/schedule/models"
)

type ScheduleService interface {
	Create(ctx context.Context, req *models.CreateBookingRequest) (*models.BookingResponse, error)
}

type Validator interface {
	Struct(s interface{}) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
