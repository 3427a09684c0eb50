package list_bookings

import (
	"context"

	"github.com/eywa-crm/EYWA-ScheduleService/internal/service/schedule/models"
)

type ScheduleService interface {
	List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
