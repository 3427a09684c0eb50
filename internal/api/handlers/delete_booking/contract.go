package delete_booking

import "context"

type ScheduleService interface {
	Delete(ctx context.Context, publicID string) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
