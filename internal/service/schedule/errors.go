package schedule

import "errors"

var (
	// ErrBookingNotFound возвращается, когда запись не найдена
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCapacityExceeded возвращается, когда клиентов больше, чем мест
	// Нарушение вместимости - детерминированная бизнес-ошибка,
	// запись в хранилище при этом не меняется
	ErrCapacityExceeded = errors.New("booking capacity exceeded")

	// ErrInvalidInput возвращается при некорректных входных данных
	// (неверный формат даты, времени, неизвестный статус)
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule service: internal error")
)
