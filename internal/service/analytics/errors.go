package analytics

import "errors"

var (
	// ErrInvalidPeriod возвращается при некорректном диапазоне дат
	ErrInvalidPeriod = errors.New("invalid analytics period")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("analytics service: internal error")
)
