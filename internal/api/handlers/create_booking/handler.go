package create_booking

import (
	"errors"
	"net/http"

	"github.com/eywa-crm/EYWA-ScheduleService/internal/api/handlers"
	"github.com/eywa-crm/EYWA-ScheduleService/internal/api/validation"
	scheduleService "github.com/eywa-crm/EYWA-ScheduleService/internal/service/schedule"
	"github.com/eywa-crm/EYWA-ScheduleService/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgCapacityExceeded   = "количество клиентов превышает вместимость"
	msgInvalidRequest     = "некорректные данные записи"
)

type Handler struct {
	service   ScheduleService
	validator Validator
	logger    Logger
}

func NewHandler(service ScheduleService, validator Validator, logger Logger) *Handler {
	return &Handler{
		service:   service,
		validator: validator,
		logger:    logger,
	}
}

// Handle POST /api/v1/schedule/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedule/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		var validationErrs validation.ValidationErrors
		if errors.As(err, &validationErrs) {
			h.logger.Warn("POST /schedule/bookings - Validation failed: %v", validationErrs)
			handlers.RespondBadRequest(w, validationErrs.Error())
			return
		}
		h.logger.Error("POST /schedule/bookings - Validator error: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrCapacityExceeded):
			h.logger.Warn("POST /schedule/bookings - Capacity exceeded: category=%s, max=%d",
				req.Category, req.MaxCapacity)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("POST /schedule/bookings - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /schedule/bookings - Failed to create booking: category=%s, error=%v",
				req.Category, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule/bookings - Booking created: id=%s, category=%s, date=%s %s",
		result.ID, result.Category, result.BookingDate, result.BookingTime)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
