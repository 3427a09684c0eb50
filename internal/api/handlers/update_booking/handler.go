package update_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/eywa-crm/EYWA-ScheduleService/internal/api/handlers"
	"github.com/eywa-crm/EYWA-ScheduleService/internal/api/validation"
	scheduleService "github.com/eywa-crm/EYWA-ScheduleService/internal/service/schedule"
	"github.com/eywa-crm/EYWA-ScheduleService/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "запись не найдена"
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

// Handle PATCH /api/v1/schedule/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	var req models.UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /schedule/bookings/{id} - Invalid request body: id=%s, error=%v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		var validationErrs validation.ValidationErrors
		if errors.As(err, &validationErrs) {
			h.logger.Warn("PATCH /schedule/bookings/{id} - Validation failed: id=%s, %v", bookingID, validationErrs)
			handlers.RespondBadRequest(w, validationErrs.Error())
			return
		}
		h.logger.Error("PATCH /schedule/bookings/{id} - Validator error: id=%s, %v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.service.Update(r.Context(), bookingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrBookingNotFound):
			h.logger.Warn("PATCH /schedule/bookings/{id} - Booking not found: id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, scheduleService.ErrCapacityExceeded):
			h.logger.Warn("PATCH /schedule/bookings/{id} - Capacity exceeded: id=%s, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("PATCH /schedule/bookings/{id} - Invalid request: id=%s, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("PATCH /schedule/bookings/{id} - Failed to update booking: id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /schedule/bookings/{id} - Booking updated: id=%s, clients=%d/%d",
		result.ID, result.CurrentCount, result.MaxCapacity)
	handlers.RespondJSON(w, http.StatusOK, result)
}
