package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/eywa-crm/EYWA-ScheduleService/internal/api/handlers"
	scheduleService "github.com/eywa-crm/EYWA-ScheduleService/internal/service/schedule"
)

const msgBookingNotFound = "запись не найдена"

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	result, err := h.service.GetByPublicID(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrBookingNotFound):
			h.logger.Warn("GET /schedule/bookings/{id} - Booking not found: id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("GET /schedule/bookings/{id} - Failed to get booking: id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
