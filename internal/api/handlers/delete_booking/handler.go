package delete_booking

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/eywa-crm/EYWA-ScheduleService/internal/api/handlers"
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

// Handle DELETE /api/v1/schedule/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	deleted, err := h.service.Delete(r.Context(), bookingID)
	if err != nil {
		h.logger.Error("DELETE /schedule/bookings/{id} - Failed to delete booking: id=%s, error=%v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	if !deleted {
		h.logger.Warn("DELETE /schedule/bookings/{id} - Booking not found: id=%s", bookingID)
		handlers.RespondNotFound(w, msgBookingNotFound)
		return
	}

	h.logger.Info("DELETE /schedule/bookings/{id} - Booking deleted: id=%s", bookingID)
	handlers.RespondNoContent(w)
}
