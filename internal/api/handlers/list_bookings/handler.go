package list_bookings

import (
	"errors"
	"net/http"

	"github.com/eywa-crm/EYWA-ScheduleService/internal/api/handlers"
	scheduleService "github.com/eywa-crm/EYWA-ScheduleService/internal/service/schedule"
)

const (
	msgInvalidDateFilter = "некорректный формат даты в фильтре, ожидается YYYY-MM-DD"
	msgInvalidFilter     = "некорректные параметры фильтра"
)

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

// Handle GET /api/v1/schedule/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ParseQuery(r)
	if err != nil {
		h.logger.Warn("GET /schedule/bookings - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFilter)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("GET /schedule/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /schedule/bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
