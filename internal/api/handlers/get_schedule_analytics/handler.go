package get_schedule_analytics

import (
	"errors"
	"net/http"
	"time"

	"github.com/eywa-crm/EYWA-ScheduleService/internal/api/handlers"
	"github.com/eywa-crm/EYWA-ScheduleService/internal/domain"
	analyticsService "github.com/eywa-crm/EYWA-ScheduleService/internal/service/analytics"
)

const (
	msgInvalidDateFilter = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPeriod     = "дата начала периода позже даты окончания"
)

type Handler struct {
	service AnalyticsService
	logger  Logger
}

func NewHandler(service AnalyticsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/analytics
// Без параметров строит аналитику за текущую ISO-неделю
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var startDate, endDate *time.Time

	if raw := query.Get("startDate"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /schedule/analytics - Invalid startDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateFilter)
			return
		}
		startDate = &parsed
	}

	if raw := query.Get("endDate"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /schedule/analytics - Invalid endDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateFilter)
			return
		}
		endDate = &parsed
	}

	result, err := h.service.GetAnalytics(r.Context(), startDate, endDate)
	if err != nil {
		switch {
		case errors.Is(err, analyticsService.ErrInvalidPeriod):
			h.logger.Warn("GET /schedule/analytics - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /schedule/analytics - Failed to build analytics: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
