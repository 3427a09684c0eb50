package list_bookings

import (
	"net/http"
	"time"

	"github.com/eywa-crm/EYWA-ScheduleService/internal/domain"
	"github.com/eywa-crm/EYWA-ScheduleService/internal/service/schedule/models"
)

// ParseQuery собирает фильтр списка из query-параметров запроса
func ParseQuery(r *http.Request) (*models.ListBookingsRequest, error) {
	query := r.URL.Query()
	req := &models.ListBookingsRequest{}

	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if raw := query.Get("category"); raw != "" {
		req.Category = &raw
	}

	if raw := query.Get("trainerId"); raw != "" {
		req.TrainerID = &raw
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	return req, nil
}
