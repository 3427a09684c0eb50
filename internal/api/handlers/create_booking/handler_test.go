package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eywa-crm/EYWA-ScheduleService/internal/api/validation"
	scheduleService "github.com/eywa-crm/EYWA-ScheduleService/internal/service/schedule"
	"github.com/eywa-crm/EYWA-ScheduleService/internal/service/schedule/models"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fakeScheduleService struct {
	response *models.BookingResponse
	err      error
	got      *models.CreateBookingRequest
}

func (s *fakeScheduleService) Create(_ context.Context, req *models.CreateBookingRequest) (*models.BookingResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

func newTestHandler(t *testing.T, svc *fakeScheduleService) *Handler {
	t.Helper()

	validate, err := validation.New()
	require.NoError(t, err)

	return NewHandler(svc, validate, noopLogger{})
}

const validBody = `{
	"bookingDate": "2026-01-12",
	"bookingTime": "10:00",
	"category": "Body Mind",
	"clients": [{"clientId": "c-1", "clientName": "Мария"}],
	"maxCapacity": 8
}`

func TestHandler_Handle(t *testing.T) {
	t.Run("creates booking", func(t *testing.T) {
		svc := &fakeScheduleService{response: &models.BookingResponse{
			ID:          "b3b2a1c4-0000-0000-0000-000000000001",
			BookingDate: "2026-01-12",
			BookingTime: "10:00",
			Category:    "Body Mind",
			MaxCapacity: 8,
		}}
		handler := newTestHandler(t, svc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/schedule/bookings", strings.NewReader(validBody))
		rec := httptest.NewRecorder()

		handler.Handle(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, svc.got)
		assert.Equal(t, "Body Mind", svc.got.Category)

		var resp models.BookingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "b3b2a1c4-0000-0000-0000-000000000001", resp.ID)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		handler := newTestHandler(t, &fakeScheduleService{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/schedule/bookings", strings.NewReader("{"))
		rec := httptest.NewRecorder()

		handler.Handle(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects invalid date format", func(t *testing.T) {
		svc := &fakeScheduleService{}
		handler := newTestHandler(t, svc)

		body := strings.Replace(validBody, "2026-01-12", "12.01.2026", 1)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/schedule/bookings", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Handle(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, svc.got)
	})

	t.Run("maps capacity error to 400", func(t *testing.T) {
		svc := &fakeScheduleService{
			err: fmt.Errorf("%w: 9 clients, max 8", scheduleService.ErrCapacityExceeded),
		}
		handler := newTestHandler(t, svc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/schedule/bookings", strings.NewReader(validBody))
		rec := httptest.NewRecorder()

		handler.Handle(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), msgCapacityExceeded)
	})

	t.Run("maps unknown error to 500", func(t *testing.T) {
		svc := &fakeScheduleService{
			err: fmt.Errorf("%w: Create - repository error", scheduleService.ErrInternal),
		}
		handler := newTestHandler(t, svc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/schedule/bookings", strings.NewReader(validBody))
		rec := httptest.NewRecorder()

		handler.Handle(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
