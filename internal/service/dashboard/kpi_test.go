package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/eywa-crm/EYWA-ScheduleService/internal/domain"
	"github.com/eywa-crm/EYWA-ScheduleService/internal/service/dashboard/models"
)

func TestMonthWindows(t *testing.T) {
	t.Run("mid month", func(t *testing.T) {
		current, previous := monthWindows(time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC))

		assert.Equal(t, "2026-03-01", current.from.Format(domain.DateFormat))
		assert.Equal(t, "2026-03-31", current.to.Format(domain.DateFormat))
		assert.Equal(t, "2026-02-01", previous.from.Format(domain.DateFormat))
		assert.Equal(t, "2026-02-28", previous.to.Format(domain.DateFormat))
	})

	t.Run("january previous month crosses year", func(t *testing.T) {
		current, previous := monthWindows(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC))

		assert.Equal(t, "2026-01-01", current.from.Format(domain.DateFormat))
		assert.Equal(t, "2026-01-31", current.to.Format(domain.DateFormat))
		assert.Equal(t, "2025-12-01", previous.from.Format(domain.DateFormat))
		assert.Equal(t, "2025-12-31", previous.to.Format(domain.DateFormat))
	})
}

func TestWeekWindow(t *testing.T) {
	monday, sunday := weekWindow(time.Date(2026, 1, 14, 18, 0, 0, 0, time.UTC))
	assert.Equal(t, "2026-01-12", monday.Format(domain.DateFormat))
	assert.Equal(t, "2026-01-18", sunday.Format(domain.DateFormat))
}

func TestFormatChange(t *testing.T) {
	tests := []struct {
		name       string
		current    int64
		previous   int64
		wantChange string
		wantTrend  models.Trend
	}{
		{name: "growth", current: 150, previous: 100, wantChange: "+50.0%", wantTrend: models.TrendUp},
		{name: "decline", current: 80, previous: 100, wantChange: "-20.0%", wantTrend: models.TrendDown},
		{name: "flat", current: 100, previous: 100, wantChange: "+0.0%", wantTrend: models.TrendUp},
		{name: "zero baseline with activity", current: 50, previous: 0, wantChange: "0%", wantTrend: models.TrendUp},
		{name: "zero baseline without activity", current: 0, previous: 0, wantChange: "0%", wantTrend: models.TrendDown},
		{name: "fractional percent", current: 105, previous: 100, wantChange: "+5.0%", wantTrend: models.TrendUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			change, trend := formatChange(tt.current, tt.previous)
			assert.Equal(t, tt.wantChange, change)
			assert.Equal(t, tt.wantTrend, trend)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		input int64
		want  string
	}{
		{input: 0, want: "0"},
		{input: 999, want: "999"},
		{input: 1000, want: "1 000"},
		{input: 2450000, want: "2 450 000"},
		{input: 100000000, want: "100 000 000"},
		{input: -1500, want: "-1 500"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatAmount(tt.input))
	}
}
