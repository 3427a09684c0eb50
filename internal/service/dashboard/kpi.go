package dashboard

import (
	"fmt"
	"strconv"
	"time"

	"github.com/eywa-crm/EYWA-ScheduleService/internal/service/dashboard/models"
)

// period закрытый диапазон дат
type period struct {
	from time.Time
	to   time.Time
}

// monthWindows возвращает границы текущего и предыдущего календарного
// месяца относительно today. Именно календарные месяцы, не скользящие
// 30 дней - так KPI сравнимы с бухгалтерской отчетностью студии
func monthWindows(today time.Time) (current, previous period) {
	currentStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	currentEnd := currentStart.AddDate(0, 1, -1)

	previousStart := currentStart.AddDate(0, -1, 0)
	previousEnd := currentStart.AddDate(0, 0, -1)

	return period{from: currentStart, to: currentEnd},
		period{from: previousStart, to: previousEnd}
}

// weekWindow возвращает понедельник и воскресенье недели, содержащей today
func weekWindow(today time.Time) (time.Time, time.Time) {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	daysSinceMonday := (int(day.Weekday()) + 6) % 7
	monday := day.AddDate(0, 0, -daysSinceMonday)
	sunday := monday.AddDate(0, 0, 6)

	return monday, sunday
}

// formatChange форматирует изменение метрики месяц к месяцу
//
// При нулевой базе прошлого месяца проценту не от чего считаться:
// показываем "0%", а тренд берем по знаку текущего значения.
// Подпись "0%" при выросшей с нуля метрике вводит в заблуждение,
// но фронтенд завязан на это поведение - менять только вместе с ним
func formatChange(current, previous int64) (string, models.Trend) {
	if previous > 0 {
		pct := float64(current-previous) / float64(previous) * 100
		trend := models.TrendUp
		if pct < 0 {
			trend = models.TrendDown
		}
		return fmt.Sprintf("%+.1f%%", pct), trend
	}

	if current > 0 {
		return "0%", models.TrendUp
	}
	return "0%", models.TrendDown
}

// formatAmount форматирует сумму с пробелами между разрядами: 2450000 -> "2 450 000"
func formatAmount(v int64) string {
	s := strconv.FormatInt(v, 10)

	sign := ""
	if len(s) > 0 && s[0] == '-' {
		sign = "-"
		s = s[1:]
	}

	if len(s) <= 3 {
		return sign + s
	}

	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ' ')
		}
		out = append(out, s[i:i+3]...)
	}

	return sign + string(out)
}
