package models

// Trend направление изменения метрики месяц к месяцу
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// KpiCard карточка KPI на дашборде
// Value уже отформатирован для отображения (разряды, без дробей)
type KpiCard struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Unit   string `json:"unit"`
	Change string `json:"change"`
	Trend  Trend  `json:"trend"`
	Icon   string `json:"icon"`
	Color  string `json:"color"`
}

// LoadSnapshotItem загрузка одного направления за текущую неделю
type LoadSnapshotItem struct {
	Label  string `json:"label"`
	Value  int    `json:"value"`
	Detail string `json:"detail"`
	Color  string `json:"color"`
}

// Highlight заметка менеджеров для дашборда
type Highlight struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Tone   string `json:"tone"`
}

// DashboardSummary сводка для главного экрана админки
type DashboardSummary struct {
	KPI        []KpiCard          `json:"kpi"`
	Load       []LoadSnapshotItem `json:"load"`
	Highlights []Highlight        `json:"highlights"`
}
