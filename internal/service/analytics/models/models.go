package models

// OverviewStats общая статистика по расписанию за период
type OverviewStats struct {
	TotalSlots     int `json:"totalSlots"`
	BookedSlots    int `json:"bookedSlots"`
	LoadPercentage int `json:"loadPercentage"`
}

// GroupAnalytics аналитика по группе занятий (BODY или REFORM)
type GroupAnalytics struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Label         string   `json:"label"`
	TotalClasses  int      `json:"totalClasses"`
	TotalBookings int      `json:"totalBookings"`
	Load          int      `json:"load"`
	Coaches       []string `json:"coaches"`
	AvgOccupancy  int      `json:"avgOccupancy"`
}

// CoachLoad загрузка тренера за период
type CoachLoad struct {
	Name    string `json:"name"`
	Load    int    `json:"load"`
	Classes int    `json:"classes"`
}

// RoomLoad загрузка зала за период
type RoomLoad struct {
	Room string `json:"room"`
	Load int    `json:"load"`
}

// ScheduleAnalytics полная аналитика по расписанию занятий
type ScheduleAnalytics struct {
	Overview OverviewStats    `json:"overview"`
	Groups   []GroupAnalytics `json:"groups"`
	Coaches  []CoachLoad      `json:"coaches"`
	Rooms    []RoomLoad       `json:"rooms"`
}
