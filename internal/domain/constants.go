package domain

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Категории расписания
// Словарь открытый (колонка - свободная строка), но аналитика и дашборд
// работают с этим фиксированным набором
const (
	CategoryBodyMind        = "Body Mind"
	CategoryPilatesReformer = "Pilates Reformer"
	CategoryCoworking       = "Коворкинг"
	CategoryKids            = "Eywa Kids"
)

// ClassCategories категории групповых занятий, по которым строится
// аналитика загрузки (обзор, группы, тренеры, залы)
var ClassCategories = []string{
	CategoryBodyMind,
	CategoryPilatesReformer,
}

// BookedStatuses статусы, при которых слот считается занятым
var BookedStatuses = []BookingStatus{
	StatusReserved,
	StatusPaid,
}

// ValidStatuses полный словарь статусов записи
var ValidStatuses = []BookingStatus{
	StatusReserved,
	StatusPaid,
	StatusFree,
}
