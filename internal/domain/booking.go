package domain

import (
	"time"

	"github.com/eywa-crm/EYWA-ScheduleService/pkg/types"
)

// BookingStatus статус записи в расписании
// Значения отдаются фронтенду как есть, поэтому храним их на языке студии
type BookingStatus string

const (
	StatusReserved BookingStatus = "Бронь"
	StatusPaid     BookingStatus = "Оплачено"
	StatusFree     BookingStatus = "Свободно"
)

// ClientRef клиент, записанный на слот
type ClientRef struct {
	ClientID    string  `json:"clientId"`
	ClientName  string  `json:"clientName"`
	ClientPhone *string `json:"clientPhone,omitempty"`
}

// Booking запись/бронирование в расписании студии
// Одна строка - один слот: групповое занятие, реформер, капсула коворкинга
// или детская группа. PublicID - внешний идентификатор, DB id наружу не выходит.
type Booking struct {
	ID       int64
	PublicID string

	Date time.Time
	Time types.TimeString

	Category    string
	ServiceName *string

	TrainerID   *string
	TrainerName *string

	Clients      []ClientRef
	MaxCapacity  int
	CurrentCount int

	Status BookingStatus
	Notes  *string

	CapsuleID   *string
	CapsuleName *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBooked возвращает true, если слот занят (бронь или оплачен)
func (b *Booking) IsBooked() bool {
	return b.Status == StatusReserved || b.Status == StatusPaid
}

// HasFreeSeats возвращает true, если на слот можно записать еще клиента
func (b *Booking) HasFreeSeats() bool {
	return b.CurrentCount < b.MaxCapacity
}

// OccupancyPercent заполненность слота в процентах (целочисленное усечение)
// Для слота без мест возвращает 0
func (b *Booking) OccupancyPercent() int {
	if b.MaxCapacity <= 0 {
		return 0
	}
	return b.CurrentCount * 100 / b.MaxCapacity
}

// ClassKey композитный ключ занятия: записи с одинаковыми датой и временем
// внутри категории считаются одним занятием, а не разными
func (b *Booking) ClassKey() string {
	return b.Date.Format(DateFormat) + "-" + b.Time.String()
}

// BookingFilter фильтр списка записей
// Все указанные условия объединяются через AND,
// диапазон дат включает обе границы
type BookingFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	Category   *string
	Categories []string
	TrainerID  *string
	Status     *BookingStatus
	Tag        *CategoryTag
}

// BookingPatch частичное обновление записи
// nil-поле означает "не менять"
type BookingPatch struct {
	Date        *time.Time
	Time        *types.TimeString
	Category    *string
	ServiceName *string
	TrainerID   *string
	TrainerName *string
	Clients     *[]ClientRef
	MaxCapacity *int
	Status      *BookingStatus
	Notes       *string
	CapsuleID   *string
	CapsuleName *string
}
