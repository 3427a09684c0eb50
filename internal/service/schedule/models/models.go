package models

import (
	"errors"
	"time"

	"github.com/eywa-crm/EYWA-ScheduleService/internal/domain"
	"github.com/eywa-crm/EYWA-ScheduleService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при неизвестном статусе записи
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidTime возвращается при некорректном формате времени
	ErrInvalidTime = errors.New("invalid time format, expected HH:MM")
)

// Request модели

// ClientInfo клиент в записи
type ClientInfo struct {
	ClientID    string  `json:"clientId" validate:"required"`
	ClientName  string  `json:"clientName" validate:"required"`
	ClientPhone *string `json:"clientPhone,omitempty"`
}

// CreateBookingRequest запрос на создание записи в расписании
type CreateBookingRequest struct {
	BookingDate string       `json:"bookingDate" validate:"required,date_iso"`
	BookingTime string       `json:"bookingTime" validate:"required,time_hhmm"`
	Category    string       `json:"category" validate:"required"`
	ServiceName *string      `json:"serviceName,omitempty"`
	TrainerID   *string      `json:"trainerId,omitempty"`
	TrainerName *string      `json:"trainerName,omitempty"`
	Clients     []ClientInfo `json:"clients" validate:"dive"`
	MaxCapacity int          `json:"maxCapacity" validate:"required,min=1"`
	Status      *string      `json:"status,omitempty"`
	Notes       *string      `json:"notes,omitempty"`
	CapsuleID   *string      `json:"capsuleId,omitempty"`
	CapsuleName *string      `json:"capsuleName,omitempty"`
}

// UpdateBookingRequest частичное обновление записи
// Отсутствующее (nil) поле не меняется
type UpdateBookingRequest struct {
	BookingDate *string       `json:"bookingDate,omitempty" validate:"omitempty,date_iso"`
	BookingTime *string       `json:"bookingTime,omitempty" validate:"omitempty,time_hhmm"`
	Category    *string       `json:"category,omitempty"`
	ServiceName *string       `json:"serviceName,omitempty"`
	TrainerID   *string       `json:"trainerId,omitempty"`
	TrainerName *string       `json:"trainerName,omitempty"`
	Clients     *[]ClientInfo `json:"clients,omitempty" validate:"omitempty,dive"`
	MaxCapacity *int          `json:"maxCapacity,omitempty" validate:"omitempty,min=1"`
	Status      *string       `json:"status,omitempty"`
	Notes       *string       `json:"notes,omitempty"`
	CapsuleID   *string       `json:"capsuleId,omitempty"`
	CapsuleName *string       `json:"capsuleName,omitempty"`
}

// ListBookingsRequest фильтр списка записей, все поля опциональны
type ListBookingsRequest struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  *string
	TrainerID *string
	Status    *string
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingFilter, error) {
	filter := domain.BookingFilter{
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Category:  r.Category,
		TrainerID: r.TrainerID,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ToDomain конвертирует запрос создания в domain модель
// PublicID и CurrentCount назначает сервис
func (r *CreateBookingRequest) ToDomain() (*domain.Booking, error) {
	date, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	bookingTime, err := types.NewTimeStringFromString(r.BookingTime)
	if err != nil {
		return nil, ErrInvalidTime
	}

	status := domain.StatusFree
	if r.Status != nil {
		status, err = ToDomainBookingStatus(*r.Status)
		if err != nil {
			return nil, err
		}
	}

	return &domain.Booking{
		Date:        date,
		Time:        bookingTime,
		Category:    r.Category,
		ServiceName: r.ServiceName,
		TrainerID:   r.TrainerID,
		TrainerName: r.TrainerName,
		Clients:     ToDomainClients(r.Clients),
		MaxCapacity: r.MaxCapacity,
		Status:      status,
		Notes:       r.Notes,
		CapsuleID:   r.CapsuleID,
		CapsuleName: r.CapsuleName,
	}, nil
}

// ToDomainPatch конвертирует запрос обновления в domain патч
func (r *UpdateBookingRequest) ToDomainPatch() (domain.BookingPatch, error) {
	patch := domain.BookingPatch{
		Category:    r.Category,
		ServiceName: r.ServiceName,
		TrainerID:   r.TrainerID,
		TrainerName: r.TrainerName,
		MaxCapacity: r.MaxCapacity,
		Notes:       r.Notes,
		CapsuleID:   r.CapsuleID,
		CapsuleName: r.CapsuleName,
	}

	if r.BookingDate != nil {
		date, err := time.Parse(domain.DateFormat, *r.BookingDate)
		if err != nil {
			return patch, ErrInvalidDate
		}
		patch.Date = &date
	}

	if r.BookingTime != nil {
		bookingTime, err := types.NewTimeStringFromString(*r.BookingTime)
		if err != nil {
			return patch, ErrInvalidTime
		}
		patch.Time = &bookingTime
	}

	if r.Clients != nil {
		clients := ToDomainClients(*r.Clients)
		patch.Clients = &clients
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return patch, err
		}
		patch.Status = &status
	}

	return patch, nil
}

// Response модели

// BookingResponse ответ с данными записи
type BookingResponse struct {
	ID           string       `json:"id"`
	BookingDate  string       `json:"bookingDate"` // "2025-12-15"
	BookingTime  string       `json:"bookingTime"` // "10:00"
	Category     string       `json:"category"`
	ServiceName  *string      `json:"serviceName,omitempty"`
	TrainerID    *string      `json:"trainerId,omitempty"`
	TrainerName  *string      `json:"trainerName,omitempty"`
	Clients      []ClientInfo `json:"clients"`
	MaxCapacity  int          `json:"maxCapacity"`
	CurrentCount int          `json:"currentCount"`
	Status       string       `json:"status"`
	Notes        *string      `json:"notes,omitempty"`
	CapsuleID    *string      `json:"capsuleId,omitempty"`
	CapsuleName  *string      `json:"capsuleName,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// BookingListResponse ответ со списком записей
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(bk *domain.Booking) *BookingResponse {
	if bk == nil {
		return nil
	}

	return &BookingResponse{
		ID:           bk.PublicID,
		BookingDate:  bk.Date.Format(domain.DateFormat),
		BookingTime:  bk.Time.String(),
		Category:     bk.Category,
		ServiceName:  bk.ServiceName,
		TrainerID:    bk.TrainerID,
		TrainerName:  bk.TrainerName,
		Clients:      FromDomainClients(bk.Clients),
		MaxCapacity:  bk.MaxCapacity,
		CurrentCount: bk.CurrentCount,
		Status:       string(bk.Status),
		Notes:        bk.Notes,
		CapsuleID:    bk.CapsuleID,
		CapsuleName:  bk.CapsuleName,
		CreatedAt:    bk.CreatedAt,
		UpdatedAt:    bk.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, bk := range bookings {
		if bkResp := FromDomainBooking(bk); bkResp != nil {
			resp.Bookings = append(resp.Bookings, *bkResp)
		}
	}

	return resp
}

// ToDomainClients конвертирует DTO клиентов в domain модели
func ToDomainClients(clients []ClientInfo) []domain.ClientRef {
	result := make([]domain.ClientRef, 0, len(clients))
	for _, c := range clients {
		result = append(result, domain.ClientRef{
			ClientID:    c.ClientID,
			ClientName:  c.ClientName,
			ClientPhone: c.ClientPhone,
		})
	}
	return result
}

// FromDomainClients конвертирует domain модели клиентов в DTO
func FromDomainClients(clients []domain.ClientRef) []ClientInfo {
	result := make([]ClientInfo, 0, len(clients))
	for _, c := range clients {
		result = append(result, ClientInfo{
			ClientID:    c.ClientID,
			ClientName:  c.ClientName,
			ClientPhone: c.ClientPhone,
		})
	}
	return result
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	for _, valid := range domain.ValidStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
