package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/eywa-crm/EYWA-ScheduleService/internal/domain"
	"github.com/eywa-crm/EYWA-ScheduleService/internal/service/analytics/models"
)

// Service движок аналитики загрузки расписания
// Все метрики считаются по отфильтрованному набору слотов за период,
// ничего не персистится
type Service struct {
	repo         BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса аналитики
func NewService(repo BookingRepository, logger Logger) *Service {
	return &Service{
		repo:         repo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetAnalytics возвращает аналитику по групповым занятиям за период
// Если какая-то из границ не указана, окном становится неделя
// (понедельник - воскресенье), содержащая startDate или сегодня
func (s *Service) GetAnalytics(ctx context.Context, startDate, endDate *time.Time) (*models.ScheduleAnalytics, error) {
	if startDate == nil || endDate == nil {
		base := s.timeProvider.Now()
		if startDate != nil {
			base = *startDate
		}
		monday, sunday := weekRange(base)
		startDate, endDate = &monday, &sunday
	}

	if startDate.After(*endDate) {
		s.logger.Warn("GetAnalytics: start date %s is after end date %s",
			startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: start date is after end date", ErrInvalidPeriod)
	}

	s.logger.Info("GetAnalytics: period=%s to %s",
		startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat))

	bookings, err := s.repo.List(ctx, domain.BookingFilter{
		StartDate:  startDate,
		EndDate:    endDate,
		Categories: domain.ClassCategories,
	})
	if err != nil {
		s.logger.Error("GetAnalytics: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAnalytics - repository error: %v", ErrInternal, err)
	}

	result := &models.ScheduleAnalytics{
		Overview: computeOverview(bookings),
		Groups:   computeGroups(bookings),
		Coaches:  computeCoaches(bookings),
		Rooms:    computeRooms(bookings),
	}

	s.logger.Info("GetAnalytics: %d slots, load=%d%%, %d coaches, %d rooms",
		result.Overview.TotalSlots, result.Overview.LoadPercentage,
		len(result.Coaches), len(result.Rooms))

	return result, nil
}
