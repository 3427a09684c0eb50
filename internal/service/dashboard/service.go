package dashboard

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/eywa-crm/EYWA-ScheduleService/internal/domain"
	"github.com/eywa-crm/EYWA-ScheduleService/internal/service/dashboard/models"
	"github.com/eywa-crm/EYWA-ScheduleService/pkg/ptr"
)

// Цвета карточек и снапшотов согласованы с фронтендом админки
const (
	colorRevenue       = "#10B981"
	colorSubscriptions = "#8B5CF6"
	colorNewClients    = "#6366F1"

	colorCoworking = "#10B981"
	colorKids      = "#EF4444"
	colorBodyMind  = "#6366F1"
	colorReformer  = "#C86B58"
)

// Service собирает сводку для главного экрана админки
type Service struct {
	bookings     BookingRepository
	payments     PaymentsRepository
	clients      ClientsRepository
	highlights   HighlightsRepository
	analytics    AnalyticsProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр Service
func NewService(
	bookings BookingRepository,
	payments PaymentsRepository,
	clients ClientsRepository,
	highlights HighlightsRepository,
	analytics AnalyticsProvider,
	logger Logger,
) *Service {
	return &Service{
		bookings:     bookings,
		payments:     payments,
		clients:      clients,
		highlights:   highlights,
		analytics:    analytics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetSummary возвращает сводку дашборда: KPI месяц к месяцу,
// загрузку направлений за текущую неделю и заметки менеджеров
func (s *Service) GetSummary(ctx context.Context) (*models.DashboardSummary, error) {
	today := s.timeProvider.Now()

	kpi, err := s.collectKPI(ctx, today)
	if err != nil {
		s.logger.Error("Dashboard: GetSummary - сбор KPI: %v", err)
		return nil, fmt.Errorf("%w: GetSummary - collect kpi: %v", ErrInternal, err)
	}

	load, err := s.collectLoad(ctx, today)
	if err != nil {
		s.logger.Error("Dashboard: GetSummary - сбор загрузки: %v", err)
		return nil, fmt.Errorf("%w: GetSummary - collect load: %v", ErrInternal, err)
	}

	highlights, err := s.collectHighlights(ctx)
	if err != nil {
		s.logger.Error("Dashboard: GetSummary - сбор заметок: %v", err)
		return nil, fmt.Errorf("%w: GetSummary - collect highlights: %v", ErrInternal, err)
	}

	return &models.DashboardSummary{
		KPI:        kpi,
		Load:       load,
		Highlights: highlights,
	}, nil
}

// collectKPI считает три карточки KPI, каждую в сравнении
// с прошлым календарным месяцем
func (s *Service) collectKPI(ctx context.Context, today time.Time) ([]models.KpiCard, error) {
	current, previous := monthWindows(today)

	revenueCur, err := s.payments.SumCompletedAmount(ctx, current.from, current.to)
	if err != nil {
		return nil, fmt.Errorf("sum revenue current: %v", err)
	}
	revenuePrev, err := s.payments.SumCompletedAmount(ctx, previous.from, previous.to)
	if err != nil {
		return nil, fmt.Errorf("sum revenue previous: %v", err)
	}

	subsCur, err := s.payments.CountSubscriptionsSold(ctx, current.from, current.to)
	if err != nil {
		return nil, fmt.Errorf("count subscriptions current: %v", err)
	}
	subsPrev, err := s.payments.CountSubscriptionsSold(ctx, previous.from, previous.to)
	if err != nil {
		return nil, fmt.Errorf("count subscriptions previous: %v", err)
	}

	clientsCur, err := s.clients.CountCreatedBetween(ctx, current.from, current.to)
	if err != nil {
		return nil, fmt.Errorf("count new clients current: %v", err)
	}
	clientsPrev, err := s.clients.CountCreatedBetween(ctx, previous.from, previous.to)
	if err != nil {
		return nil, fmt.Errorf("count new clients previous: %v", err)
	}

	revenueChange, revenueTrend := formatChange(revenueCur, revenuePrev)
	subsChange, subsTrend := formatChange(subsCur, subsPrev)
	clientsChange, clientsTrend := formatChange(clientsCur, clientsPrev)

	return []models.KpiCard{
		{
			Label:  "Выручка",
			Value:  formatAmount(revenueCur),
			Unit:   "сум",
			Change: revenueChange,
			Trend:  revenueTrend,
			Icon:   "DollarSign",
			Color:  colorRevenue,
		},
		{
			Label:  "Проданных абонементов",
			Value:  strconv.FormatInt(subsCur, 10),
			Unit:   "",
			Change: subsChange,
			Trend:  subsTrend,
			Icon:   "CreditCard",
			Color:  colorSubscriptions,
		},
		{
			Label:  "Кол-во новых клиентов",
			Value:  strconv.FormatInt(clientsCur, 10),
			Unit:   "",
			Change: clientsChange,
			Trend:  clientsTrend,
			Icon:   "Users",
			Color:  colorNewClients,
		},
	}, nil
}

// collectLoad собирает загрузку четырех направлений за текущую неделю.
// Коворкинг и детские группы считаются по записям напрямую,
// групповые занятия берутся из аналитики расписания
func (s *Service) collectLoad(ctx context.Context, today time.Time) ([]models.LoadSnapshotItem, error) {
	monday, sunday := weekWindow(today)

	coworking, err := s.tagLoad(ctx, domain.TagCoworking, monday, sunday)
	if err != nil {
		return nil, fmt.Errorf("coworking load: %v", err)
	}
	coworking.Label = "Коворкинг"
	coworking.Color = colorCoworking
	if coworking.Detail == "" {
		coworking.Detail = "Капсулы"
	}

	kids, err := s.tagLoad(ctx, domain.TagKids, monday, sunday)
	if err != nil {
		return nil, fmt.Errorf("kids load: %v", err)
	}
	kids.Label = "Детская"
	kids.Color = colorKids
	kids.Detail = "Группы 6-10 лет"

	analytics, err := s.analytics.GetAnalytics(ctx, &monday, &sunday)
	if err != nil {
		return nil, fmt.Errorf("schedule analytics: %v", err)
	}

	bodyMind := models.LoadSnapshotItem{Label: "Body Mind", Color: colorBodyMind}
	reformer := models.LoadSnapshotItem{Label: "Pilates Reformer", Color: colorReformer}
	for _, group := range analytics.Groups {
		item := models.LoadSnapshotItem{
			Value:  group.Load,
			Detail: fmt.Sprintf("%d занятий · %d записей", group.TotalClasses, group.TotalBookings),
		}
		switch group.ID {
		case string(domain.TagBodyMind):
			bodyMind.Value = item.Value
			bodyMind.Detail = item.Detail
		case string(domain.TagReformer):
			reformer.Value = item.Value
			reformer.Detail = item.Detail
		}
	}

	return []models.LoadSnapshotItem{coworking, kids, bodyMind, reformer}, nil
}

// tagLoad считает загрузку направления по его записям за период.
// При наличии вместимостей - по местам, иначе по доле занятых слотов
func (s *Service) tagLoad(ctx context.Context, tag domain.CategoryTag, from, to time.Time) (models.LoadSnapshotItem, error) {
	bookings, err := s.bookings.List(ctx, domain.BookingFilter{
		StartDate: &from,
		EndDate:   &to,
		Tag:       ptr.Ptr(tag),
	})
	if err != nil {
		return models.LoadSnapshotItem{}, err
	}

	var totalCapacity, totalBooked, bookedSlots int
	for _, bk := range bookings {
		totalCapacity += bk.MaxCapacity
		totalBooked += bk.CurrentCount
		if bk.IsBooked() {
			bookedSlots++
		}
	}

	item := models.LoadSnapshotItem{}
	switch {
	case totalCapacity > 0:
		item.Value = totalBooked * 100 / totalCapacity
		item.Detail = fmt.Sprintf("%d/%d мест", totalBooked, totalCapacity)
	case len(bookings) > 0:
		item.Value = bookedSlots * 100 / len(bookings)
	}

	return item, nil
}

// collectHighlights возвращает заметки менеджеров в порядке sort_order
func (s *Service) collectHighlights(ctx context.Context) ([]models.Highlight, error) {
	rows, err := s.highlights.ListHighlights(ctx)
	if err != nil {
		return nil, err
	}

	highlights := make([]models.Highlight, 0, len(rows))
	for _, row := range rows {
		highlights = append(highlights, models.Highlight{
			Title:  row.Title,
			Detail: row.Detail,
			Tone:   row.Tone,
		})
	}

	return highlights, nil
}
