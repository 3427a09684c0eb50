package analytics

import (
	"sort"
	"time"

	"github.com/eywa-crm/EYWA-ScheduleService/internal/domain"
	"github.com/eywa-crm/EYWA-ScheduleService/internal/service/analytics/models"
)

// groupMeta отображение категории занятия на идентификаторы групп дашборда
type groupMeta struct {
	category string
	id       string
	name     string
	label    string
}

var groupsOfInterest = []groupMeta{
	{category: domain.CategoryBodyMind, id: "body", name: "BODY", label: "BODY"},
	{category: domain.CategoryPilatesReformer, id: "reform", name: "REFORM", label: "REFORM"},
}

// loadPercent доля занятых слотов в процентах
// Целочисленное усечение, 0 при пустом множестве - фронтенд ожидает
// целые проценты и никогда не получает ошибку деления
func loadPercent(booked, total int) int {
	if total == 0 {
		return 0
	}
	return booked * 100 / total
}

// weekRange возвращает понедельник и воскресенье недели, содержащей base
func weekRange(base time.Time) (time.Time, time.Time) {
	day := time.Date(base.Year(), base.Month(), base.Day(), 0, 0, 0, 0, time.UTC)

	daysSinceMonday := (int(day.Weekday()) + 6) % 7
	monday := day.AddDate(0, 0, -daysSinceMonday)
	sunday := monday.AddDate(0, 0, 6)

	return monday, sunday
}

// computeOverview общая статистика по набору слотов
func computeOverview(bookings []*domain.Booking) models.OverviewStats {
	total := len(bookings)
	booked := 0
	for _, bk := range bookings {
		if bk.IsBooked() {
			booked++
		}
	}

	return models.OverviewStats{
		TotalSlots:     total,
		BookedSlots:    booked,
		LoadPercentage: loadPercent(booked, total),
	}
}

// computeGroups аналитика по каждой группе занятий
func computeGroups(bookings []*domain.Booking) []models.GroupAnalytics {
	groups := make([]models.GroupAnalytics, 0, len(groupsOfInterest))

	for _, meta := range groupsOfInterest {
		groups = append(groups, computeGroup(bookings, meta))
	}

	return groups
}

func computeGroup(bookings []*domain.Booking, meta groupMeta) models.GroupAnalytics {
	var (
		totalSlots    int
		bookedSlots   int
		totalBookings int

		classKeys = make(map[string]struct{})

		occupancySum   float64
		occupancyCount int

		coachSeen = make(map[string]struct{})
		coaches   = make([]string, 0)
	)

	for _, bk := range bookings {
		if bk.Category != meta.category {
			continue
		}

		totalSlots++
		if bk.IsBooked() {
			bookedSlots++
		}

		// Повторенное для разных клиентов занятие - одно занятие:
		// уникальность определяется парой (дата, время)
		classKeys[bk.ClassKey()] = struct{}{}

		totalBookings += bk.CurrentCount

		// Слоты с нулевой вместимостью не участвуют в средней
		// заполненности, а не считаются как 0%
		if bk.MaxCapacity > 0 {
			occupancySum += float64(bk.CurrentCount) / float64(bk.MaxCapacity) * 100
			occupancyCount++
		}

		if bk.TrainerName != nil {
			if _, ok := coachSeen[*bk.TrainerName]; !ok {
				coachSeen[*bk.TrainerName] = struct{}{}
				coaches = append(coaches, *bk.TrainerName)
			}
		}
	}

	avgOccupancy := 0
	if occupancyCount > 0 {
		avgOccupancy = int(occupancySum / float64(occupancyCount))
	}

	return models.GroupAnalytics{
		ID:            meta.id,
		Name:          meta.name,
		Label:         meta.label,
		TotalClasses:  len(classKeys),
		TotalBookings: totalBookings,
		Load:          loadPercent(bookedSlots, totalSlots),
		Coaches:       coaches,
		AvgOccupancy:  avgOccupancy,
	}
}

// computeCoaches загрузка тренеров, отсортированная по убыванию загрузки
func computeCoaches(bookings []*domain.Booking) []models.CoachLoad {
	type coachAcc struct {
		total   int
		booked  int
		classes map[string]struct{}
	}

	accs := make(map[string]*coachAcc)
	order := make([]string, 0)

	for _, bk := range bookings {
		if bk.TrainerName == nil {
			continue
		}

		name := *bk.TrainerName
		acc, ok := accs[name]
		if !ok {
			acc = &coachAcc{classes: make(map[string]struct{})}
			accs[name] = acc
			order = append(order, name)
		}

		acc.total++
		if bk.IsBooked() {
			acc.booked++
		}
		acc.classes[bk.ClassKey()] = struct{}{}
	}

	coaches := make([]models.CoachLoad, 0, len(order))
	for _, name := range order {
		acc := accs[name]
		coaches = append(coaches, models.CoachLoad{
			Name:    name,
			Load:    loadPercent(acc.booked, acc.total),
			Classes: len(acc.classes),
		})
	}

	sort.SliceStable(coaches, func(i, j int) bool {
		return coaches[i].Load > coaches[j].Load
	})

	return coaches
}

// computeRooms загрузка залов, отсортированная по названию
// Порядок отличается от тренеров намеренно: так требует дашборд
func computeRooms(bookings []*domain.Booking) []models.RoomLoad {
	type roomAcc struct {
		total  int
		booked int
	}

	accs := make(map[string]*roomAcc)

	for _, bk := range bookings {
		if bk.CapsuleName == nil {
			continue
		}

		name := *bk.CapsuleName
		acc, ok := accs[name]
		if !ok {
			acc = &roomAcc{}
			accs[name] = acc
		}

		acc.total++
		if bk.IsBooked() {
			acc.booked++
		}
	}

	rooms := make([]models.RoomLoad, 0, len(accs))
	for name, acc := range accs {
		rooms = append(rooms, models.RoomLoad{
			Room: name,
			Load: loadPercent(acc.booked, acc.total),
		})
	}

	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].Room < rooms[j].Room
	})

	return rooms
}
