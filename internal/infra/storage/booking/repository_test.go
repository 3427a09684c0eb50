package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eywa-crm/EYWA-ScheduleService/internal/domain"
	"github.com/eywa-crm/EYWA-ScheduleService/pkg/ptr"
)

func date(value string) time.Time {
	d, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		panic(err)
	}
	return d
}

func TestListQuery(t *testing.T) {
	t.Run("no filter", func(t *testing.T) {
		query, args, err := listQuery(domain.BookingFilter{})
		require.NoError(t, err)

		assert.NotContains(t, query, "WHERE")
		assert.Contains(t, query, "FROM schedule_bookings")
		assert.Contains(t, query, "ORDER BY booking_date ASC, booking_time ASC")
		assert.Empty(t, args)
	})

	t.Run("single day range is inclusive on both ends", func(t *testing.T) {
		day := date("2025-12-01")

		query, args, err := listQuery(domain.BookingFilter{
			StartDate: &day,
			EndDate:   &day,
		})
		require.NoError(t, err)

		// Одинаковые границы дают ровно один день: >= и <=, не < и не >
		assert.Contains(t, query, "booking_date >= $1")
		assert.Contains(t, query, "booking_date <= $2")
		assert.NotContains(t, query, "booking_date > $")
		assert.NotContains(t, query, "booking_date < $")
		assert.Equal(t, []interface{}{day, day}, args)
	})

	t.Run("all filters combined through AND", func(t *testing.T) {
		start := date("2025-12-01")
		end := date("2025-12-31")
		status := domain.StatusPaid

		query, args, err := listQuery(domain.BookingFilter{
			StartDate: &start,
			EndDate:   &end,
			Category:  ptr.Ptr(domain.CategoryBodyMind),
			TrainerID: ptr.Ptr("t-1"),
			Status:    &status,
		})
		require.NoError(t, err)

		assert.Contains(t, query,
			"WHERE booking_date >= $1 AND booking_date <= $2 AND category = $3 AND trainer_id = $4 AND status = $5")
		assert.Contains(t, query, "ORDER BY booking_date ASC, booking_time ASC")
		assert.Equal(t, []interface{}{start, end, domain.CategoryBodyMind, "t-1", status}, args)
	})

	t.Run("category list becomes IN", func(t *testing.T) {
		query, args, err := listQuery(domain.BookingFilter{
			Categories: domain.ClassCategories,
		})
		require.NoError(t, err)

		assert.Contains(t, query, "category IN ($1,$2)")
		assert.Equal(t, []interface{}{domain.CategoryBodyMind, domain.CategoryPilatesReformer}, args)
	})

	t.Run("coworking tag matches by substring or capsule", func(t *testing.T) {
		query, args, err := listQuery(domain.BookingFilter{
			Tag: ptr.Ptr(domain.TagCoworking),
		})
		require.NoError(t, err)

		assert.Contains(t, query, "category ILIKE $1 OR category ILIKE $2 OR capsule_id IS NOT NULL")
		assert.Equal(t, []interface{}{"%коворкинг%", "%coworking%"}, args)
	})

	t.Run("kids tag matches by substring", func(t *testing.T) {
		query, args, err := listQuery(domain.BookingFilter{
			Tag: ptr.Ptr(domain.TagKids),
		})
		require.NoError(t, err)

		assert.Contains(t, query, "category ILIKE $1 OR category ILIKE $2")
		assert.Equal(t, []interface{}{"%kids%", "%детск%"}, args)
	})

	t.Run("class tags match exactly", func(t *testing.T) {
		query, args, err := listQuery(domain.BookingFilter{
			Tag: ptr.Ptr(domain.TagReformer),
		})
		require.NoError(t, err)

		assert.Contains(t, query, "category = $1")
		assert.Equal(t, []interface{}{domain.CategoryPilatesReformer}, args)
	})
}
