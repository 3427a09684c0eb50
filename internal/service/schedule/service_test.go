package schedule

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eywa-crm/EYWA-ScheduleService/internal/domain"
	bookingRepo "github.com/eywa-crm/EYWA-ScheduleService/internal/infra/storage/booking"
	"github.com/eywa-crm/EYWA-ScheduleService/internal/service/schedule/models"
	"github.com/eywa-crm/EYWA-ScheduleService/pkg/ptr"
)

// fakeRepository хранит записи в памяти, ключ - public_id
type fakeRepository struct {
	mu       sync.Mutex
	bookings map[string]*domain.Booking
	nextID   int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{bookings: make(map[string]*domain.Booking)}
}

func (r *fakeRepository) Create(_ context.Context, bk *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	stored := *bk
	stored.ID = r.nextID
	r.bookings[stored.PublicID] = &stored

	result := stored
	return &result, nil
}

func (r *fakeRepository) GetByPublicID(_ context.Context, publicID string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bk, ok := r.bookings[publicID]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}

	result := *bk
	return &result, nil
}

func (r *fakeRepository) List(_ context.Context, _ domain.BookingFilter) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Booking, 0, len(r.bookings))
	for _, bk := range r.bookings {
		result := *bk
		out = append(out, &result)
	}
	return out, nil
}

func (r *fakeRepository) Update(_ context.Context, bk *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[bk.PublicID]; !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}

	stored := *bk
	r.bookings[bk.PublicID] = &stored

	result := stored
	return &result, nil
}

func (r *fakeRepository) Delete(_ context.Context, publicID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[publicID]; !ok {
		return false, nil
	}
	delete(r.bookings, publicID)
	return true, nil
}

// fakeTxManager сериализует транзакции мьютексом, имитируя
// сериализуемую изоляцию для конкурентных тестов
type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *fakeRepository) {
	repo := newFakeRepository()
	return NewService(repo, &fakeTxManager{}, noopLogger{}), repo
}

func validCreateRequest() *models.CreateBookingRequest {
	return &models.CreateBookingRequest{
		BookingDate: "2026-01-12",
		BookingTime: "10:00",
		Category:    domain.CategoryBodyMind,
		TrainerName: ptr.Ptr("Анна"),
		Clients: []models.ClientInfo{
			{ClientID: "c-1", ClientName: "Мария"},
		},
		MaxCapacity: 8,
	}
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns public id and derives current count", func(t *testing.T) {
		svc, _ := newTestService()

		resp, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, 1, resp.CurrentCount)
		assert.Equal(t, 8, resp.MaxCapacity)
		assert.Equal(t, string(domain.StatusFree), resp.Status)
	})

	t.Run("rejects more clients than capacity", func(t *testing.T) {
		svc, repo := newTestService()

		req := validCreateRequest()
		req.MaxCapacity = 1
		req.Clients = []models.ClientInfo{
			{ClientID: "c-1", ClientName: "Мария"},
			{ClientID: "c-2", ClientName: "Ольга"},
		}

		_, err := svc.Create(ctx, req)
		require.ErrorIs(t, err, ErrCapacityExceeded)
		assert.Empty(t, repo.bookings)
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		svc, _ := newTestService()

		req := validCreateRequest()
		req.BookingDate = "12.01.2026"

		_, err := svc.Create(ctx, req)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		svc, _ := newTestService()

		req := validCreateRequest()
		req.Status = ptr.Ptr("Отменено")

		_, err := svc.Create(ctx, req)
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_GetByPublicID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	t.Run("returns existing booking", func(t *testing.T) {
		got, err := svc.GetByPublicID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetByPublicID(ctx, "missing-id")
		require.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("recomputes count when clients change", func(t *testing.T) {
		svc, _ := newTestService()
		created, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		updated, err := svc.Update(ctx, created.ID, &models.UpdateBookingRequest{
			Clients: ptr.Ptr([]models.ClientInfo{
				{ClientID: "c-1", ClientName: "Мария"},
				{ClientID: "c-2", ClientName: "Ольга"},
			}),
		})
		require.NoError(t, err)
		assert.Equal(t, 2, updated.CurrentCount)
	})

	t.Run("rejects clients over capacity", func(t *testing.T) {
		svc, repo := newTestService()
		req := validCreateRequest()
		req.MaxCapacity = 1
		created, err := svc.Create(ctx, req)
		require.NoError(t, err)

		_, err = svc.Update(ctx, created.ID, &models.UpdateBookingRequest{
			Clients: ptr.Ptr([]models.ClientInfo{
				{ClientID: "c-1", ClientName: "Мария"},
				{ClientID: "c-2", ClientName: "Ольга"},
			}),
		})
		require.ErrorIs(t, err, ErrCapacityExceeded)

		stored := repo.bookings[created.ID]
		assert.Equal(t, 1, stored.CurrentCount)
	})

	t.Run("rejects capacity shrink below current count", func(t *testing.T) {
		svc, _ := newTestService()
		req := validCreateRequest()
		req.Clients = []models.ClientInfo{
			{ClientID: "c-1", ClientName: "Мария"},
			{ClientID: "c-2", ClientName: "Ольга"},
		}
		created, err := svc.Create(ctx, req)
		require.NoError(t, err)

		_, err = svc.Update(ctx, created.ID, &models.UpdateBookingRequest{
			MaxCapacity: ptr.Ptr(1),
		})
		require.ErrorIs(t, err, ErrCapacityExceeded)
	})

	t.Run("not found", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Update(ctx, "missing-id", &models.UpdateBookingRequest{
			Notes: ptr.Ptr("заметка"),
		})
		require.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestService_Update_ConcurrentClientAdds(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	req := validCreateRequest()
	req.MaxCapacity = 2
	req.Clients = []models.ClientInfo{{ClientID: "c-1", ClientName: "Мария"}}
	created, err := svc.Create(ctx, req)
	require.NoError(t, err)

	// Два конкурентных патча добавляют по клиенту к записи 1/2.
	// Пройти может максимум один: итоговый счетчик не должен
	// превысить вместимость
	patch := func(clientID string) error {
		current, err := svc.GetByPublicID(ctx, created.ID)
		if err != nil {
			return err
		}

		clients := append(current.Clients, models.ClientInfo{ClientID: clientID, ClientName: "Гость"})
		_, err = svc.Update(ctx, created.ID, &models.UpdateBookingRequest{
			Clients: ptr.Ptr(clients),
		})
		return err
	}

	var wg sync.WaitGroup
	for _, clientID := range []string{"c-2", "c-3"} {
		wg.Add(1)
		go func(clientID string) {
			defer wg.Done()
			_ = patch(clientID)
		}(clientID)
	}
	wg.Wait()

	stored := repo.bookings[created.ID]
	assert.LessOrEqual(t, stored.CurrentCount, stored.MaxCapacity)
	assert.Len(t, stored.Clients, stored.CurrentCount)
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	t.Run("deletes existing booking", func(t *testing.T) {
		deleted, err := svc.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("missing booking returns false without error", func(t *testing.T) {
		deleted, err := svc.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
