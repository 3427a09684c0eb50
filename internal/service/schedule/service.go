package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/eywa-crm/EYWA-ScheduleService/internal/domain"
	bookingRepo "github.com/eywa-crm/EYWA-ScheduleService/internal/infra/storage/booking"
	"github.com/eywa-crm/EYWA-ScheduleService/internal/service/schedule/models"
)

// Service сервис записей расписания
// Инвариант вместимости (клиентов не больше, чем мест) проверяется
// здесь до любой записи в хранилище; мутации выполняются в
// сериализуемой транзакции, чтобы два конкурентных добавления клиента
// не прошли проверку одновременно
type Service struct {
	repo      BookingRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(repo BookingRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
}

// Create создает запись в расписании
// Назначает внешний идентификатор и поддерживаемый счетчик клиентов,
// отклоняет запрос при превышении вместимости
func (s *Service) Create(ctx context.Context, req *models.CreateBookingRequest) (*models.BookingResponse, error) {
	bk, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Create: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if len(bk.Clients) > bk.MaxCapacity {
		s.logger.Warn("Create: capacity exceeded: %d clients, max %d", len(bk.Clients), bk.MaxCapacity)
		return nil, fmt.Errorf("%w: %d clients, max %d", ErrCapacityExceeded, len(bk.Clients), bk.MaxCapacity)
	}

	bk.PublicID = uuid.NewString()
	bk.CurrentCount = len(bk.Clients)

	created, err := s.repo.Create(ctx, bk)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: booking id=%s created, category=%s, date=%s %s, clients=%d/%d",
		created.PublicID, created.Category, created.Date.Format(domain.DateFormat),
		created.Time, created.CurrentCount, created.MaxCapacity)

	return models.FromDomainBooking(created), nil
}

// GetByPublicID получает запись по внешнему идентификатору
func (s *Service) GetByPublicID(ctx context.Context, publicID string) (*models.BookingResponse, error) {
	bk, err := s.repo.GetByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByPublicID: booking id=%s not found", publicID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByPublicID: repository error for id=%s: %v", publicID, err)
		return nil, fmt.Errorf("%w: GetByPublicID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(bk), nil
}

// List получает записи по фильтру
// Диапазон дат включает обе границы, результат отсортирован
// по (дата, время) по возрастанию
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Update применяет частичное обновление записи
//
// Читает текущее состояние, накладывает патч и перепроверяет инвариант
// вместимости против итоговой вместимости: патч, меняющий только
// clients, проверяется против старого max_capacity, а уменьшение
// max_capacity ниже текущего числа клиентов отклоняется.
// Вся последовательность выполняется в сериализуемой транзакции с
// блокировкой строки, отклоненный патч не оставляет частичных изменений
func (s *Service) Update(ctx context.Context, publicID string, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	patch, err := req.ToDomainPatch()
	if err != nil {
		s.logger.Warn("Update: invalid request for id=%s: %v", publicID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var result *domain.Booking

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		bk, err := s.repo.GetByPublicID(txCtx, publicID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		applyPatch(bk, patch)

		if bk.CurrentCount > bk.MaxCapacity {
			return fmt.Errorf("%w: %d clients, max %d", ErrCapacityExceeded, bk.CurrentCount, bk.MaxCapacity)
		}

		updated, err := s.repo.Update(txCtx, bk)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			s.logger.Warn("Update: booking id=%s not found", publicID)
		case errors.Is(err, ErrCapacityExceeded):
			s.logger.Warn("Update: capacity exceeded for id=%s: %v", publicID, err)
		default:
			s.logger.Error("Update: failed for id=%s: %v", publicID, err)
		}
		return nil, err
	}

	s.logger.Info("Update: booking id=%s updated, clients=%d/%d",
		result.PublicID, result.CurrentCount, result.MaxCapacity)

	return models.FromDomainBooking(result), nil
}

// Delete удаляет запись
// Возвращает false без ошибки, если записи не было
func (s *Service) Delete(ctx context.Context, publicID string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, publicID)
	if err != nil {
		s.logger.Error("Delete: repository error for id=%s: %v", publicID, err)
		return false, fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if deleted {
		s.logger.Info("Delete: booking id=%s deleted", publicID)
	} else {
		s.logger.Warn("Delete: booking id=%s not found", publicID)
	}

	return deleted, nil
}

// applyPatch накладывает непустые поля патча на запись
// При изменении списка клиентов счетчик пересчитывается
func applyPatch(bk *domain.Booking, patch domain.BookingPatch) {
	if patch.Date != nil {
		bk.Date = *patch.Date
	}
	if patch.Time != nil {
		bk.Time = *patch.Time
	}
	if patch.Category != nil {
		bk.Category = *patch.Category
	}
	if patch.ServiceName != nil {
		bk.ServiceName = patch.ServiceName
	}
	if patch.TrainerID != nil {
		bk.TrainerID = patch.TrainerID
	}
	if patch.TrainerName != nil {
		bk.TrainerName = patch.TrainerName
	}
	if patch.Clients != nil {
		bk.Clients = *patch.Clients
		bk.CurrentCount = len(bk.Clients)
	}
	if patch.MaxCapacity != nil {
		bk.MaxCapacity = *patch.MaxCapacity
	}
	if patch.Status != nil {
		bk.Status = *patch.Status
	}
	if patch.Notes != nil {
		bk.Notes = patch.Notes
	}
	if patch.CapsuleID != nil {
		bk.CapsuleID = patch.CapsuleID
	}
	if patch.CapsuleName != nil {
		bk.CapsuleName = patch.CapsuleName
	}
}
