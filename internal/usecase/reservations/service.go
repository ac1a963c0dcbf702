package reservations

import (
	"context"
	"fmt"

	"github.com/NikolaySkladnev/car-rent/internal/domain"
	"github.com/NikolaySkladnev/car-rent/internal/pkg/logger"
	"github.com/NikolaySkladnev/car-rent/internal/repository"
)

// Service - движок бронирования: проверка допуска клиента, атомарное
// создание брони и ее подтверждение, отмена. Весь перечень инвариантов
// (непересечение броней одного автомобиля, одна активная бронь на
// клиента) обеспечивается хранилищем; сервис не держит блокировок.
type Service struct {
	resRepo repository.ReservationRepository
	logger  logger.Logger
}

// NewService создает новый экземпляр ReservationsService
func NewService(resRepo repository.ReservationRepository, logger logger.Logger) *Service {
	return &Service{
		resRepo: resRepo,
		logger:  logger,
	}
}

// CreateAndConfirm создает бронь и сразу подтверждает ее.
// Для вызывающего это одна логическая операция, в хранилище - две
// мутации: вставка pending и перевод в confirmed. Конкурентные попытки
// забронировать пересекающиеся даты одного автомобиля разрешает
// хранилище: ровно одна вставка проходит, остальные получают конфликт.
func (s *Service) CreateAndConfirm(ctx context.Context, clientID, carID int64, dateFrom, dateTo domain.Date) (*domain.ReservationView, error) {
	if carID <= 0 || dateFrom.IsZero() || dateTo.IsZero() {
		return nil, domain.ErrValidation
	}

	rng := domain.DateRange{From: dateFrom, To: dateTo}
	if !rng.Valid() {
		return nil, domain.ErrInvalidDateRange
	}

	// Гейт допуска: клиент без активных броней
	allowed, err := s.resRepo.IsClientAllowed(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to check client eligibility: %w", err)
	}
	if !allowed {
		s.logger.Warn("Reservation rejected: client has an active reservation", map[string]interface{}{
			"client_id": clientID,
		})
		return nil, domain.ErrClientBlocked
	}

	rentalID, err := s.resRepo.Create(ctx, clientID, carID, dateFrom, dateTo)
	if err != nil {
		return nil, err
	}

	// Подтверждаем только что созданную строку. Ноль обновленных строк
	// здесь невозможен при корректном хранилище, поэтому internal.
	ok, err := s.resRepo.UpdateStatus(ctx, rentalID, clientID, domain.StatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("failed to confirm reservation: %w", err)
	}
	if !ok {
		s.logger.Error("Confirm matched zero rows right after insert", map[string]interface{}{
			"rental_id": rentalID,
			"client_id": clientID,
		})
		return nil, domain.ErrInternal
	}

	s.logger.Info("Reservation confirmed", map[string]interface{}{
		"rental_id": rentalID,
		"client_id": clientID,
		"car_id":    carID,
		"date_from": dateFrom.String(),
		"date_to":   dateTo.String(),
	})

	return s.resRepo.GetByIDForClient(ctx, rentalID, clientID)
}

// ListMine возвращает все брони клиента, новые даты первыми
func (s *Service) ListMine(ctx context.Context, clientID int64) ([]*domain.ReservationView, error) {
	return s.resRepo.ListByClient(ctx, clientID)
}

// GetMine возвращает бронь клиента по ID.
// Чужая бронь неотличима от несуществующей.
func (s *Service) GetMine(ctx context.Context, rentalID, clientID int64) (*domain.ReservationView, error) {
	return s.resRepo.GetByIDForClient(ctx, rentalID, clientID)
}

// Cancel переводит бронь клиента в canceled.
// Отмена намеренно идемпотентна: статус не проверяется, повторная
// отмена отвечает так же, как первая. Ноль совпавших строк - not found.
func (s *Service) Cancel(ctx context.Context, rentalID, clientID int64) error {
	ok, err := s.resRepo.UpdateStatus(ctx, rentalID, clientID, domain.StatusCanceled)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrReservationNotFound
	}

	s.logger.Info("Reservation canceled", map[string]interface{}{
		"rental_id": rentalID,
		"client_id": clientID,
	})

	return nil
}
