package cars

import (
	"context"

	"github.com/NikolaySkladnev/car-rent/internal/domain"
	"github.com/NikolaySkladnev/car-rent/internal/pkg/logger"
	"github.com/NikolaySkladnev/car-rent/internal/repository"
)

// Service содержит read-only логику каталога автомобилей
type Service struct {
	carRepo repository.CarRepository
	logger  logger.Logger
}

// NewService создает новый экземпляр CarsService
func NewService(carRepo repository.CarRepository, logger logger.Logger) *Service {
	return &Service{
		carRepo: carRepo,
		logger:  logger,
	}
}

// ListAvailable возвращает автомобили, свободные в диапазоне [dateFrom, dateTo).
// Если диапазон не задан, берется [сегодня, завтра). Корректность заданного
// диапазона (date_to строго позже date_from) проверяет вызывающий слой.
func (s *Service) ListAvailable(ctx context.Context, dateFrom, dateTo *domain.Date) ([]*domain.Car, error) {
	if dateFrom == nil || dateTo == nil {
		today := domain.Today()
		tomorrow := today.AddDays(1)
		return s.carRepo.ListAvailable(ctx, today, tomorrow)
	}
	return s.carRepo.ListAvailable(ctx, *dateFrom, *dateTo)
}

// Get возвращает автомобиль по ID
func (s *Service) Get(ctx context.Context, id int64) (*domain.Car, error) {
	return s.carRepo.GetByID(ctx, id)
}
