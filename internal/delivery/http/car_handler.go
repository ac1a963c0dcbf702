package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/NikolaySkladnev/car-rent/internal/domain"
	"github.com/NikolaySkladnev/car-rent/internal/pkg/logger"
)

// CarsService определяет интерфейс для сервиса каталога
type CarsService interface {
	ListAvailable(ctx context.Context, dateFrom, dateTo *domain.Date) ([]*domain.Car, error)
	Get(ctx context.Context, id int64) (*domain.Car, error)
}

// CarHandler обрабатывает запросы каталога автомобилей
type CarHandler struct {
	carsService CarsService
	logger      logger.Logger
}

// NewCarHandler создает новый handler
func NewCarHandler(carsService CarsService, logger logger.Logger) *CarHandler {
	return &CarHandler{
		carsService: carsService,
		logger:      logger,
	}
}

// ListCars возвращает доступные автомобили.
// Диапазон опционален, но либо заданы оба параметра, либо ни одного.
// GET /api/v1/cars?date_from=YYYY-MM-DD&date_to=YYYY-MM-DD
func (h *CarHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	fromStr := strings.TrimSpace(r.URL.Query().Get("date_from"))
	toStr := strings.TrimSpace(r.URL.Query().Get("date_to"))

	var dateFrom, dateTo *domain.Date

	if fromStr != "" || toStr != "" {
		from, errFrom := domain.ParseDate(fromStr)
		to, errTo := domain.ParseDate(toStr)
		if errFrom != nil || errTo != nil {
			respondError(w, http.StatusBadRequest, "date_from/date_to must be YYYY-MM-DD")
			return
		}
		if !to.After(from) {
			respondError(w, http.StatusBadRequest, "date_to must be greater than date_from")
			return
		}
		dateFrom, dateTo = &from, &to
	}

	cars, err := h.carsService.ListAvailable(r.Context(), dateFrom, dateTo)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	if cars == nil {
		cars = []*domain.Car{}
	}
	respondJSON(w, http.StatusOK, cars)
}

// GetCar возвращает автомобиль по ID
// GET /api/v1/cars/{id}
func (h *CarHandler) GetCar(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	car, err := h.carsService.Get(r.Context(), id)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, car)
}
