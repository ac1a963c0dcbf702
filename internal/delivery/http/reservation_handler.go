package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/NikolaySkladnev/car-rent/internal/delivery/http/middleware"
	"github.com/NikolaySkladnev/car-rent/internal/domain"
	"github.com/NikolaySkladnev/car-rent/internal/pkg/logger"
)

// ReservationsService определяет интерфейс движка бронирования
type ReservationsService interface {
	CreateAndConfirm(ctx context.Context, clientID, carID int64, dateFrom, dateTo domain.Date) (*domain.ReservationView, error)
	ListMine(ctx context.Context, clientID int64) ([]*domain.ReservationView, error)
	GetMine(ctx context.Context, rentalID, clientID int64) (*domain.ReservationView, error)
	Cancel(ctx context.Context, rentalID, clientID int64) error
}

// CreateReservationRequest - запрос на создание брони
type CreateReservationRequest struct {
	CarID    int64  `json:"car_id"`
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
}

// ReservationHandler обрабатывает запросы бронирования
type ReservationHandler struct {
	resService ReservationsService
	logger     logger.Logger
}

// NewReservationHandler создает новый handler
func NewReservationHandler(resService ReservationsService, logger logger.Logger) *ReservationHandler {
	return &ReservationHandler{
		resService: resService,
		logger:     logger,
	}
}

// CreateReservation создает и подтверждает бронь текущего клиента
// POST /api/v1/reservations
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetClientID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dateFrom, err := domain.ParseDate(req.DateFrom)
	if err != nil {
		respondError(w, http.StatusBadRequest, "date_from must be YYYY-MM-DD")
		return
	}
	dateTo, err := domain.ParseDate(req.DateTo)
	if err != nil {
		respondError(w, http.StatusBadRequest, "date_to must be YYYY-MM-DD")
		return
	}

	view, err := h.resService.CreateAndConfirm(r.Context(), clientID, req.CarID, dateFrom, dateTo)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, view)
}

// GetMyReservations возвращает все брони текущего клиента
// GET /api/v1/reservations/me
func (h *ReservationHandler) GetMyReservations(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetClientID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	views, err := h.resService.ListMine(r.Context(), clientID)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	if views == nil {
		views = []*domain.ReservationView{}
	}
	respondJSON(w, http.StatusOK, views)
}

// GetReservation возвращает бронь текущего клиента по ID
// GET /api/v1/reservations/{id}
func (h *ReservationHandler) GetReservation(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetClientID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	view, err := h.resService.GetMine(r.Context(), id, clientID)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

// CancelReservation отменяет бронь текущего клиента
// DELETE /api/v1/reservations/{id}
func (h *ReservationHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetClientID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.resService.Cancel(r.Context(), id, clientID); err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"rental_id": id,
		"status":    string(domain.StatusCanceled),
	})
}
