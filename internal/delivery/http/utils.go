package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/NikolaySkladnev/car-rent/internal/domain"
	"github.com/NikolaySkladnev/car-rent/internal/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// respondJSON отправляет JSON ответ
func respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"internal error","status":500}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// respondError отправляет JSON ответ с ошибкой.
// Тело всегда несет текст ошибки и продублированный числовой статус.
func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, map[string]interface{}{
		"error":  message,
		"status": code,
	})
}

// respondDomainError переводит доменную ошибку в HTTP статус.
// Неизвестные ошибки схлопываются в 500 без деталей наружу.
func respondDomainError(w http.ResponseWriter, log logger.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrInvalidID):
		respondError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrCarUnavailable):
		respondError(w, http.StatusConflict, err.Error())

	case errors.Is(err, domain.ErrCarNotFound),
		errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrClientNotFound):
		respondError(w, http.StatusNotFound, err.Error())

	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrTokenExpired):
		respondError(w, http.StatusUnauthorized, err.Error())

	case errors.Is(err, domain.ErrClientBlocked):
		respondError(w, http.StatusForbidden, err.Error())

	default:
		log.Error("Unhandled error", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

// parseIDParam извлекает положительный целый ID из пути URL
func parseIDParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
