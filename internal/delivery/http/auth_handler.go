package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/NikolaySkladnev/car-rent/internal/pkg/logger"
	"github.com/NikolaySkladnev/car-rent/internal/usecase/auth"
)

// AuthService определяет интерфейс для сервиса аутентификации
type AuthService interface {
	Register(ctx context.Context, req *auth.RegisterRequest) (int64, error)
	Login(ctx context.Context, req *auth.LoginRequest) (string, error)
	PasswordRecovery(ctx context.Context, email string) (*auth.PasswordRecoveryResult, error)
}

// AuthHandler обрабатывает запросы аутентификации
type AuthHandler struct {
	authService AuthService
	logger      logger.Logger
}

// NewAuthHandler создает новый handler
func NewAuthHandler(authService AuthService, logger logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register обрабатывает регистрацию нового клиента
// POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"client_id": id,
	})
}

// Login обрабатывает вход клиента
// POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
	})
}

type passwordRecoveryRequest struct {
	Email string `json:"email"`
}

// PasswordRecovery генерирует токен восстановления пароля.
// Токен возвращается в ответе, почта не отправляется.
// POST /api/v1/auth/password-recovery
func (h *AuthHandler) PasswordRecovery(w http.ResponseWriter, r *http.Request) {
	var req passwordRecoveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	out, err := h.authService.PasswordRecovery(r.Context(), req.Email)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	// ttl продублирован в обоих написаниях для совместимости клиентов
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"token":   out.Token,
		"ttlSec":  out.TTLSec,
		"ttl_sec": out.TTLSec,
	})
}

// Logout завершает сессию клиента.
// Токены stateless и не отзываются: клиент просто забывает токен.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}
