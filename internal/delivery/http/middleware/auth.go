package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/NikolaySkladnev/car-rent/internal/domain"
	"github.com/NikolaySkladnev/car-rent/internal/pkg/jwt"
)

// contextKey - тип для ключей контекста
type contextKey string

const (
	// ClientIDKey - ключ для идентификатора клиента в контексте
	ClientIDKey contextKey = "client_id"
)

// AuthMiddleware проверяет наличие и валидность JWT токена
// и кладет идентификатор клиента из subject в контекст
func AuthMiddleware(tokenService *jwt.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondError(w, http.StatusUnauthorized, "missing Authorization header")
				return
			}

			// Проверяем формат: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				respondError(w, http.StatusUnauthorized, "invalid Authorization header")
				return
			}

			tokenString := strings.TrimSpace(parts[1])
			if tokenString == "" {
				respondError(w, http.StatusUnauthorized, "missing token")
				return
			}

			claims, err := tokenService.ValidateToken(tokenString)
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					respondError(w, http.StatusUnauthorized, "token expired")
					return
				}
				respondError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			clientID, err := claims.ClientID()
			if err != nil {
				respondError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), ClientIDKey, clientID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClientID извлекает идентификатор клиента из контекста
func GetClientID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(ClientIDKey).(int64)
	return id, ok
}

// respondError отправляет JSON ответ с ошибкой
func respondError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(`{"error":"` + message + `","status":` + strconv.Itoa(code) + `}`))
}
