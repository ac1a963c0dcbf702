package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/NikolaySkladnev/car-rent/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// Claims содержит payload JWT токена.
// Subject несет client_id в виде десятичной строки.
type Claims struct {
	Login string `json:"login"`
	jwt.RegisteredClaims
}

// ClientID извлекает идентификатор клиента из subject
func (c *Claims) ClientID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidToken
	}
	return id, nil
}

// TokenService управляет созданием и валидацией JWT токенов
type TokenService struct {
	secretKey string
	expiry    time.Duration
}

// NewTokenService создает новый сервис для работы с токенами
func NewTokenService(secretKey string, expiry time.Duration) *TokenService {
	return &TokenService{
		secretKey: secretKey,
		expiry:    expiry,
	}
}

// GenerateToken генерирует подписанный токен для клиента
func (ts *TokenService) GenerateToken(clientID int64, login string) (string, error) {
	now := time.Now()

	claims := &Claims{
		Login: login,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(clientID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(ts.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken валидирует JWT токен и возвращает claims
func (ts *TokenService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Проверяем алгоритм подписи
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.secretKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	return claims, nil
}
