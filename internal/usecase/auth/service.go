package auth

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/NikolaySkladnev/car-rent/internal/domain"
	"github.com/NikolaySkladnev/car-rent/internal/pkg/hash"
	"github.com/NikolaySkladnev/car-rent/internal/pkg/jwt"
	"github.com/NikolaySkladnev/car-rent/internal/pkg/logger"
	"github.com/NikolaySkladnev/car-rent/internal/repository"
	"github.com/google/uuid"
)

// RecoveryTokenTTLSec - время жизни токена восстановления пароля
const RecoveryTokenTTLSec = 900

// RegisterRequest - запрос на регистрацию
type RegisterRequest struct {
	FullName     string `json:"full_name"`
	PassportData string `json:"passport_data"`
	Login        string `json:"login"`
	Password     string `json:"password"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
}

// LoginRequest - запрос на вход
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// PasswordRecoveryResult - сгенерированный токен восстановления.
// Токен не отправляется по почте, а возвращается вызывающему.
type PasswordRecoveryResult struct {
	Token  string
	TTLSec int
}

// Service содержит бизнес-логику аутентификации
type Service struct {
	clientRepo   repository.ClientRepository
	recovery     repository.RecoveryTokenStore
	tokenService *jwt.TokenService
	logger       logger.Logger
}

// NewService создает новый экземпляр AuthService
func NewService(
	clientRepo repository.ClientRepository,
	recovery repository.RecoveryTokenStore,
	tokenService *jwt.TokenService,
	logger logger.Logger,
) *Service {
	return &Service{
		clientRepo:   clientRepo,
		recovery:     recovery,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Register регистрирует нового клиента и возвращает его ID
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (int64, error) {
	client := &domain.Client{
		FullName:     req.FullName,
		PassportData: req.PassportData,
		Login:        req.Login,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
	}
	client.Normalize()

	if req.Password == "" {
		return 0, domain.ErrValidation
	}
	if err := client.Validate(); err != nil {
		return 0, err
	}

	// Проверяем, что email еще не занят; дубликат логина ловит
	// unique constraint при вставке
	exists, err := s.clientRepo.ExistsEmail(ctx, client.Email)
	if err != nil {
		return 0, fmt.Errorf("failed to check existing email: %w", err)
	}
	if exists {
		s.logger.Warn("Registration rejected: email already taken", map[string]interface{}{
			"email": client.Email,
		})
		return 0, domain.ErrConflict
	}

	passwordHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := s.clientRepo.Create(ctx, client, passwordHash)
	if err != nil {
		return 0, err
	}

	s.logger.Info("Client registered", map[string]interface{}{
		"client_id": id,
		"login":     client.Login,
	})

	return id, nil
}

// Login аутентифицирует клиента и возвращает JWT токен.
// Неизвестный логин и неверный пароль снаружи неразличимы.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (string, error) {
	login := strings.TrimSpace(req.Login)
	if login == "" || req.Password == "" {
		return "", domain.ErrValidation
	}

	row, err := s.clientRepo.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return "", domain.ErrUnauthorized
		}
		return "", fmt.Errorf("failed to get client: %w", err)
	}

	if !hash.CheckPassword(row.PasswordHash, req.Password) {
		s.logger.Warn("Login failed: invalid password", map[string]interface{}{
			"client_id": row.Client.ClientID,
		})
		return "", domain.ErrUnauthorized
	}

	token, err := s.tokenService.GenerateToken(row.Client.ClientID, row.Client.Login)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("Client logged in", map[string]interface{}{
		"client_id": row.Client.ClientID,
	})

	return token, nil
}

// PasswordRecovery генерирует токен восстановления пароля и кладет его
// в хранилище с TTL. Существование email не проверяется, чтобы не
// раскрывать список зарегистрированных адресов.
func (s *Service) PasswordRecovery(ctx context.Context, email string) (*PasswordRecoveryResult, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, domain.ErrValidation
	}

	// 16 случайных байт в hex
	raw := uuid.New()
	token := hex.EncodeToString(raw[:])

	if err := s.recovery.Put(ctx, email, token, RecoveryTokenTTLSec); err != nil {
		return nil, fmt.Errorf("failed to store recovery token: %w", err)
	}

	return &PasswordRecoveryResult{
		Token:  token,
		TTLSec: RecoveryTokenTTLSec,
	}, nil
}
