package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NikolaySkladnev/car-rent/internal/domain"
	"github.com/NikolaySkladnev/car-rent/internal/pkg/logger"
	"github.com/NikolaySkladnev/car-rent/internal/usecase/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthService - мок для auth service
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req *auth.RegisterRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req *auth.LoginRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) PasswordRecovery(ctx context.Context, email string) (*auth.PasswordRecoveryResult, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.PasswordRecoveryResult), args.Error(1)
}

// TestAuthHandler_Register тестирует регистрацию клиента
func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		mockSetup      func(*MockAuthService)
		expectedStatus int
		checkResponse  func(*testing.T, map[string]interface{})
	}{
		{
			name: "успешная регистрация",
			requestBody: auth.RegisterRequest{
				FullName:     "Иванов Иван Иванович",
				PassportData: "4510 123456",
				Login:        "ivanov",
				Password:     "secret123",
				Email:        "ivanov@example.com",
			},
			mockSetup: func(m *MockAuthService) {
				m.On("Register", mock.Anything, mock.AnythingOfType("*auth.RegisterRequest")).
					Return(int64(7), nil)
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, float64(7), resp["client_id"])
			},
		},
		{
			name: "email уже занят",
			requestBody: auth.RegisterRequest{
				FullName:     "Иванов Иван Иванович",
				PassportData: "4510 123456",
				Login:        "ivanov",
				Password:     "secret123",
				Email:        "taken@example.com",
			},
			mockSetup: func(m *MockAuthService) {
				m.On("Register", mock.Anything, mock.AnythingOfType("*auth.RegisterRequest")).
					Return(int64(0), domain.ErrConflict)
			},
			expectedStatus: http.StatusConflict,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, float64(http.StatusConflict), resp["status"])
			},
		},
		{
			name:        "неполные данные",
			requestBody: auth.RegisterRequest{Login: "ivanov"},
			mockSetup: func(m *MockAuthService) {
				m.On("Register", mock.Anything, mock.AnythingOfType("*auth.RegisterRequest")).
					Return(int64(0), domain.ErrValidation)
			},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.NotEmpty(t, resp["error"])
			},
		},
		{
			name:           "невалидный JSON",
			requestBody:    "invalid json",
			mockSetup:      func(m *MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, "invalid request body", resp["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAuthService)
			tt.mockSetup(mockService)

			handler := NewAuthHandler(mockService, logger.NewNoop())

			var body []byte
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, _ = json.Marshal(tt.requestBody)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Register(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			json.Unmarshal(w.Body.Bytes(), &response)
			tt.checkResponse(t, response)

			mockService.AssertExpectations(t)
		})
	}
}

// TestAuthHandler_Login тестирует вход клиента
func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		mockSetup      func(*MockAuthService)
		expectedStatus int
		checkResponse  func(*testing.T, map[string]interface{})
	}{
		{
			name: "успешный вход",
			requestBody: auth.LoginRequest{
				Login:    "ivanov",
				Password: "secret123",
			},
			mockSetup: func(m *MockAuthService) {
				m.On("Login", mock.Anything, mock.AnythingOfType("*auth.LoginRequest")).
					Return("jwt-token", nil)
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, "jwt-token", resp["token"])
			},
		},
		{
			name: "неверные учетные данные",
			requestBody: auth.LoginRequest{
				Login:    "ivanov",
				Password: "wrong",
			},
			mockSetup: func(m *MockAuthService) {
				m.On("Login", mock.Anything, mock.AnythingOfType("*auth.LoginRequest")).
					Return("", domain.ErrUnauthorized)
			},
			expectedStatus: http.StatusUnauthorized,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, float64(http.StatusUnauthorized), resp["status"])
			},
		},
		{
			name:           "невалидный JSON",
			requestBody:    "{",
			mockSetup:      func(m *MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, "invalid request body", resp["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAuthService)
			tt.mockSetup(mockService)

			handler := NewAuthHandler(mockService, logger.NewNoop())

			var body []byte
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, _ = json.Marshal(tt.requestBody)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Login(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			json.Unmarshal(w.Body.Bytes(), &response)
			tt.checkResponse(t, response)

			mockService.AssertExpectations(t)
		})
	}
}

// TestAuthHandler_PasswordRecovery тестирует выдачу токена восстановления
func TestAuthHandler_PasswordRecovery(t *testing.T) {
	t.Run("токен возвращается с TTL в обоих написаниях", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("PasswordRecovery", mock.Anything, "ivanov@example.com").
			Return(&auth.PasswordRecoveryResult{Token: "deadbeef", TTLSec: 900}, nil)

		handler := NewAuthHandler(mockService, logger.NewNoop())

		body, _ := json.Marshal(map[string]string{"email": "ivanov@example.com"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/password-recovery", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler.PasswordRecovery(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, "deadbeef", response["token"])
		assert.Equal(t, float64(900), response["ttlSec"])
		assert.Equal(t, float64(900), response["ttl_sec"])
	})

	t.Run("пустой email", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("PasswordRecovery", mock.Anything, "").
			Return(nil, domain.ErrValidation)

		handler := NewAuthHandler(mockService, logger.NewNoop())

		body, _ := json.Marshal(map[string]string{"email": ""})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/password-recovery", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler.PasswordRecovery(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestAuthHandler_Logout тестирует завершение сессии
func TestAuthHandler_Logout(t *testing.T) {
	handler := NewAuthHandler(new(MockAuthService), logger.NewNoop())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	w := httptest.NewRecorder()

	handler.Logout(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "ok", response["status"])
}
