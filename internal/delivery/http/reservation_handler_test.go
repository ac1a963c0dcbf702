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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockReservationsService - мок для reservations service
type MockReservationsService struct {
	mock.Mock
}

func (m *MockReservationsService) CreateAndConfirm(ctx context.Context, clientID, carID int64, dateFrom, dateTo domain.Date) (*domain.ReservationView, error) {
	args := m.Called(ctx, clientID, carID, dateFrom, dateTo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReservationView), args.Error(1)
}

func (m *MockReservationsService) ListMine(ctx context.Context, clientID int64) ([]*domain.ReservationView, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ReservationView), args.Error(1)
}

func (m *MockReservationsService) GetMine(ctx context.Context, rentalID, clientID int64) (*domain.ReservationView, error) {
	args := m.Called(ctx, rentalID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReservationView), args.Error(1)
}

func (m *MockReservationsService) Cancel(ctx context.Context, rentalID, clientID int64) error {
	args := m.Called(ctx, rentalID, clientID)
	return args.Error(0)
}

// TestReservationHandler_CreateReservation тестирует создание брони
func TestReservationHandler_CreateReservation(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		mockSetup      func(*MockReservationsService)
		expectedStatus int
		checkResponse  func(*testing.T, map[string]interface{})
	}{
		{
			name: "успешное бронирование",
			requestBody: CreateReservationRequest{
				CarID:    1,
				DateFrom: "2024-06-01",
				DateTo:   "2024-06-03",
			},
			mockSetup: func(m *MockReservationsService) {
				m.On("CreateAndConfirm", mock.Anything, int64(7), int64(1), mock.Anything, mock.Anything).
					Return(CreateTestReservation(42, 7, 1, domain.StatusConfirmed), nil)
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, float64(42), resp["rental_id"])
				assert.Equal(t, "confirmed", resp["status"])
				assert.Equal(t, "2024-06-01", resp["date_from"])
				assert.Equal(t, "2024-06-03", resp["date_to"])
				assert.Equal(t, float64(5000), resp["total_amount"])
			},
		},
		{
			name: "даты заняты",
			requestBody: CreateReservationRequest{
				CarID:    1,
				DateFrom: "2024-06-01",
				DateTo:   "2024-06-03",
			},
			mockSetup: func(m *MockReservationsService) {
				m.On("CreateAndConfirm", mock.Anything, int64(7), int64(1), mock.Anything, mock.Anything).
					Return(nil, domain.ErrCarUnavailable)
			},
			expectedStatus: http.StatusConflict,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Contains(t, resp["error"].(string), "not available")
				assert.Equal(t, float64(http.StatusConflict), resp["status"])
			},
		},
		{
			name: "у клиента уже есть активная бронь",
			requestBody: CreateReservationRequest{
				CarID:    1,
				DateFrom: "2024-06-01",
				DateTo:   "2024-06-03",
			},
			mockSetup: func(m *MockReservationsService) {
				m.On("CreateAndConfirm", mock.Anything, int64(7), int64(1), mock.Anything, mock.Anything).
					Return(nil, domain.ErrClientBlocked)
			},
			expectedStatus: http.StatusForbidden,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, float64(http.StatusForbidden), resp["status"])
			},
		},
		{
			name: "некорректный диапазон дат",
			requestBody: CreateReservationRequest{
				CarID:    1,
				DateFrom: "2024-06-03",
				DateTo:   "2024-06-01",
			},
			mockSetup: func(m *MockReservationsService) {
				m.On("CreateAndConfirm", mock.Anything, int64(7), int64(1), mock.Anything, mock.Anything).
					Return(nil, domain.ErrInvalidDateRange)
			},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Contains(t, resp["error"].(string), "date_to must be greater")
			},
		},
		{
			name: "кривой формат даты",
			requestBody: CreateReservationRequest{
				CarID:    1,
				DateFrom: "01.06.2024",
				DateTo:   "2024-06-03",
			},
			mockSetup:      func(m *MockReservationsService) {},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, "date_from must be YYYY-MM-DD", resp["error"])
			},
		},
		{
			name:           "невалидный JSON",
			requestBody:    "invalid json",
			mockSetup:      func(m *MockReservationsService) {},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, "invalid request body", resp["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockReservationsService)
			tt.mockSetup(mockService)

			handler := NewReservationHandler(mockService, logger.NewNoop())

			var body []byte
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, _ = json.Marshal(tt.requestBody)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req = req.WithContext(CreateAuthContext(7))
			w := httptest.NewRecorder()

			handler.CreateReservation(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			json.Unmarshal(w.Body.Bytes(), &response)
			tt.checkResponse(t, response)

			mockService.AssertExpectations(t)
		})
	}
}

// TestReservationHandler_CreateReservation_Unauthorized тестирует запрос
// без идентификатора клиента в контексте
func TestReservationHandler_CreateReservation_Unauthorized(t *testing.T) {
	mockService := new(MockReservationsService)
	handler := NewReservationHandler(mockService, logger.NewNoop())

	body, _ := json.Marshal(CreateReservationRequest{CarID: 1, DateFrom: "2024-06-01", DateTo: "2024-06-03"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.CreateReservation(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockService.AssertNotCalled(t, "CreateAndConfirm", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// TestReservationHandler_GetMyReservations тестирует список броней клиента
func TestReservationHandler_GetMyReservations(t *testing.T) {
	t.Run("возвращает брони клиента", func(t *testing.T) {
		views := []*domain.ReservationView{
			CreateTestReservation(43, 7, 2, domain.StatusConfirmed),
			CreateTestReservation(42, 7, 1, domain.StatusCanceled),
		}

		mockService := new(MockReservationsService)
		mockService.On("ListMine", mock.Anything, int64(7)).Return(views, nil)

		handler := NewReservationHandler(mockService, logger.NewNoop())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/me", nil)
		req = req.WithContext(CreateAuthContext(7))
		w := httptest.NewRecorder()

		handler.GetMyReservations(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response []map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Len(t, response, 2)
		assert.Equal(t, float64(43), response[0]["rental_id"])
	})

	t.Run("пустой список сериализуется как массив", func(t *testing.T) {
		mockService := new(MockReservationsService)
		mockService.On("ListMine", mock.Anything, int64(7)).Return(nil, nil)

		handler := NewReservationHandler(mockService, logger.NewNoop())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/me", nil)
		req = req.WithContext(CreateAuthContext(7))
		w := httptest.NewRecorder()

		handler.GetMyReservations(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})
}

// TestReservationHandler_GetReservation тестирует бронь по ID
func TestReservationHandler_GetReservation(t *testing.T) {
	tests := []struct {
		name           string
		rentalID       string
		mockSetup      func(*MockReservationsService)
		expectedStatus int
	}{
		{
			name:     "своя бронь",
			rentalID: "42",
			mockSetup: func(m *MockReservationsService) {
				m.On("GetMine", mock.Anything, int64(42), int64(7)).
					Return(CreateTestReservation(42, 7, 1, domain.StatusConfirmed), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:     "чужая бронь дает 404",
			rentalID: "42",
			mockSetup: func(m *MockReservationsService) {
				m.On("GetMine", mock.Anything, int64(42), int64(7)).
					Return(nil, domain.ErrReservationNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "нечисловой id",
			rentalID:       "abc",
			mockSetup:      func(m *MockReservationsService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "нулевой id",
			rentalID:       "0",
			mockSetup:      func(m *MockReservationsService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockReservationsService)
			tt.mockSetup(mockService)

			handler := NewReservationHandler(mockService, logger.NewNoop())

			req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/"+tt.rentalID, nil)
			req = req.WithContext(CreateAuthContext(7))
			req = WithURLParam(req, "id", tt.rentalID)
			w := httptest.NewRecorder()

			handler.GetReservation(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

// TestReservationHandler_CancelReservation тестирует отмену брони
func TestReservationHandler_CancelReservation(t *testing.T) {
	t.Run("успешная отмена", func(t *testing.T) {
		mockService := new(MockReservationsService)
		mockService.On("Cancel", mock.Anything, int64(42), int64(7)).Return(nil)

		handler := NewReservationHandler(mockService, logger.NewNoop())

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/reservations/42", nil)
		req = req.WithContext(CreateAuthContext(7))
		req = WithURLParam(req, "id", "42")
		w := httptest.NewRecorder()

		handler.CancelReservation(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, float64(42), response["rental_id"])
		assert.Equal(t, "canceled", response["status"])
	})

	t.Run("несуществующая бронь", func(t *testing.T) {
		mockService := new(MockReservationsService)
		mockService.On("Cancel", mock.Anything, int64(42), int64(7)).
			Return(domain.ErrReservationNotFound)

		handler := NewReservationHandler(mockService, logger.NewNoop())

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/reservations/42", nil)
		req = req.WithContext(CreateAuthContext(7))
		req = WithURLParam(req, "id", "42")
		w := httptest.NewRecorder()

		handler.CancelReservation(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
