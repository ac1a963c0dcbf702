package http

import (
	"context"
	"net/http"
	"time"

	"github.com/NikolaySkladnev/car-rent/internal/delivery/http/middleware"
	"github.com/NikolaySkladnev/car-rent/internal/domain"
	"github.com/go-chi/chi/v5"
)

// CreateAuthContext создает контекст аутентифицированного клиента
func CreateAuthContext(clientID int64) context.Context {
	return context.WithValue(context.Background(), middleware.ClientIDKey, clientID)
}

// WithURLParam подкладывает path-параметр chi в запрос
func WithURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// CreateTestCar создает тестовый автомобиль
func CreateTestCar(id int64, plate string) *domain.Car {
	return &domain.Car{
		CarID:         id,
		PlateNumber:   plate,
		Brand:         "Kia",
		Model:         "Rio",
		Status:        "available",
		DailyCost:     2500,
		InsuranceCost: 300,
	}
}

// CreateTestReservation создает тестовую бронь
func CreateTestReservation(rentalID, clientID, carID int64, status domain.ReservationStatus) *domain.ReservationView {
	return &domain.ReservationView{
		RentalID:           rentalID,
		ClientID:           clientID,
		FullName:           "Иванов Иван Иванович",
		CarID:              carID,
		PlateNumber:        "А123БВ777",
		Brand:              "Kia",
		Model:              "Rio",
		DateFrom:           domain.NewDate(2024, time.June, 1),
		DateTo:             domain.NewDate(2024, time.June, 3),
		Status:             status,
		DailyRateAtBooking: 2500,
		TotalAmount:        5000,
	}
}
