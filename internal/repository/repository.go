package repository

import (
	"context"

	"github.com/NikolaySkladnev/car-rent/internal/domain"
)

// ClientRepository определяет методы для работы с клиентами
type ClientRepository interface {
	// Create создает нового клиента и возвращает его ID.
	// Дубликат login или email - domain.ErrConflict.
	Create(ctx context.Context, client *domain.Client, passwordHash string) (int64, error)

	// GetByLogin возвращает клиента вместе с хешем пароля
	GetByLogin(ctx context.Context, login string) (*domain.ClientWithHash, error)

	// ExistsEmail проверяет, зарегистрирован ли email
	ExistsEmail(ctx context.Context, email string) (bool, error)
}

// CarRepository определяет методы для работы с каталогом автомобилей
type CarRepository interface {
	// ListAvailable возвращает автомобили, у которых нет неотмененных
	// броней, пересекающих полуоткрытый диапазон [dateFrom, dateTo).
	// Сортировка по car_id по возрастанию.
	ListAvailable(ctx context.Context, dateFrom, dateTo domain.Date) ([]*domain.Car, error)

	// GetByID возвращает автомобиль по ID
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
}

// ReservationRepository определяет методы для работы с бронями.
// Контракт, который потребляет движок бронирования.
type ReservationRepository interface {
	// IsClientAllowed возвращает true, если у клиента нет активных броней
	// (pending/confirmed с date_to >= сегодня)
	IsClientAllowed(ctx context.Context, clientID int64) (bool, error)

	// Create атомарно создает бронь со статусом pending, фиксируя текущий
	// тариф автомобиля. Пересечение с другой активной бронью того же
	// автомобиля обязано отклоняться на уровне хранилища -
	// domain.ErrCarUnavailable.
	Create(ctx context.Context, clientID, carID int64, dateFrom, dateTo domain.Date) (int64, error)

	// UpdateStatus меняет статус брони, сверяя владельца.
	// Возвращает true, если обновлена ровно одна строка.
	UpdateStatus(ctx context.Context, rentalID, clientID int64, status domain.ReservationStatus) (bool, error)

	// ListByClient возвращает все брони клиента, новые даты первыми
	ListByClient(ctx context.Context, clientID int64) ([]*domain.ReservationView, error)

	// GetByIDForClient возвращает бронь по (rental_id, client_id).
	// Чужая или несуществующая бронь - domain.ErrReservationNotFound.
	GetByIDForClient(ctx context.Context, rentalID, clientID int64) (*domain.ReservationView, error)
}

// RecoveryTokenStore хранит токены восстановления пароля по email.
// Должен быть безопасен при конкурентном доступе; повторная запись
// по тому же email перезаписывает предыдущий токен.
type RecoveryTokenStore interface {
	// Put сохраняет токен с TTL
	Put(ctx context.Context, email, token string, ttlSec int) error

	// Get возвращает действующий токен, ok=false если токена нет
	// или он истек
	Get(ctx context.Context, email string) (token string, ok bool, err error)
}
