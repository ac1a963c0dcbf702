package postgres

import (
	"context"
	"errors"

	"github.com/NikolaySkladnev/car-rent/internal/domain"
	"github.com/NikolaySkladnev/car-rent/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type reservationRepository struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) IsClientAllowed(ctx context.Context, clientID int64) (bool, error) {
	// Активная бронь: pending/confirmed с датой окончания не раньше сегодня
	query := `
		SELECT COUNT(*)
		FROM reservations
		WHERE client_id = $1
		  AND status IN ('pending', 'confirmed')
		  AND date_to >= CURRENT_DATE
	`

	var cnt int
	if err := r.db.QueryRow(ctx, query, clientID).Scan(&cnt); err != nil {
		return false, mapError(err)
	}

	return cnt == 0, nil
}

func (r *reservationRepository) Create(ctx context.Context, clientID, carID int64, dateFrom, dateTo domain.Date) (int64, error) {
	// Вся атомарность здесь: функция create_reservation вставляет бронь
	// со статусом pending и снапшотом тарифа, а пересечение с другой
	// активной бронью того же автомобиля отклоняет exclusion constraint.
	// Никаких блокировок на стороне приложения.
	query := `SELECT create_reservation($1, $2, $3, $4)`

	var id int64
	err := r.db.QueryRow(ctx, query, clientID, carID, dateFrom, dateTo).Scan(&id)
	if err != nil {
		return 0, mapError(err)
	}

	return id, nil
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, rentalID, clientID int64, status domain.ReservationStatus) (bool, error) {
	// Обновление всегда сверяет владельца: клиент меняет только свои брони
	query := `
		UPDATE reservations
		SET status = $1
		WHERE rental_id = $2 AND client_id = $3
	`

	tag, err := r.db.Exec(ctx, query, status, rentalID, clientID)
	if err != nil {
		return false, mapError(err)
	}

	return tag.RowsAffected() == 1, nil
}

const reservationViewColumns = `
	rental_id,
	client_id,
	full_name,
	car_id,
	plate_number,
	brand,
	model,
	date_from,
	date_to,
	status,
	daily_rate_at_booking,
	total_amount,
	penalty_amount,
	deposit_amount
`

func (r *reservationRepository) ListByClient(ctx context.Context, clientID int64) ([]*domain.ReservationView, error) {
	query := `
		SELECT ` + reservationViewColumns + `
		FROM vw_client_reservations
		WHERE client_id = $1
		ORDER BY date_from DESC, rental_id DESC
	`

	rows, err := r.db.Query(ctx, query, clientID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var views []*domain.ReservationView
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, mapError(err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	return views, nil
}

func (r *reservationRepository) GetByIDForClient(ctx context.Context, rentalID, clientID int64) (*domain.ReservationView, error) {
	query := `
		SELECT ` + reservationViewColumns + `
		FROM vw_client_reservations
		WHERE rental_id = $1 AND client_id = $2
	`

	row := r.db.QueryRow(ctx, query, rentalID, clientID)
	view, err := scanReservationView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, mapError(err)
	}

	return view, nil
}

func scanReservationView(row pgx.Row) (*domain.ReservationView, error) {
	view := &domain.ReservationView{}
	err := row.Scan(
		&view.RentalID,
		&view.ClientID,
		&view.FullName,
		&view.CarID,
		&view.PlateNumber,
		&view.Brand,
		&view.Model,
		&view.DateFrom,
		&view.DateTo,
		&view.Status,
		&view.DailyRateAtBooking,
		&view.TotalAmount,
		&view.PenaltyAmount,
		&view.DepositAmount,
	)
	if err != nil {
		return nil, err
	}
	return view, nil
}
