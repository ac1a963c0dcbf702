package postgres

import (
	"context"
	"errors"

	"github.com/NikolaySkladnev/car-rent/internal/domain"
	"github.com/NikolaySkladnev/car-rent/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type carRepository struct {
	db *pgxpool.Pool
}

func NewCarRepository(db *pgxpool.Pool) repository.CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) ListAvailable(ctx context.Context, dateFrom, dateTo domain.Date) ([]*domain.Car, error) {
	// Доступен автомобиль, у которого нет неотмененной брони,
	// пересекающей запрошенный полуоткрытый диапазон
	query := `
		SELECT car_id, plate_number, brand, model, COALESCE(status, 'available') AS status,
		       daily_cost, insurance_cost, prod_year
		FROM cars c
		WHERE NOT EXISTS (
			SELECT 1
			FROM reservations r
			WHERE r.car_id = c.car_id
			  AND r.status <> 'canceled'
			  AND daterange(r.date_from, r.date_to, '[)') && daterange($1, $2, '[)')
		)
		ORDER BY car_id
	`

	rows, err := r.db.Query(ctx, query, dateFrom, dateTo)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var cars []*domain.Car
	for rows.Next() {
		car := &domain.Car{}
		err := rows.Scan(
			&car.CarID,
			&car.PlateNumber,
			&car.Brand,
			&car.Model,
			&car.Status,
			&car.DailyCost,
			&car.InsuranceCost,
			&car.ProdYear,
		)
		if err != nil {
			return nil, mapError(err)
		}
		cars = append(cars, car)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	return cars, nil
}

func (r *carRepository) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	query := `
		SELECT car_id, plate_number, brand, model, COALESCE(status, 'available') AS status,
		       daily_cost, insurance_cost, prod_year
		FROM cars
		WHERE car_id = $1
	`

	car := &domain.Car{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&car.CarID,
		&car.PlateNumber,
		&car.Brand,
		&car.Model,
		&car.Status,
		&car.DailyCost,
		&car.InsuranceCost,
		&car.ProdYear,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCarNotFound
		}
		return nil, mapError(err)
	}

	return car, nil
}
