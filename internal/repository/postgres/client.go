package postgres

import (
	"context"
	"errors"

	"github.com/NikolaySkladnev/car-rent/internal/domain"
	"github.com/NikolaySkladnev/car-rent/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type clientRepository struct {
	db *pgxpool.Pool
}

func NewClientRepository(db *pgxpool.Pool) repository.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, client *domain.Client, passwordHash string) (int64, error) {
	query := `
		INSERT INTO clients (full_name, passport_data, login, password_hash, email, phone, address)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING client_id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		client.FullName,
		client.PassportData,
		client.Login,
		passwordHash,
		client.Email,
		nullIfEmpty(client.Phone),
		nullIfEmpty(client.Address),
	).Scan(&id)

	if err != nil {
		return 0, mapError(err)
	}

	return id, nil
}

func (r *clientRepository) GetByLogin(ctx context.Context, login string) (*domain.ClientWithHash, error) {
	query := `
		SELECT client_id, full_name, passport_data, login, email, phone, address, password_hash
		FROM clients
		WHERE login = $1
	`

	var (
		row            domain.ClientWithHash
		phone, address *string
	)
	err := r.db.QueryRow(ctx, query, login).Scan(
		&row.Client.ClientID,
		&row.Client.FullName,
		&row.Client.PassportData,
		&row.Client.Login,
		&row.Client.Email,
		&phone,
		&address,
		&row.PasswordHash,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, mapError(err)
	}

	row.Client.Phone = deref(phone)
	row.Client.Address = deref(address)

	return &row, nil
}

func (r *clientRepository) ExistsEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT COUNT(*) FROM clients WHERE email = $1`

	var cnt int
	if err := r.db.QueryRow(ctx, query, email).Scan(&cnt); err != nil {
		return false, mapError(err)
	}

	return cnt > 0, nil
}

// nullIfEmpty превращает пустую строку в NULL для опциональных колонок
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
