package postgres

import (
	"errors"
	"strings"

	"github.com/NikolaySkladnev/car-rent/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

// Коды SQLSTATE, которые хранилище переводит в доменные ошибки
const (
	codeUniqueViolation    = "23505"
	codeExclusionViolation = "23P01"
	codeForeignKey         = "23503"
	codeCheckViolation     = "23514"
	codeInvalidDatetime    = "22007"
	codeDatetimeOverflow   = "22008"
	codeInvalidTextRepr    = "22P02"
	codeRaiseException     = "P0001"
)

// mapError переводит структурированные ошибки PostgreSQL в доменные.
// Пересечение броней ловится exclusion constraint (23P01), дубликаты
// login/email - unique constraint (23505). RAISE EXCEPTION из функции
// create_reservation приходит как P0001 без подкода, поэтому для него
// текст сообщения различает конфликт и валидацию.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeUniqueViolation:
		return domain.ErrConflict
	case codeExclusionViolation:
		return domain.ErrCarUnavailable
	case codeForeignKey, codeCheckViolation:
		return domain.ErrValidation
	case codeInvalidDatetime, codeDatetimeOverflow, codeInvalidTextRepr:
		return domain.ErrValidation
	case codeRaiseException:
		msg := strings.ToLower(pgErr.Message)
		if strings.Contains(msg, "not available") || strings.Contains(msg, "unavailable") {
			return domain.ErrCarUnavailable
		}
		return domain.ErrValidation
	}

	return err
}
