package domain

import "errors"

// Доменные ошибки - используются во всех слоях приложения.
// HTTP статусы назначаются на границе (delivery) через errors.Is.

// Validation errors
var (
	ErrValidation       = errors.New("validation error")
	ErrInvalidDateRange = errors.New("date_to must be greater than date_from")
	ErrInvalidID        = errors.New("invalid id")
)

// Car errors
var (
	ErrCarNotFound    = errors.New("car not found")
	ErrCarUnavailable = errors.New("car is not available for selected dates")
)

// Client errors
var (
	ErrClientNotFound = errors.New("not found")
	ErrClientBlocked  = errors.New("client blocked")
)

// Reservation errors
var (
	ErrReservationNotFound = errors.New("reservation not found")
)

// Authorization errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// General errors
var (
	ErrConflict = errors.New("conflict")
	ErrInternal = errors.New("internal error")
)
