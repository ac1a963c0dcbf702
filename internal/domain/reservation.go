package domain

// ReservationStatus представляет статус бронирования
type ReservationStatus string

const (
	// StatusPending - бронь создана, но еще не подтверждена.
	// Выставляется атомарно вместе со вставкой строки.
	StatusPending ReservationStatus = "pending"
	// StatusConfirmed - единственное устойчивое состояние в нормальном
	// сценарии: движок подтверждает бронь сразу после создания.
	StatusConfirmed ReservationStatus = "confirmed"
	// StatusCanceled - терминальное состояние, выходов из него нет
	StatusCanceled ReservationStatus = "canceled"
)

// IsActive сообщает, блокирует ли статус автомобиль и клиента.
// Активные брони участвуют в проверке пересечений и в гейте
// "одна активная бронь на клиента".
func (s ReservationStatus) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// IsTerminal сообщает, что переходов из статуса больше нет
func (s ReservationStatus) IsTerminal() bool {
	return s == StatusCanceled
}

// ReservationView - проекция брони для клиента: строка reservations,
// обогащенная атрибутами автомобиля и клиента. Тариф и суммы
// зафиксированы на момент бронирования, последующие изменения
// каталога на них не влияют.
type ReservationView struct {
	RentalID           int64             `json:"rental_id"`
	ClientID           int64             `json:"client_id"`
	FullName           string            `json:"full_name"`
	CarID              int64             `json:"car_id"`
	PlateNumber        string            `json:"plate_number"`
	Brand              string            `json:"brand"`
	Model              string            `json:"model"`
	DateFrom           Date              `json:"date_from"`
	DateTo             Date              `json:"date_to"`
	Status             ReservationStatus `json:"status"`
	DailyRateAtBooking float64           `json:"daily_rate_at_booking"`
	TotalAmount        float64           `json:"total_amount"`
	PenaltyAmount      float64           `json:"penalty_amount"`
	DepositAmount      float64           `json:"deposit_amount"`
}
