package domain

// Car - автомобиль автопарка.
// С точки зрения бронирования сущность только для чтения:
// каталог меняется внешним контуром управления парком.
type Car struct {
	CarID         int64   `json:"car_id"`
	PlateNumber   string  `json:"plate_number"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	Status        string  `json:"status"`
	DailyCost     float64 `json:"daily_cost"`
	InsuranceCost float64 `json:"insurance_cost"`
	ProdYear      *int    `json:"prod_year,omitempty"`
}
