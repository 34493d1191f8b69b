package models

import "time"

// Статусы бронирования.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Booking представляет бронирование причального места.
// Создание бронирования доступно только premium-пользователям;
// проверка выполняется в момент вызова, а не по закешированному статусу.
type Booking struct {
	ID                int        `json:"id"`
	MooringLocationID int        `json:"mooring_location_id"`
	CustomerName      string     `json:"customer_name"`
	CustomerEmail     string     `json:"customer_email"`
	CustomerPhone     *string    `json:"customer_phone,omitempty"`
	BoatName          *string    `json:"boat_name,omitempty"`
	BoatLength        *float64   `json:"boat_length,omitempty"`
	CheckInDate       time.Time  `json:"check_in_date"`
	CheckOutDate      time.Time  `json:"check_out_date"`
	NumberOfNights    int        `json:"number_of_nights"`
	TotalPrice        *float64   `json:"total_price,omitempty"`
	SpecialRequests   *string    `json:"special_requests,omitempty"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
}

// DummyBooking используется для приёма данных бронирования из JSON-запроса.
// Даты приходят строками в формате 02-01-2006.
type DummyBooking struct {
	MooringLocationID int     `json:"mooring_location_id" validate:"required,gt=0"`
	CustomerName      string  `json:"customer_name" validate:"required"`
	CustomerEmail     string  `json:"customer_email" validate:"required,email"`
	CustomerPhone     string  `json:"customer_phone,omitempty"`
	BoatName          string  `json:"boat_name,omitempty"`
	BoatLength        float64 `json:"boat_length,omitempty" validate:"omitempty,gt=0"`
	CheckInDate       string  `json:"check_in_date" validate:"required"`
	CheckOutDate      string  `json:"check_out_date" validate:"required"`
	SpecialRequests   string  `json:"special_requests,omitempty"`
}
