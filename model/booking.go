package model

import "time"

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// SeatRef is the wire shape of one seat in booking payloads.
type SeatRef struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// BookedSeat is one seat already taken for a showtime, as reported by the
// booking service. Status is currently always "booked".
type BookedSeat struct {
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Status    string `json:"status"`
	BookingId int    `json:"booking_id"`
}

type BookingRequest struct {
	UserId     int       `json:"user_id"`
	ShowtimeId int       `json:"showtime_id"`
	Seats      []SeatRef `json:"seats"`
}

// BookingReceipt is the booking service's answer to a create call.
type BookingReceipt struct {
	BookingId int    `json:"booking_id"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}

type Booking struct {
	Id         int       `json:"booking_id"`
	UserId     int       `json:"user_id"`
	ShowtimeId int       `json:"showtime_id"`
	Status     string    `json:"status"`
	Seats      []SeatRef `json:"seats"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
