package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"movietix-cli/model"
)

// GetBookedSeats fetches the seats already taken for a showtime. The
// snapshot is read once per booking session and is not live-updated.
func (c *Client) GetBookedSeats(ctx context.Context, showtimeId int) ([]model.BookedSeat, error) {
	if showtimeId <= 0 {
		return nil, errors.New("showtime id is required")
	}
	endpoint := fmt.Sprintf("%s/api/bookings/showtime/%d/seats", c.bookingURL, showtimeId)

	var payload struct {
		Seats []model.BookedSeat `json:"seats"`
	}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	return payload.Seats, nil
}

// CreateBooking submits a booking request. An idempotency key is attached
// so a retried POST cannot double-book the same seats.
func (c *Client) CreateBooking(ctx context.Context, req model.BookingRequest) (model.BookingReceipt, error) {
	if req.UserId <= 0 {
		return model.BookingReceipt{}, errors.New("user id is required")
	}
	if req.ShowtimeId <= 0 {
		return model.BookingReceipt{}, errors.New("showtime id is required")
	}
	if len(req.Seats) == 0 {
		return model.BookingReceipt{}, errors.New("at least one seat is required")
	}
	endpoint := fmt.Sprintf("%s/api/bookings/", c.bookingURL)
	headers := map[string]string{"Idempotency-Key": uuid.NewString()}

	var receipt model.BookingReceipt
	if err := c.postJSON(ctx, endpoint, req, headers, &receipt); err != nil {
		return model.BookingReceipt{}, err
	}
	if receipt.BookingId == 0 {
		return model.BookingReceipt{}, errors.New("booking service returned no booking id")
	}
	return receipt, nil
}

// GetBooking fetches a booking by id. Its status field drives
// confirmation polling.
func (c *Client) GetBooking(ctx context.Context, bookingId int) (model.Booking, error) {
	if bookingId <= 0 {
		return model.Booking{}, errors.New("booking id is required")
	}
	endpoint := fmt.Sprintf("%s/api/bookings/%d", c.bookingURL, bookingId)

	var booking model.Booking
	if err := c.getJSON(ctx, endpoint, &booking); err != nil {
		return model.Booking{}, err
	}
	return booking, nil
}

// GetUserBookings fetches all bookings belonging to a user.
func (c *Client) GetUserBookings(ctx context.Context, userId int) ([]model.Booking, error) {
	if userId <= 0 {
		return nil, errors.New("user id is required")
	}
	endpoint := fmt.Sprintf("%s/api/bookings/user/%d", c.bookingURL, userId)

	var bookings []model.Booking
	if err := c.getJSON(ctx, endpoint, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
