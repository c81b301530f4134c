// Package session drives one seat-booking session: load the showtime
// context, accept seat toggles, submit the booking, and poll until the
// booking service confirms it.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"movietix-cli/model"
	"movietix-cli/seats"
)

// DefaultPollInterval is how often a pending booking is re-fetched.
const DefaultPollInterval = 5 * time.Second

var (
	// ErrNoSeatsSelected guards submission: a booking needs at least one seat.
	ErrNoSeatsSelected = errors.New("no seats selected")
	// ErrNotAuthenticated is returned when a controller is built without a user.
	ErrNotAuthenticated = errors.New("booking requires a signed-in user")
)

// State is the session lifecycle position.
type State int

const (
	StateLoading State = iota
	StateLoadFailed
	StateReady
	StateSubmitting
	StatePolling
	StateConfirmed
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoadFailed:
		return "load-failed"
	case StateReady:
		return "ready"
	case StateSubmitting:
		return "submitting"
	case StatePolling:
		return "polling"
	case StateConfirmed:
		return "confirmed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// TheatreService is the slice of the theatre directory the session needs.
type TheatreService interface {
	GetShowtime(ctx context.Context, showtimeId int) (model.Showtime, error)
	GetScreen(ctx context.Context, screenId int) (model.Screen, error)
	GetTheatre(ctx context.Context, theatreId int) (model.Theatre, error)
}

// BookingService is the slice of the booking service the session needs.
type BookingService interface {
	GetBookedSeats(ctx context.Context, showtimeId int) ([]model.BookedSeat, error)
	CreateBooking(ctx context.Context, req model.BookingRequest) (model.BookingReceipt, error)
	GetBooking(ctx context.Context, bookingId int) (model.Booking, error)
}

// Config wires a controller to its collaborators. User and ShowtimeId are
// required; there is no fallback identity.
type Config struct {
	Theatre      TheatreService
	Booking      BookingService
	User         model.User
	ShowtimeId   int
	PollInterval time.Duration
	Logger       *log.Logger
}

// Controller owns the state of one booking session for one showtime.
// Exactly one controller exists per session; its methods are safe to call
// from the UI loop and from command goroutines.
type Controller struct {
	theatre      TheatreService
	booking      BookingService
	user         model.User
	showtimeId   int
	pollInterval time.Duration
	logger       *log.Logger

	mu        sync.Mutex
	state     State
	lastErr   error
	grid      *seats.Grid
	showtime  model.Showtime
	screen    model.Screen
	theatreCx model.Theatre
	bookingId int
}

// New builds a controller in the Loading state.
func New(cfg Config) (*Controller, error) {
	if cfg.Theatre == nil || cfg.Booking == nil {
		return nil, errors.New("theatre and booking services are required")
	}
	if cfg.User.Id <= 0 {
		return nil, ErrNotAuthenticated
	}
	if cfg.ShowtimeId <= 0 {
		return nil, errors.New("showtime id is required")
	}
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{
		theatre:      cfg.Theatre,
		booking:      cfg.Booking,
		user:         cfg.User,
		showtimeId:   cfg.ShowtimeId,
		pollInterval: interval,
		logger:       logger,
		state:        StateLoading,
	}, nil
}

// Load fetches the session context. The showtime, screen and theatre
// fetches are chained because each needs the previous one's id; the
// booked-seats snapshot has no dependency and runs alongside the chain.
// Any failure moves the session to LoadFailed. Calling Load again retries
// from scratch.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	c.state = StateLoading
	c.lastErr = nil
	c.mu.Unlock()

	type bookedResult struct {
		booked []model.BookedSeat
		err    error
	}
	bookedCh := make(chan bookedResult, 1)
	go func() {
		booked, err := c.booking.GetBookedSeats(ctx, c.showtimeId)
		bookedCh <- bookedResult{booked: booked, err: err}
	}()

	showtime, err := c.theatre.GetShowtime(ctx, c.showtimeId)
	if err != nil {
		return c.failLoad(fmt.Errorf("load showtime %d: %w", c.showtimeId, err))
	}
	screen, err := c.theatre.GetScreen(ctx, showtime.ScreenId)
	if err != nil {
		return c.failLoad(fmt.Errorf("load screen %d: %w", showtime.ScreenId, err))
	}
	theatre, err := c.theatre.GetTheatre(ctx, screen.TheatreId)
	if err != nil {
		return c.failLoad(fmt.Errorf("load theatre %d: %w", screen.TheatreId, err))
	}

	result := <-bookedCh
	if result.err != nil {
		return c.failLoad(fmt.Errorf("load booked seats: %w", result.err))
	}

	booked := make([]seats.Coord, 0, len(result.booked))
	for _, seat := range result.booked {
		booked = append(booked, seats.Coord{Row: seat.Row, Col: seat.Col})
	}
	grid, err := seats.NewGrid(seats.Layout{Rows: screen.NumRows, Cols: screen.NumCols}, booked)
	if err != nil {
		return c.failLoad(err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.showtime = showtime
	c.screen = screen
	c.theatreCx = theatre
	c.grid = grid
	c.state = StateReady
	return nil
}

func (c *Controller) failLoad(err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateLoadFailed
	c.lastErr = err
	return err
}

// State returns the current lifecycle position.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err returns the failure that caused LoadFailed or Failed.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Showtime returns the loaded showtime snapshot.
func (c *Controller) Showtime() model.Showtime {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.showtime
}

// Screen returns the loaded screen snapshot.
func (c *Controller) Screen() model.Screen {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.screen
}

// Theatre returns the loaded theatre snapshot.
func (c *Controller) Theatre() model.Theatre {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.theatreCx
}

// BookingId returns the id issued by the booking service, once Polling.
func (c *Controller) BookingId() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bookingId
}

// Toggle flips one seat while the session is Ready. The outcome never
// changes the session state: a limit or range error surfaces as a warning
// in the view and the selection stays as it was.
func (c *Controller) Toggle(coord seats.Coord) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateReady {
		return fmt.Errorf("cannot toggle seats while %s", c.state)
	}
	return c.grid.Toggle(coord)
}

// IsBooked reports whether a seat is taken in the loaded snapshot.
func (c *Controller) IsBooked(coord seats.Coord) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.grid != nil && c.grid.IsBooked(coord)
}

// IsSelected reports whether a seat is currently selected.
func (c *Controller) IsSelected(coord seats.Coord) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.grid != nil && c.grid.IsSelected(coord)
}

// Selected returns the selection in pick order.
func (c *Controller) Selected() []seats.Coord {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.grid == nil {
		return nil
	}
	return c.grid.Selected()
}

// SelectedCount returns the number of selected seats.
func (c *Controller) SelectedCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.grid == nil {
		return 0
	}
	return c.grid.SelectedCount()
}

// TotalPrice is the exact price of the current selection.
func (c *Controller) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.grid == nil {
		return 0
	}
	return c.grid.TotalPrice(c.showtime.Price)
}

// Submit sends the booking request. On success the session moves to
// Polling with the issued booking id; on failure it moves to Failed with
// the selection intact so the user can retry without reselecting.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateReady {
		state := c.state
		c.mu.Unlock()
		return fmt.Errorf("cannot submit while %s", state)
	}
	selection := c.grid.Selected()
	if len(selection) == 0 {
		c.mu.Unlock()
		return ErrNoSeatsSelected
	}
	c.state = StateSubmitting
	req := model.BookingRequest{
		UserId:     c.user.Id,
		ShowtimeId: c.showtime.Id,
		Seats:      toSeatRefs(selection),
	}
	c.mu.Unlock()

	receipt, err := c.booking.CreateBooking(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = StateFailed
		c.lastErr = fmt.Errorf("create booking: %w", err)
		return c.lastErr
	}
	c.bookingId = receipt.BookingId
	c.state = StatePolling
	return nil
}

// Dismiss acknowledges a submission failure and returns to Ready.
func (c *Controller) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateFailed {
		c.state = StateReady
		c.lastErr = nil
	}
}

// AwaitConfirmation polls the booking until its status reads "confirmed"
// (case-insensitively), then clears the selection and moves to Confirmed.
// A failed poll is logged and the next tick proceeds; any other status
// keeps polling. Cancelling ctx stops the loop with no further fetches —
// every code path that ends the session must cancel exactly once.
func (c *Controller) AwaitConfirmation(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StatePolling {
		state := c.state
		c.mu.Unlock()
		return fmt.Errorf("cannot poll while %s", state)
	}
	bookingId := c.bookingId
	c.mu.Unlock()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			booking, err := c.booking.GetBooking(ctx, bookingId)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				c.logger.Warn("booking status poll failed", "booking_id", bookingId, "err", err)
				continue
			}
			if !strings.EqualFold(booking.Status, model.BookingStatusConfirmed) {
				c.logger.Debug("booking not confirmed yet", "booking_id", bookingId, "status", booking.Status)
				continue
			}
			c.mu.Lock()
			c.grid.Clear()
			c.state = StateConfirmed
			c.mu.Unlock()
			return nil
		}
	}
}

func toSeatRefs(coords []seats.Coord) []model.SeatRef {
	refs := make([]model.SeatRef, 0, len(coords))
	for _, coord := range coords {
		refs = append(refs, model.SeatRef{Row: coord.Row, Col: coord.Col})
	}
	return refs
}
