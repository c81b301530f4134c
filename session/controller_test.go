package session

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"movietix-cli/model"
	"movietix-cli/seats"
)

type fakeTheatre struct {
	showtime model.Showtime
	screen   model.Screen
	theatre  model.Theatre

	showtimeErr error
	screenErr   error
	theatreErr  error

	showtimeCalls int32
	screenCalls   int32
	theatreCalls  int32
}

func (f *fakeTheatre) GetShowtime(ctx context.Context, showtimeId int) (model.Showtime, error) {
	atomic.AddInt32(&f.showtimeCalls, 1)
	return f.showtime, f.showtimeErr
}

func (f *fakeTheatre) GetScreen(ctx context.Context, screenId int) (model.Screen, error) {
	atomic.AddInt32(&f.screenCalls, 1)
	return f.screen, f.screenErr
}

func (f *fakeTheatre) GetTheatre(ctx context.Context, theatreId int) (model.Theatre, error) {
	atomic.AddInt32(&f.theatreCalls, 1)
	return f.theatre, f.theatreErr
}

type fakeBooking struct {
	booked    []model.BookedSeat
	bookedErr error

	receipt   model.BookingReceipt
	createErr error

	statuses  []string
	failPolls int32

	createCalls int32
	pollCalls   int32
}

func (f *fakeBooking) GetBookedSeats(ctx context.Context, showtimeId int) ([]model.BookedSeat, error) {
	return f.booked, f.bookedErr
}

func (f *fakeBooking) CreateBooking(ctx context.Context, req model.BookingRequest) (model.BookingReceipt, error) {
	atomic.AddInt32(&f.createCalls, 1)
	return f.receipt, f.createErr
}

func (f *fakeBooking) GetBooking(ctx context.Context, bookingId int) (model.Booking, error) {
	call := atomic.AddInt32(&f.pollCalls, 1)
	if call <= f.failPolls {
		return model.Booking{}, errors.New("booking service flaky")
	}
	idx := int(call-f.failPolls) - 1
	if idx >= len(f.statuses) {
		idx = len(f.statuses) - 1
	}
	return model.Booking{Id: bookingId, Status: f.statuses[idx]}, nil
}

func testConfig(theatre *fakeTheatre, booking *fakeBooking) Config {
	return Config{
		Theatre:      theatre,
		Booking:      booking,
		User:         model.User{Id: 4, Email: "ripley@example.com"},
		ShowtimeId:   11,
		PollInterval: 2 * time.Millisecond,
	}
}

func healthyTheatre() *fakeTheatre {
	return &fakeTheatre{
		showtime: model.Showtime{Id: 11, MovieId: 7, ScreenId: 2, Price: 12.5},
		screen:   model.Screen{Id: 2, TheatreId: 3, ScreenNumber: "1", NumRows: 5, NumCols: 6},
		theatre:  model.Theatre{Id: 3, Name: "Downtown"},
	}
}

func loadedController(t *testing.T, theatre *fakeTheatre, booking *fakeBooking) *Controller {
	t.Helper()
	ctrl, err := New(testConfig(theatre, booking))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	return ctrl
}

func TestNew_RequiresUser(t *testing.T) {
	cfg := testConfig(healthyTheatre(), &fakeBooking{})
	cfg.User = model.User{}
	if _, err := New(cfg); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestLoad_HappyPath(t *testing.T) {
	theatre := healthyTheatre()
	booking := &fakeBooking{booked: []model.BookedSeat{{Row: 1, Col: 1, Status: "confirmed"}}}

	ctrl := loadedController(t, theatre, booking)
	if ctrl.State() != StateReady {
		t.Fatalf("expected ready, got %s", ctrl.State())
	}
	if !ctrl.IsBooked(seats.Coord{Row: 1, Col: 1}) {
		t.Fatal("expected booked snapshot applied")
	}
	if ctrl.Theatre().Name != "Downtown" {
		t.Fatalf("unexpected theatre: %+v", ctrl.Theatre())
	}
}

func TestLoad_ScreenFailureSkipsTheatre(t *testing.T) {
	theatre := healthyTheatre()
	theatre.screenErr = errors.New("screen service down")
	booking := &fakeBooking{}

	ctrl, err := New(testConfig(theatre, booking))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := ctrl.Load(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if ctrl.State() != StateLoadFailed {
		t.Fatalf("expected load-failed, got %s", ctrl.State())
	}
	if ctrl.Err() == nil {
		t.Fatal("expected a retained error")
	}
	if got := atomic.LoadInt32(&theatre.theatreCalls); got != 0 {
		t.Fatalf("expected no theatre fetch after screen failure, got %d", got)
	}
}

func TestLoad_RetryAfterFailure(t *testing.T) {
	theatre := healthyTheatre()
	theatre.showtimeErr = errors.New("transient")
	booking := &fakeBooking{}

	ctrl, _ := New(testConfig(theatre, booking))
	if err := ctrl.Load(context.Background()); err == nil {
		t.Fatal("expected error")
	}

	theatre.showtimeErr = nil
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("expected nil error on retry, got %v", err)
	}
	if ctrl.State() != StateReady {
		t.Fatalf("expected ready, got %s", ctrl.State())
	}
}

func TestToggle_OnlyWhileReady(t *testing.T) {
	ctrl, _ := New(testConfig(healthyTheatre(), &fakeBooking{}))
	if err := ctrl.Toggle(seats.Coord{Row: 1, Col: 1}); err == nil {
		t.Fatal("expected error before load")
	}
}

func TestSubmit_RequiresSelection(t *testing.T) {
	ctrl := loadedController(t, healthyTheatre(), &fakeBooking{})
	if err := ctrl.Submit(context.Background()); !errors.Is(err, ErrNoSeatsSelected) {
		t.Fatalf("expected ErrNoSeatsSelected, got %v", err)
	}
	if ctrl.State() != StateReady {
		t.Fatalf("expected ready, got %s", ctrl.State())
	}
}

func TestSubmit_FailurePreservesSelection(t *testing.T) {
	booking := &fakeBooking{createErr: errors.New("insufficient funds")}
	ctrl := loadedController(t, healthyTheatre(), booking)

	picked := seats.Coord{Row: 2, Col: 3}
	if err := ctrl.Toggle(picked); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := ctrl.Submit(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if ctrl.State() != StateFailed {
		t.Fatalf("expected failed, got %s", ctrl.State())
	}
	if !ctrl.IsSelected(picked) {
		t.Fatal("expected selection preserved after failure")
	}

	ctrl.Dismiss()
	if ctrl.State() != StateReady {
		t.Fatalf("expected ready after dismiss, got %s", ctrl.State())
	}
	if ctrl.Err() != nil {
		t.Fatalf("expected error cleared, got %v", ctrl.Err())
	}
	if !ctrl.IsSelected(picked) {
		t.Fatal("expected selection preserved after dismiss")
	}
}

func TestSubmit_MovesToPolling(t *testing.T) {
	booking := &fakeBooking{receipt: model.BookingReceipt{BookingId: 99, Status: "pending"}}
	ctrl := loadedController(t, healthyTheatre(), booking)

	_ = ctrl.Toggle(seats.Coord{Row: 2, Col: 3})
	if err := ctrl.Submit(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if ctrl.State() != StatePolling {
		t.Fatalf("expected polling, got %s", ctrl.State())
	}
	if ctrl.BookingId() != 99 {
		t.Fatalf("unexpected booking id: %d", ctrl.BookingId())
	}
}

func TestAwaitConfirmation_ConfirmsAfterPendingPolls(t *testing.T) {
	booking := &fakeBooking{
		receipt:  model.BookingReceipt{BookingId: 99, Status: "pending"},
		statuses: []string{"pending", "pending", "CONFIRMED"},
	}
	ctrl := loadedController(t, healthyTheatre(), booking)
	_ = ctrl.Toggle(seats.Coord{Row: 2, Col: 3})
	if err := ctrl.Submit(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if err := ctrl.AwaitConfirmation(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if ctrl.State() != StateConfirmed {
		t.Fatalf("expected confirmed, got %s", ctrl.State())
	}
	if got := atomic.LoadInt32(&booking.pollCalls); got != 3 {
		t.Fatalf("expected 3 polls, got %d", got)
	}
	if ctrl.SelectedCount() != 0 {
		t.Fatal("expected selection cleared after confirmation")
	}
}

func TestAwaitConfirmation_PollErrorsKeepPolling(t *testing.T) {
	booking := &fakeBooking{
		receipt:   model.BookingReceipt{BookingId: 99},
		statuses:  []string{"confirmed"},
		failPolls: 2,
	}
	ctrl := loadedController(t, healthyTheatre(), booking)
	_ = ctrl.Toggle(seats.Coord{Row: 1, Col: 2})
	if err := ctrl.Submit(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if err := ctrl.AwaitConfirmation(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if ctrl.State() != StateConfirmed {
		t.Fatalf("expected confirmed, got %s", ctrl.State())
	}
	if got := atomic.LoadInt32(&booking.pollCalls); got != 3 {
		t.Fatalf("expected 3 polls, got %d", got)
	}
}

func TestAwaitConfirmation_CancelStopsPolling(t *testing.T) {
	booking := &fakeBooking{
		receipt:  model.BookingReceipt{BookingId: 99},
		statuses: []string{"pending"},
	}
	ctrl := loadedController(t, healthyTheatre(), booking)
	_ = ctrl.Toggle(seats.Coord{Row: 1, Col: 2})
	if err := ctrl.Submit(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- ctrl.AwaitConfirmation(ctx)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("poll loop did not stop after cancel")
	}

	frozen := atomic.LoadInt32(&booking.pollCalls)
	time.Sleep(10 * time.Millisecond)
	if got := atomic.LoadInt32(&booking.pollCalls); got != frozen {
		t.Fatalf("expected no polls after cancel, got %d more", got-frozen)
	}
	if ctrl.State() != StatePolling {
		t.Fatalf("expected session still polling, got %s", ctrl.State())
	}
}
