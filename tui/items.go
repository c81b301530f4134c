package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/list"
	"movietix-cli/model"
	"movietix-cli/service"
	"movietix-cli/store"
)

type movieItem struct {
	movie  model.Movie
	recent bool
}

func (m movieItem) Title() string {
	if m.movie.Rating > 0 {
		return fmt.Sprintf("%s • ★ %.1f", m.movie.Name, m.movie.Rating)
	}
	return m.movie.Name
}

func (m movieItem) Description() string {
	parts := []string{}
	if m.recent {
		parts = append(parts, "Recent")
	}
	if len(m.movie.Genres) > 0 {
		parts = append(parts, strings.Join(m.movie.Genres, ", "))
	}
	if m.movie.RuntimeMinutes > 0 {
		parts = append(parts, fmt.Sprintf("%d min", m.movie.RuntimeMinutes))
	}
	if m.movie.Language != "" {
		parts = append(parts, m.movie.Language)
	}
	return strings.Join(parts, " • ")
}

func (m movieItem) FilterValue() string {
	return strings.ToLower(strings.Join(append([]string{m.movie.Name}, m.movie.Genres...), " "))
}

func buildMovieItems(movies []model.Movie) []list.Item {
	recents, _ := store.LoadRecentMovies()
	byId := map[int]model.Movie{}
	for _, movie := range movies {
		byId[movie.Id] = movie
	}

	var items []list.Item
	used := map[int]bool{}
	for _, recent := range recents {
		if movie, ok := byId[recent.Id]; ok && !used[movie.Id] {
			items = append(items, movieItem{movie: movie, recent: true})
			used[movie.Id] = true
		}
	}

	remaining := make([]model.Movie, 0, len(movies))
	for _, movie := range movies {
		if !used[movie.Id] {
			remaining = append(remaining, movie)
		}
	}
	sort.Slice(remaining, func(i, j int) bool {
		return strings.ToLower(remaining[i].Name) < strings.ToLower(remaining[j].Name)
	})
	for _, movie := range remaining {
		items = append(items, movieItem{movie: movie})
	}
	return items
}

// showtimeEntry is a showtime enriched with the screen, theatre and cinema
// it plays in, so the list can group by venue without further fetches.
type showtimeEntry struct {
	showtime model.Showtime
	screen   model.Screen
	theatre  model.Theatre
	cinema   model.Cinema
}

type showtimeItem struct {
	entry showtimeEntry
}

func (s showtimeItem) Title() string {
	when := s.entry.showtime.StartTime.Local().Format("Mon 02 Jan • 15:04")
	return fmt.Sprintf("%s • Screen %s • $%.2f", when, s.entry.screen.ScreenNumber, s.entry.showtime.Price)
}

func (s showtimeItem) Description() string {
	parts := []string{}
	if s.entry.cinema.Name != "" {
		parts = append(parts, s.entry.cinema.Name)
	}
	if s.entry.theatre.Name != "" {
		parts = append(parts, s.entry.theatre.Name)
	}
	if s.entry.theatre.Address != "" {
		parts = append(parts, s.entry.theatre.Address)
	}
	return strings.Join(parts, " • ")
}

func (s showtimeItem) FilterValue() string {
	return strings.ToLower(strings.Join([]string{
		s.entry.cinema.Name,
		s.entry.theatre.Name,
		s.entry.theatre.Address,
		s.entry.screen.ScreenNumber,
	}, " "))
}

func buildShowtimeItems(entries []showtimeEntry) []list.Item {
	sorted := append([]showtimeEntry{}, entries...)
	sort.Slice(sorted, func(i, j int) bool {
		a := sorted[i]
		b := sorted[j]
		if !a.showtime.StartTime.Equal(b.showtime.StartTime) {
			return a.showtime.StartTime.Before(b.showtime.StartTime)
		}
		if !strings.EqualFold(a.cinema.Name, b.cinema.Name) {
			return strings.ToLower(a.cinema.Name) < strings.ToLower(b.cinema.Name)
		}
		return strings.ToLower(a.theatre.Name) < strings.ToLower(b.theatre.Name)
	})

	items := make([]list.Item, 0, len(sorted))
	for _, entry := range sorted {
		items = append(items, showtimeItem{entry: entry})
	}
	return items
}

type bookingItem struct {
	booking model.Booking
}

func (b bookingItem) Title() string {
	return fmt.Sprintf("Booking #%d • %s", b.booking.Id, strings.ToLower(b.booking.Status))
}

func (b bookingItem) Description() string {
	seatCount := len(b.booking.Seats)
	label := "seats"
	if seatCount == 1 {
		label = "seat"
	}
	parts := []string{fmt.Sprintf("%d %s", seatCount, label), fmt.Sprintf("showtime %d", b.booking.ShowtimeId)}
	if !b.booking.CreatedAt.IsZero() {
		parts = append(parts, b.booking.CreatedAt.Local().Format("02 Jan 15:04"))
	}
	return strings.Join(parts, " • ")
}

func (b bookingItem) FilterValue() string {
	return strings.ToLower(fmt.Sprintf("%d %s", b.booking.Id, b.booking.Status))
}

func buildBookingItems(bookings []model.Booking) []list.Item {
	sorted := append([]model.Booking{}, bookings...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	items := make([]list.Item, 0, len(sorted))
	for _, booking := range sorted {
		items = append(items, bookingItem{booking: booking})
	}
	return items
}

type showtimeResult struct {
	entry showtimeEntry
	err   error
}

// enrichShowtimes resolves screen, theatre and cinema for each showtime
// with bounded parallelism. A showtime whose venue lookup fails is dropped
// rather than failing the whole page; the error count comes back so the
// view can mention it.
func enrichShowtimes(ctx context.Context, client *service.Client, showtimes []model.Showtime) ([]showtimeEntry, int) {
	out := make(chan showtimeResult, len(showtimes))
	sem := make(chan struct{}, 6)
	var wg sync.WaitGroup

	for _, showtime := range showtimes {
		wg.Add(1)
		go func(showtime model.Showtime) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			screen, err := client.GetScreen(ctx, showtime.ScreenId)
			if err != nil {
				out <- showtimeResult{err: err}
				return
			}
			theatre, err := client.GetTheatre(ctx, screen.TheatreId)
			if err != nil {
				out <- showtimeResult{err: err}
				return
			}
			cinema, err := client.GetCinema(ctx, theatre.CinemaId)
			if err != nil {
				out <- showtimeResult{err: err}
				return
			}
			out <- showtimeResult{entry: showtimeEntry{
				showtime: showtime,
				screen:   screen,
				theatre:  theatre,
				cinema:   cinema,
			}}
		}(showtime)
	}

	wg.Wait()
	close(out)

	var entries []showtimeEntry
	failed := 0
	for result := range out {
		if result.err != nil {
			failed++
			continue
		}
		entries = append(entries, result.entry)
	}
	return entries, failed
}
