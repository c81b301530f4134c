package service

import (
	"context"
	"errors"
	"fmt"

	"movietix-cli/model"
)

// GetShowtimes fetches all showtimes for a movie.
func (c *Client) GetShowtimes(ctx context.Context, movieId int) ([]model.Showtime, error) {
	if movieId <= 0 {
		return nil, errors.New("movie id is required")
	}
	endpoint := fmt.Sprintf("%s/showtimes?movie_id=%d", c.theatreURL, movieId)

	var showtimes []model.Showtime
	if err := c.getJSON(ctx, endpoint, &showtimes); err != nil {
		return nil, err
	}
	return showtimes, nil
}

// GetShowtime fetches one showtime by id.
func (c *Client) GetShowtime(ctx context.Context, showtimeId int) (model.Showtime, error) {
	if showtimeId <= 0 {
		return model.Showtime{}, errors.New("showtime id is required")
	}
	endpoint := fmt.Sprintf("%s/showtimes/%d", c.theatreURL, showtimeId)

	var showtime model.Showtime
	if err := c.getJSON(ctx, endpoint, &showtime); err != nil {
		return model.Showtime{}, err
	}
	if showtime.Id == 0 {
		return model.Showtime{}, errors.New("showtime not found")
	}
	return showtime, nil
}

// GetScreen fetches the screen layout for a screen id.
func (c *Client) GetScreen(ctx context.Context, screenId int) (model.Screen, error) {
	if screenId <= 0 {
		return model.Screen{}, errors.New("screen id is required")
	}
	endpoint := fmt.Sprintf("%s/screens/%d", c.theatreURL, screenId)

	var screen model.Screen
	if err := c.getJSON(ctx, endpoint, &screen); err != nil {
		return model.Screen{}, err
	}
	return screen, nil
}

// GetTheatre fetches a theatre by id.
func (c *Client) GetTheatre(ctx context.Context, theatreId int) (model.Theatre, error) {
	if theatreId <= 0 {
		return model.Theatre{}, errors.New("theatre id is required")
	}
	endpoint := fmt.Sprintf("%s/theatres/%d", c.theatreURL, theatreId)

	var theatre model.Theatre
	if err := c.getJSON(ctx, endpoint, &theatre); err != nil {
		return model.Theatre{}, err
	}
	return theatre, nil
}

// GetCinema fetches the cinema chain a theatre belongs to.
func (c *Client) GetCinema(ctx context.Context, cinemaId int) (model.Cinema, error) {
	if cinemaId <= 0 {
		return model.Cinema{}, errors.New("cinema id is required")
	}
	endpoint := fmt.Sprintf("%s/cinemas/%d", c.theatreURL, cinemaId)

	var cinema model.Cinema
	if err := c.getJSON(ctx, endpoint, &cinema); err != nil {
		return model.Cinema{}, err
	}
	return cinema, nil
}
