package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"movietix-cli/model"
)

// MovieFilter narrows the now-showing listing. Zero value lists everything.
type MovieFilter struct {
	Name  string
	Genre string
}

// GetMovies fetches the now-showing catalog. The movie service answers with
// either a bare array or an {"items": [...]} envelope depending on
// pagination, so both shapes are accepted.
func (c *Client) GetMovies(ctx context.Context, filter MovieFilter) ([]model.Movie, error) {
	params := url.Values{}
	if name := strings.TrimSpace(filter.Name); name != "" {
		params.Set("name", name)
	}
	if genre := strings.TrimSpace(filter.Genre); genre != "" && !strings.EqualFold(genre, "All Genres") {
		params.Set("genre", genre)
	}

	endpoint := fmt.Sprintf("%s/movies", c.movieURL)
	if len(params) > 0 {
		endpoint = endpoint + "?" + params.Encode()
	}

	var raw json.RawMessage
	if err := c.getJSON(ctx, endpoint, &raw); err != nil {
		return nil, err
	}
	return decodeMovieListing(raw)
}

// GetMovie fetches one movie by id.
func (c *Client) GetMovie(ctx context.Context, movieId int) (model.Movie, error) {
	if movieId <= 0 {
		return model.Movie{}, errors.New("movie id is required")
	}
	endpoint := fmt.Sprintf("%s/movies/%d", c.movieURL, movieId)

	var movie model.Movie
	if err := c.getJSON(ctx, endpoint, &movie); err != nil {
		return model.Movie{}, err
	}
	if movie.Id == 0 {
		return model.Movie{}, errors.New("movie not found")
	}
	return movie, nil
}

func decodeMovieListing(raw json.RawMessage) ([]model.Movie, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var movies []model.Movie
	if err := json.Unmarshal(raw, &movies); err == nil {
		return movies, nil
	}

	var envelope struct {
		Items []model.Movie `json:"items"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Items != nil {
		return envelope.Items, nil
	}

	return nil, errors.New("unexpected movie listing format")
}
