package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"movietix-cli/auth"
	"movietix-cli/model"
)

const (
	appDirName      = "movietix-cli"
	movieCacheTTL   = 10 * time.Minute
	maxRecentMovies = 8
)

type cacheEnvelope[T any] struct {
	UpdatedAt time.Time `json:"updated_at"`
	Data      T         `json:"data"`
}

// RecentMovie is a movie the user opened recently, kept for list ordering.
type RecentMovie struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type movieHistory struct {
	Movies []RecentMovie `json:"movies"`
}

// LoadAuth reads the persisted auth session. The second return is false
// when no session has been saved.
func LoadAuth() (auth.Session, bool, error) {
	path, err := configPath("auth.json")
	if err != nil {
		return auth.Session{}, false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return auth.Session{}, false, nil
		}
		return auth.Session{}, false, err
	}

	var session auth.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return auth.Session{}, false, errors.New("invalid auth session format")
	}
	return session, session.Authenticated(), nil
}

// SaveAuth persists the auth session after login.
func SaveAuth(session auth.Session) error {
	if !session.Authenticated() {
		return errors.New("refusing to persist an unauthenticated session")
	}
	path, err := configPath("auth.json")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return err
	}
	// The token is a credential; keep the file private.
	return os.WriteFile(path, payload, 0o600)
}

// ClearAuth removes the persisted session on logout.
func ClearAuth() error {
	path, err := configPath("auth.json")
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// LoadMovieCache returns the cached now-showing catalog and whether it is
// still fresh.
func LoadMovieCache() ([]model.Movie, bool, error) {
	path, err := cachePath("movies.json")
	if err != nil {
		return nil, false, err
	}
	cache, err := loadCache[[]model.Movie](path)
	if err != nil {
		return nil, false, err
	}
	return cache.Data, time.Since(cache.UpdatedAt) <= movieCacheTTL, nil
}

// SaveMovieCache stores the now-showing catalog.
func SaveMovieCache(movies []model.Movie) error {
	path, err := cachePath("movies.json")
	if err != nil {
		return err
	}
	return saveCache(path, movies)
}

// LoadRecentMovies returns the recently opened movies, newest first.
func LoadRecentMovies() ([]RecentMovie, error) {
	path, err := configPath("history.json")
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var history movieHistory
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, errors.New("invalid movie history format")
	}
	return history.Movies, nil
}

// RememberMovie puts a movie at the head of the history, dropping
// duplicates and trimming to the cap.
func RememberMovie(movie model.Movie) error {
	if movie.Id <= 0 {
		return errors.New("movie id is required")
	}
	history, _ := LoadRecentMovies()
	next := []RecentMovie{{Id: movie.Id, Name: movie.Name}}

	for _, existing := range history {
		if existing.Id == movie.Id {
			continue
		}
		if existing.Name != "" && strings.EqualFold(existing.Name, movie.Name) {
			continue
		}
		next = append(next, existing)
		if len(next) >= maxRecentMovies {
			break
		}
	}

	path, err := configPath("history.json")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(movieHistory{Movies: next}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

// LogFilePath returns the debug log location inside the cache dir.
func LogFilePath() (string, error) {
	return cachePath("debug.log")
}

func loadCache[T any](path string) (cacheEnvelope[T], error) {
	var cache cacheEnvelope[T]
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cache, nil
		}
		return cache, err
	}
	if err := json.Unmarshal(data, &cache); err != nil {
		return cache, err
	}
	return cache, nil
}

func saveCache[T any](path string, data T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	cache := cacheEnvelope[T]{
		UpdatedAt: time.Now(),
		Data:      data,
	}
	payload, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func configPath(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName, name), nil
}

func cachePath(name string) (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName, name), nil
}
