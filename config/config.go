package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultMovieAPIURL   = "http://localhost:8002"
	defaultTheatreAPIURL = "http://localhost:8003"
	defaultBookingAPIURL = "http://localhost:5003"
	defaultUserAPIURL    = "http://localhost:8001"
	defaultPollInterval  = 5 * time.Second
)

// Config holds the runtime configuration. Every field maps to a
// MOVIETIX_* environment variable; unset variables fall back to the
// local development defaults.
type Config struct {
	MovieAPIURL   string
	TheatreAPIURL string
	BookingAPIURL string
	UserAPIURL    string
	PollInterval  time.Duration
	Debug         bool
}

// Load reads a .env file if present, then the environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		MovieAPIURL:   getEnv("MOVIETIX_MOVIE_API_URL", defaultMovieAPIURL),
		TheatreAPIURL: getEnv("MOVIETIX_THEATRE_API_URL", defaultTheatreAPIURL),
		BookingAPIURL: getEnv("MOVIETIX_BOOKING_API_URL", defaultBookingAPIURL),
		UserAPIURL:    getEnv("MOVIETIX_USER_API_URL", defaultUserAPIURL),
		PollInterval:  getDuration("MOVIETIX_POLL_INTERVAL", defaultPollInterval),
		Debug:         os.Getenv("MOVIETIX_DEBUG") != "",
	}
}

func getEnv(key string, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return strings.TrimRight(v, "/")
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
