package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MOVIETIX_MOVIE_API_URL", "")
	t.Setenv("MOVIETIX_POLL_INTERVAL", "")
	t.Setenv("MOVIETIX_DEBUG", "")

	cfg := Load()
	if cfg.MovieAPIURL != defaultMovieAPIURL {
		t.Fatalf("unexpected movie url: %s", cfg.MovieAPIURL)
	}
	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("unexpected poll interval: %s", cfg.PollInterval)
	}
	if cfg.Debug {
		t.Fatal("expected debug off by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MOVIETIX_MOVIE_API_URL", "http://movies.internal:9000/")
	t.Setenv("MOVIETIX_POLL_INTERVAL", "2s")
	t.Setenv("MOVIETIX_DEBUG", "1")

	cfg := Load()
	if cfg.MovieAPIURL != "http://movies.internal:9000" {
		t.Fatalf("expected trailing slash trimmed, got %s", cfg.MovieAPIURL)
	}
	if cfg.PollInterval != 2*time.Second {
		t.Fatalf("unexpected poll interval: %s", cfg.PollInterval)
	}
	if !cfg.Debug {
		t.Fatal("expected debug on")
	}
}

func TestLoad_InvalidPollIntervalFallsBack(t *testing.T) {
	t.Setenv("MOVIETIX_POLL_INTERVAL", "soon")
	if cfg := Load(); cfg.PollInterval != defaultPollInterval {
		t.Fatalf("unexpected poll interval: %s", cfg.PollInterval)
	}

	t.Setenv("MOVIETIX_POLL_INTERVAL", "-5s")
	if cfg := Load(); cfg.PollInterval != defaultPollInterval {
		t.Fatalf("unexpected poll interval: %s", cfg.PollInterval)
	}
}
