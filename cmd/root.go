package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"movietix-cli/auth"
	"movietix-cli/config"
	"movietix-cli/service"
	"movietix-cli/store"
	"movietix-cli/tui"
)

var (
	appVersion = "dev"
	appCommit  = "none"
)

var rootCmd = &cobra.Command{
	Use:   "movietix",
	Short: "MovieTix CLI",
	Long:  `Browse movies, pick a showtime and book your seats from the terminal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, client, sess, logger := buildApp()
		program := tea.NewProgram(tui.New(cfg, client, sess, logger), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return err
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of MovieTix CLI",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("movietix %s", appVersion)
		if appCommit != "none" && appCommit != "" {
			fmt.Printf(" (%s)", appCommit)
		}
		fmt.Println()
	},
}

// SetVersion injects build information from the linker before Execute runs.
func SetVersion(version, commit string) {
	if version != "" {
		appVersion = version
	}
	if commit != "" {
		appCommit = commit
	}
}

func buildApp() (config.Config, *service.Client, auth.Session, *log.Logger) {
	cfg := config.Load()
	logger := newLogger(cfg)

	client := service.NewClient(&http.Client{Timeout: 15 * time.Second}, service.Endpoints{
		Movie:   cfg.MovieAPIURL,
		Theatre: cfg.TheatreAPIURL,
		Booking: cfg.BookingAPIURL,
		User:    cfg.UserAPIURL,
	})

	sess, found, err := store.LoadAuth()
	if err != nil {
		logger.Warn("load saved session", "err", err)
	}
	if found && sess.Valid(time.Now()) {
		client.SetToken(sess.Token)
	} else {
		sess = auth.Session{}
	}
	return cfg, client, sess, logger
}

func newLogger(cfg config.Config) *log.Logger {
	if !cfg.Debug {
		return log.New(io.Discard)
	}
	path, err := store.LogFilePath()
	if err != nil {
		return log.New(os.Stderr)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return log.New(os.Stderr)
	}
	logger := log.New(file)
	logger.SetLevel(log.DebugLevel)
	logger.SetReportTimestamp(true)
	return logger
}

func Execute() {
	rootCmd.AddCommand(versionCmd, moviesCmd, bookingsCmd)
	moviesCmd.Flags().String("genre", "", "only movies matching this genre")
	moviesCmd.Flags().String("name", "", "only movies whose title contains this text")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
