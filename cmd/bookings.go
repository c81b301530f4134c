package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"movietix-cli/model"
)

var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "List your bookings",
	Long:  `Print the signed-in user's bookings as a table without starting the interactive app.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, sess, _ := buildApp()
		if !sess.Valid(time.Now()) {
			return errors.New("not signed in: run the interactive app and sign in first")
		}

		bookings, err := client.GetUserBookings(context.Background(), sess.User.Id)
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Booking", "Showtime", "Seats", "Status", "Created"})
		for _, booking := range bookings {
			t.AppendRow(table.Row{
				booking.Id,
				booking.ShowtimeId,
				formatSeatRefs(booking.Seats),
				booking.Status,
				booking.CreatedAt.Local().Format("2006-01-02 15:04"),
			})
		}
		t.Render()
		return nil
	},
}

func formatSeatRefs(refs []model.SeatRef) string {
	labels := make([]string, len(refs))
	for i, ref := range refs {
		labels[i] = fmt.Sprintf("R%dC%d", ref.Row, ref.Col)
	}
	return strings.Join(labels, ", ")
}
