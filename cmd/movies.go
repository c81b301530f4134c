package cmd

import (
	"context"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"movietix-cli/service"
)

var moviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "List movies now showing",
	Long:  `Print the current movie catalog as a table without starting the interactive app.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, _, _ := buildApp()
		filter := service.MovieFilter{
			Name:  cmd.Flag("name").Value.String(),
			Genre: cmd.Flag("genre").Value.String(),
		}

		movies, err := client.GetMovies(context.Background(), filter)
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Title", "Genres", "Runtime", "Rating", "Language"})
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 2, WidthMax: 30},
			{Number: 3, WidthMax: 25},
		})
		for _, movie := range movies {
			t.AppendRow(table.Row{
				movie.Id,
				movie.Name,
				strings.Join(movie.Genres, ", "),
				movie.RuntimeMinutes,
				movie.Rating,
				movie.Language,
			})
		}
		t.Render()
		return nil
	},
}
