package command

import (
	"fmt"
	"io"
	"strings"

	"moviesapi/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

var movieCmd = &cobra.Command{
	Use:   "movie",
	Short: "Movie management commands",
	Long:  `Manage movies: list (optionally by genre), show, create, update and delete.`,
}

var listMoviesGenre int64

var listMoviesCmd = &cobra.Command{
	Use:   "list",
	Short: "List movies, best rated first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		c := newClient()
		var (
			movies []client.MovieResponse
			err    error
		)
		if listMoviesGenre > 0 {
			movies, err = c.ListMoviesByGenre(ctx, listMoviesGenre)
		} else {
			movies, err = c.ListMovies(ctx)
		}
		if err != nil {
			return fmt.Errorf("failed to get movies: %w", err)
		}
		if len(movies) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No movies found.")
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Movies (%d total):\n\n", len(movies))
		for _, m := range movies {
			printMovie(cmd.OutOrStdout(), m)
		}
		return nil
	},
}

var getMovieCmd = &cobra.Command{
	Use:   "get [movie-id]",
	Short: "Show one movie",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		m, err := newClient().GetMovie(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get movie: %w", err)
		}
		printMovie(cmd.OutOrStdout(), *m)
		return nil
	},
}

var movieInput client.MovieInput

var createMovieCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a movie (poster is required)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		m, err := newClient().CreateMovie(ctx, movieInput)
		if err != nil {
			return fmt.Errorf("failed to create movie: %w", err)
		}
		success.Fprintln(cmd.OutOrStdout(), "Movie created.")
		printMovie(cmd.OutOrStdout(), *m)
		return nil
	},
}

var updateMovieCmd = &cobra.Command{
	Use:   "update [movie-id]",
	Short: "Update a movie; the stored poster is kept unless --poster is given",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		m, err := newClient().UpdateMovie(ctx, id, movieInput)
		if err != nil {
			return fmt.Errorf("failed to update movie: %w", err)
		}
		success.Fprintln(cmd.OutOrStdout(), "Movie updated.")
		printMovie(cmd.OutOrStdout(), *m)
		return nil
	},
}

var deleteMovieCmd = &cobra.Command{
	Use:   "delete [movie-id]",
	Short: "Delete a movie",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		m, err := newClient().DeleteMovie(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to delete movie: %w", err)
		}
		success.Fprint(cmd.OutOrStdout(), "Movie deleted. ")
		fmt.Fprintf(cmd.OutOrStdout(), "ID: %d | Title: %s\n", m.ID, m.Title)
		return nil
	},
}

func printMovie(w io.Writer, m client.MovieResponse) {
	fmt.Fprintf(w, "ID: %d\n", m.ID)
	fmt.Fprintf(w, "Title: %s (%d)\n", m.Title, m.Year)
	fmt.Fprintf(w, "Rate: %.1f\n", m.Rate)
	switch {
	case m.GenreName != nil:
		fmt.Fprintf(w, "Genre: %s\n", *m.GenreName)
	case m.GenreID != nil:
		fmt.Fprintf(w, "Genre ID: %d\n", *m.GenreID)
	}
	if m.StoryLine != "" {
		fmt.Fprintf(w, "Story: %s\n", m.StoryLine)
	}
	fmt.Fprintf(w, "Poster: %d bytes\n", len(m.Poster))
	fmt.Fprintln(w, strings.Repeat("-", 50))
}

func addMovieFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&movieInput.Title, "title", "", "movie title")
	f.IntVar(&movieInput.Year, "year", 0, "release year")
	f.Float64Var(&movieInput.Rate, "rate", 0, "rating")
	f.StringVar(&movieInput.StoryLine, "story", "", "story line")
	f.Int64Var(&movieInput.GenreID, "genre", 0, "genre ID")
	f.StringVar(&movieInput.PosterPath, "poster", "", "path to a .png or .jpg poster")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("genre")
}

func init() {
	listMoviesCmd.Flags().Int64Var(&listMoviesGenre, "genre", 0, "only movies of this genre ID")

	addMovieFlags(createMovieCmd)
	_ = createMovieCmd.MarkFlagRequired("poster")
	addMovieFlags(updateMovieCmd)

	movieCmd.AddCommand(listMoviesCmd)
	movieCmd.AddCommand(getMovieCmd)
	movieCmd.AddCommand(createMovieCmd)
	movieCmd.AddCommand(updateMovieCmd)
	movieCmd.AddCommand(deleteMovieCmd)
}
