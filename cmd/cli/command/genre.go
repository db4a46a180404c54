package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var genreCmd = &cobra.Command{
	Use:   "genre",
	Short: "Genre management commands",
	Long:  `Manage genres: list, create, rename and delete.`,
}

var listGenresCmd = &cobra.Command{
	Use:   "list",
	Short: "List all genres",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		genres, err := newClient().ListGenres(ctx)
		if err != nil {
			return fmt.Errorf("failed to get genres: %w", err)
		}
		if len(genres) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No genres found.")
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Genres (%d total):\n\n", len(genres))
		for _, g := range genres {
			fmt.Fprintf(cmd.OutOrStdout(), "ID: %d | Name: %s\n", g.ID, g.Name)
		}
		return nil
	},
}

var createGenreCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new genre",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		genre, err := newClient().CreateGenre(ctx, strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("failed to create genre: %w", err)
		}
		success.Fprint(cmd.OutOrStdout(), "Genre created. ")
		fmt.Fprintf(cmd.OutOrStdout(), "ID: %d | Name: %s\n", genre.ID, genre.Name)
		return nil
	},
}

var updateGenreCmd = &cobra.Command{
	Use:   "update [genre-id] [name]",
	Short: "Rename a genre",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		genre, err := newClient().UpdateGenre(ctx, id, strings.Join(args[1:], " "))
		if err != nil {
			return fmt.Errorf("failed to update genre: %w", err)
		}
		success.Fprint(cmd.OutOrStdout(), "Genre updated. ")
		fmt.Fprintf(cmd.OutOrStdout(), "ID: %d | Name: %s\n", genre.ID, genre.Name)
		return nil
	},
}

var deleteGenreCmd = &cobra.Command{
	Use:   "delete [genre-id]",
	Short: "Delete a genre",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		genre, err := newClient().DeleteGenre(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to delete genre: %w", err)
		}
		success.Fprint(cmd.OutOrStdout(), "Genre deleted. ")
		fmt.Fprintf(cmd.OutOrStdout(), "ID: %d | Name: %s\n", genre.ID, genre.Name)
		return nil
	},
}

func parseIDArg(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid ID %q", s)
	}
	return id, nil
}

func init() {
	genreCmd.AddCommand(listGenresCmd)
	genreCmd.AddCommand(createGenreCmd)
	genreCmd.AddCommand(updateGenreCmd)
	genreCmd.AddCommand(deleteGenreCmd)
}
