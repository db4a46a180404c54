package command

// root.go defines the root command for the moviesCLI application
// and the flags shared by every subcommand.

import (
	"context"
	"fmt"
	"os"
	"time"

	"moviesapi/cmd/cli/command/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	apiURL  string        // base URL of the movies API, including /api
	timeout time.Duration // per command
)

var rootCmd = &cobra.Command{
	Use:   "moviesCLI",
	Short: "moviesCLI - Movies API Command Line Interface",
	Long: `moviesCLI talks to the movies API. It can:
- List, create, rename and delete genres
- List, inspect, create, update and delete movies, uploading posters from disk

Use "moviesCLI command --help" to see all available commands.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultURL := os.Getenv("MOVIES_API_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:8080/api"
	}
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultURL, "API base URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 15*time.Second, "request timeout")

	rootCmd.AddCommand(genreCmd)
	rootCmd.AddCommand(movieCmd)
}

func newClient() *client.HTTPClient {
	return client.NewHTTPClient(apiURL)
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), timeout)
}

var success = color.New(color.FgGreen, color.Bold)
