// Package main provides the photoalbum command-line entry point.
//
// The command grammar (get albums|images with --albumId/--searchText) is
// case-insensitive and parsed by the command package, so cobra only supplies
// the process wiring and flag parsing is disabled.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"photo-album-cli/src/app"
	"photo-album-cli/src/config"
	"photo-album-cli/src/console"
	"photo-album-cli/src/logger"
	"photo-album-cli/src/photos"
	"photo-album-cli/src/presenter"
	"photo-album-cli/src/tui"
)

func newRootCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "photoalbum get {albums|images} [--albumId=<int>] [--searchText=<text>]",
		Short: "Browse albums and images from the photo-album API",
		Long: `photoalbum queries the photo-album REST API and prints the matching
albums or images as a table.

Environment:
  PHOTOALBUM_BASE_URL      API base URL
  PHOTOALBUM_HTTP_TIMEOUT  request timeout, e.g. 5s (default: none)
  PHOTOALBUM_OUTPUT        table, json or tui (default: table)
  PHOTOALBUM_LOG_LEVEL     debug, info or error (default: silent)`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New(os.Stderr, cfg.LogLevel)
			con := console.Stdio()
			client := photos.NewClient(cfg.BaseURL, cfg.HTTPTimeout, log)
			pres := presenter.New(con, cfg.Output, tui.NewViewer(os.Stdin, os.Stdout))

			app.New(con, client, pres, log).Run(cmd.Context(), append([]string{os.Args[0]}, args...))
			return nil
		},
	}
}

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
