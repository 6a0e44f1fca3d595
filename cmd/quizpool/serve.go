package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/chosung-quiz/internal/app"
)

var flagServeNoSeed bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Seed the pool and serve the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&flagServeNoSeed, "no-seed", false, "skip startup seeding")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		if flagServeNoSeed {
			a.Config.Quiz.SkipStartupSeed = true
		}
		return a.Serve(ctx)
	})
}
