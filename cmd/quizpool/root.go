package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/chosung-quiz/internal/app"
	"github.com/heartmarshall/chosung-quiz/internal/config"
)

var flagConfigPath string

var rootCmd = &cobra.Command{
	Use:          "quizpool",
	Short:        "Chosung quiz pool builder",
	SilenceUsage: true,
	Long: `quizpool samples phonetically diverse words from a Korean dictionary
archive into a persistent quiz pool and serves quiz batches and search over HTTP.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "",
		"path to YAML config (default: $CONFIG_PATH or ./config.yaml)")
}

// Execute runs the root command and exits 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if flagConfigPath != "" {
		return config.LoadFrom(flagConfigPath)
	}
	return config.Load()
}

// withApp loads configuration, wires the application and runs fn with a
// context canceled on SIGINT or SIGTERM.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	defer a.Close()

	return fn(ctx, a)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
