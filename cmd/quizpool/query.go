package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/chosung-quiz/internal/app"
)

var flagBatchSize int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search pooled and archive words containing query",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Print a random quiz batch from the pool",
	Args:  cobra.NoArgs,
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().IntVar(&flagBatchSize, "size", 0, "batch size (default: quiz.batch_size, max 500)")
	rootCmd.AddCommand(searchCmd, batchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		return printJSON(cmd.OutOrStdout(), a.Quiz.Search(ctx, strings.Join(args, " ")))
	})
}

func runBatch(cmd *cobra.Command, _ []string) error {
	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		return printJSON(cmd.OutOrStdout(), a.Quiz.SampleBatch(ctx, flagBatchSize))
	})
}
