package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/chosung-quiz/internal/app"
)

var flagIngestLimit int

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Sample new words from the archive into the pool",
	Args:  cobra.NoArgs,
	RunE:  runIngest,
}

func init() {
	ingestCmd.Flags().IntVar(&flagIngestLimit, "limit", 0, "words to sample (default: quiz.seed_limit)")
	rootCmd.AddCommand(ingestCmd)
}

type ingestReport struct {
	Sampled          int     `json:"sampled"`
	Saved            int     `json:"saved"`
	Skipped          int     `json:"skipped"`
	Failed           int     `json:"failed"`
	StoreUnavailable bool    `json:"store_unavailable,omitempty"`
	Pass             string  `json:"pass"`
	Entries          int     `json:"entries"`
	Candidates       int     `json:"candidates"`
	Seconds          float64 `json:"seconds"`
}

func runIngest(cmd *cobra.Command, _ []string) error {
	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		res := a.Quiz.Ingest(ctx, flagIngestLimit)
		return printJSON(cmd.OutOrStdout(), ingestReport{
			Sampled:          res.Sampled,
			Saved:            res.Saved,
			Skipped:          res.Skipped,
			Failed:           res.Failed,
			StoreUnavailable: res.StoreUnavailable,
			Pass:             res.Pass.Outcome(),
			Entries:          res.Pass.JSONEntries,
			Candidates:       res.Pass.Candidates,
			Seconds:          res.Pass.Duration.Seconds(),
		})
	})
}
