package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/chosung-quiz/internal/app"
)

var flagClearYes bool

var addWordCmd = &cobra.Command{
	Use:   "add-word <word> <hint>",
	Short: "Add a word with its hint to the pool",
	Args:  cobra.ExactArgs(2),
	RunE:  runAddWord,
}

var clearPoolCmd = &cobra.Command{
	Use:   "clear-pool",
	Short: "Remove every word from the pool",
	Args:  cobra.NoArgs,
	RunE:  runClearPool,
}

func init() {
	clearPoolCmd.Flags().BoolVar(&flagClearYes, "yes", false, "confirm removal of the whole pool")
	rootCmd.AddCommand(addWordCmd, clearPoolCmd)
}

func runAddWord(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		return printJSON(cmd.OutOrStdout(), a.Quiz.AddWord(ctx, args[0], args[1]))
	})
}

func runClearPool(cmd *cobra.Command, _ []string) error {
	if !flagClearYes {
		return errors.New("clear-pool removes every pooled word; rerun with --yes")
	}
	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		return printJSON(cmd.OutOrStdout(), a.Quiz.ClearPool(ctx))
	})
}
