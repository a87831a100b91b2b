package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var rootFlags = struct {
	verbose *bool
}{}

var rootCmd = &cobra.Command{
	Use:   "truthtable",
	Short: "Generate truth tables of boolean formulas",
	Long: `truthtable provides the following features:
- Computes the truth table of one or more boolean formulas separated by semicolons.
- Prints the scoped syntax tree or the tokens of formulas.
  This feature is primarily aimed at debugging formulas.
- Runs test cases written in YAML against the evaluator.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootFlags.verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print debug logs to stderr")
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if *rootFlags.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}
