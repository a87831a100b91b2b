package main

import (
	"fmt"

	"github.com/nihei9/truthtable/driver"
	"github.com/nihei9/truthtable/render"
	"github.com/spf13/cobra"
)

var evalFlags = struct {
	source       *string
	format       *string
	jobs         *int
	maxVariables *int
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "eval [formulas]",
		Short: "Print the truth table of formulas",
		Example: `  truthtable eval 'a&&b;a||b'
  truthtable eval --format yaml '(a++b)!&c'
  echo '!!p' | truthtable eval`,
		Args: cobra.MaximumNArgs(1),
		RunE: runEval,
	}
	evalFlags.source = cmd.Flags().StringP("source", "s", "", "source file path; one or more formulas per line (default stdin)")
	evalFlags.format = cmd.Flags().StringP("format", "f", string(render.FormatText), "output format: text, styled, yaml, or json")
	evalFlags.jobs = cmd.Flags().IntP("jobs", "j", 1, "number of formulas interpreted in parallel")
	evalFlags.maxVariables = cmd.Flags().Int("max-variables", driver.DefaultMaxVariables, "maximum number of distinct variables")
	rootCmd.AddCommand(cmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	format, err := render.ParseFormat(*evalFlags.format)
	if err != nil {
		return err
	}

	input, err := readInput(args, *evalFlags.source)
	if err != nil {
		return err
	}

	tab, err := driver.Run(cmd.Context(), input,
		driver.Logger(newLogger()),
		driver.Concurrency(*evalFlags.jobs),
		driver.MaxVariables(*evalFlags.maxVariables))
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if format == render.FormatText {
		fmt.Fprintln(w)
	}
	return render.Write(w, tab, format)
}
