package main

import (
	"fmt"
	"strings"

	"github.com/nihei9/truthtable/driver"
	"github.com/nihei9/truthtable/formula"
	"github.com/spf13/cobra"
)

var parseFlags = struct {
	source *string
	tokens *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "parse [formulas]",
		Short: "Print the scoped syntax tree of formulas",
		Example: `  truthtable parse '(a++b)!&c'
  truthtable parse --tokens 'a && !!b'`,
		Args: cobra.MaximumNArgs(1),
		RunE: runParse,
	}
	parseFlags.source = cmd.Flags().StringP("source", "s", "", "source file path; one or more formulas per line (default stdin)")
	parseFlags.tokens = cmd.Flags().Bool("tokens", false, "print tokens instead of syntax trees")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	input, err := readInput(args, *parseFlags.source)
	if err != nil {
		return err
	}
	entries := driver.SplitEntries(input)
	w := cmd.OutOrStdout()

	if *parseFlags.tokens {
		for i, entry := range entries {
			toks, err := formula.Tokenize(entry)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "entry %v: %v\n", i+1, entry)
			for _, tok := range toks {
				fmt.Fprintf(w, "  %3v: %v\n", tok.Col, tok)
			}
		}
		return nil
	}

	reg := formula.NewRegistry()
	asts, err := formula.ParseAll(entries, reg)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "variables: %v\n", strings.Join(reg.Names(), ", "))
	for _, ast := range asts {
		fmt.Fprint(w, ast)
	}
	return nil
}
