package main

import (
	"fmt"

	"github.com/nihei9/truthtable/driver"
	"github.com/nihei9/truthtable/tester"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "test <test file path>|<test directory path>",
		Short:   "Run test cases",
		Example: `  truthtable test testdata`,
		Args:    cobra.ExactArgs(1),
		RunE:    runTest,
	}
	rootCmd.AddCommand(cmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	cs := tester.ListTestCases(args[0])
	if len(cs) == 0 {
		return fmt.Errorf("no test case was found in %v", args[0])
	}

	t := &tester.Tester{
		Cases: cs,
		Options: []driver.Option{
			driver.Logger(newLogger()),
		},
	}
	w := cmd.OutOrStdout()
	failed := 0
	for _, r := range t.Run(cmd.Context()) {
		fmt.Fprintln(w, r)
		if r.Error != nil {
			failed++
		}
	}
	fmt.Fprintf(w, "\n%v passed, %v failed\n", len(cs)-failed, failed)
	if failed > 0 {
		return fmt.Errorf("%v of %v test cases failed", failed, len(cs))
	}
	return nil
}
