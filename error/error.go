package error

import (
	"fmt"
	"strings"
)

// FormulaError locates a cause inside one formula of the input.
type FormulaError struct {
	Cause  error
	Detail string

	// Formula is the text of the formula the error was found in.
	Formula string

	// Entry is the 1-based position of the formula in the input. Zero means unknown.
	Entry int

	// Col is the 1-based column (in code points) of the offending token. Zero means unknown.
	Col int
}

func (e *FormulaError) Error() string {
	var b strings.Builder
	if e.Entry != 0 {
		fmt.Fprintf(&b, "entry %v: ", e.Entry)
	}
	if e.Col != 0 {
		fmt.Fprintf(&b, "%v: ", e.Col)
	}
	fmt.Fprintf(&b, "error: %v", e.Cause)
	if e.Detail != "" {
		fmt.Fprintf(&b, ": %v", e.Detail)
	}

	if e.Formula != "" {
		fmt.Fprintf(&b, "\n    %v", e.Formula)
		if e.Col > 0 {
			fmt.Fprintf(&b, "\n    %v^", caretPadding(e.Formula, e.Col))
		}
	}

	return b.String()
}

func (e *FormulaError) Unwrap() error {
	return e.Cause
}

// caretPadding keeps tabs so that the caret lines up with the formula in a terminal.
func caretPadding(formula string, col int) string {
	var b strings.Builder
	i := 1
	for _, c := range formula {
		if i >= col {
			break
		}
		if c == '\t' {
			b.WriteRune('\t')
		} else {
			b.WriteRune(' ')
		}
		i++
	}
	return b.String()
}
