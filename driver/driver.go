package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/nihei9/truthtable/formula"
	"github.com/nihei9/truthtable/truth"
	"golang.org/x/sync/errgroup"
)

const (
	// EntrySeparator separates formulas in an input.
	EntrySeparator = ";"

	DefaultMaxVariables = 24
)

var ErrTooManyVariables = errors.New("too many variables")

// Column is a titled truth vector of a table.
type Column struct {
	// Name is a variable name or the formula text without white spaces.
	Name string

	// Source is the formula as given. It is empty for variable columns.
	Source string

	Values truth.Vector
}

// Table is the complete result of a run. All columns have Size rows.
type Table struct {
	Size      int
	Variables []*Column
	Formulas  []*Column
}

type Option func(c *config) error

type config struct {
	logger       *slog.Logger
	concurrency  int
	maxVariables int
}

// Logger sets a logger receiving debug records about a run.
func Logger(l *slog.Logger) Option {
	return func(c *config) error {
		if l == nil {
			return fmt.Errorf("a logger must not be nil")
		}
		c.logger = l
		return nil
	}
}

// Concurrency sets the number of formulas interpreted at the same time.
func Concurrency(n int) Option {
	return func(c *config) error {
		if n < 1 {
			return fmt.Errorf("concurrency must be greater than or equal to 1: %v", n)
		}
		c.concurrency = n
		return nil
	}
}

// MaxVariables sets the largest number of distinct variables a run accepts.
func MaxVariables(n int) Option {
	return func(c *config) error {
		if n < 0 || n > 62 {
			return fmt.Errorf("the maximum number of variables must be in [0, 62]: %v", n)
		}
		c.maxVariables = n
		return nil
	}
}

// SplitEntries splits an input into formulas.
func SplitEntries(input string) []string {
	return strings.Split(input, EntrySeparator)
}

// Run computes the truth table of the semicolon-separated formulas in input.
func Run(ctx context.Context, input string, opts ...Option) (*Table, error) {
	return RunEntries(ctx, SplitEntries(input), opts...)
}

// RunEntries computes the truth table of formulas. Every formula is parsed before any of
// them is interpreted, because a later formula may add variables and change the size of
// the table. A syntax error in any formula aborts the run.
func RunEntries(ctx context.Context, entries []string, opts ...Option) (*Table, error) {
	c := &config{
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		concurrency:  1,
		maxVariables: DefaultMaxVariables,
	}
	for _, opt := range opts {
		err := opt(c)
		if err != nil {
			return nil, err
		}
	}

	reg := formula.NewRegistry()
	asts, err := formula.ParseAll(entries, reg)
	if err != nil {
		return nil, err
	}
	if reg.Len() > c.maxVariables {
		return nil, fmt.Errorf("%w: %v distinct variables found; the limit is %v", ErrTooManyVariables, reg.Len(), c.maxVariables)
	}

	size := truth.Size(reg.Len())
	cols := truth.Enumerate(reg.Len())
	c.logger.Debug("parsed formulas",
		slog.Int("formulas", len(asts)),
		slog.Any("variables", reg.Names()),
		slog.Int("rows", size))

	memo := truth.NewMemo()
	interp := truth.NewInterpreter(size, cols, memo)
	results := make([]truth.Vector, len(asts))
	{
		g, gCtx := errgroup.WithContext(ctx)
		g.SetLimit(c.concurrency)
		for i, ast := range asts {
			i, ast := i, ast
			g.Go(func() error {
				if err := gCtx.Err(); err != nil {
					return err
				}
				v, err := interp.Evaluate(ast)
				if err != nil {
					return err
				}
				results[i] = v
				return nil
			})
		}
		err := g.Wait()
		if err != nil {
			return nil, err
		}
	}
	c.logger.Debug("interpreted formulas", slog.Int("memo_entries", memo.Len()))

	tab := &Table{
		Size:      size,
		Variables: make([]*Column, reg.Len()),
		Formulas:  make([]*Column, len(asts)),
	}
	for i, name := range reg.Names() {
		tab.Variables[i] = &Column{
			Name:   name,
			Values: cols[i],
		}
	}
	for i, ast := range asts {
		tab.Formulas[i] = &Column{
			Name:   ast.Text,
			Source: ast.Source,
			Values: results[i],
		}
	}
	return tab, nil
}
