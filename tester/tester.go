package tester

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nihei9/truthtable/driver"
	"github.com/nihei9/truthtable/formula"
	"github.com/nihei9/truthtable/render"
	"gopkg.in/yaml.v3"
)

// TestCase is the content of a test case file:
//
//	description: conjunction and disjunction
//	input: a&&b;a||b
//	variables:
//	  - name: a
//	    values: "0011"
//	formulas:
//	  - name: a&&b
//	    values: "0001"
//
// A case expecting a syntax error sets `error` to a syntax error kind instead of columns.
// Columns a case omits are not checked.
type TestCase struct {
	Description string                  `yaml:"description"`
	Input       string                  `yaml:"input"`
	Variables   []render.DocumentColumn `yaml:"variables"`
	Formulas    []render.DocumentColumn `yaml:"formulas"`
	Error       formula.SyntaxErrorKind `yaml:"error"`
}

// Diff is a column whose name or values differ from the expectation.
type Diff struct {
	// Group is "variable" or "formula".
	Group string

	// Index is the 0-based position of the column in its group.
	Index int

	// Name is the expected column name.
	Name string

	Field    string
	Expected string
	Actual   string
}

const (
	diffFieldName   = "name"
	diffFieldValues = "values"
)

// Lines renders the expectation and the actual value. Differing rows of a values diff
// are marked with a caret.
func (d *Diff) Lines() []string {
	lines := []string{
		fmt.Sprintf("%v #%v %v: unexpected %v", d.Group, d.Index+1, d.Name, d.Field),
		fmt.Sprintf("    want: %v", d.Expected),
		fmt.Sprintf("    got:  %v", d.Actual),
	}
	if d.Field != diffFieldValues || len(d.Expected) != len(d.Actual) {
		return lines
	}
	marks := []byte(strings.Repeat(" ", len(d.Actual)))
	for i := range marks {
		if d.Expected[i] != d.Actual[i] {
			marks[i] = '^'
		}
	}
	return append(lines, "          "+strings.TrimRight(string(marks), " "))
}

type TestResult struct {
	TestCasePath string
	Error        error
	Diffs        []*Diff
}

func (r *TestResult) String() string {
	if r.Error == nil {
		return fmt.Sprintf("Passed %v", r.TestCasePath)
	}

	const indent = "    "
	var b strings.Builder
	fmt.Fprintf(&b, "Failed %v:", r.TestCasePath)
	for _, l := range strings.Split(r.Error.Error(), "\n") {
		fmt.Fprintf(&b, "\n%v%v", indent, l)
	}
	for _, d := range r.Diffs {
		for _, l := range d.Lines() {
			fmt.Fprintf(&b, "\n%v%v%v", indent, indent, l)
		}
	}
	return b.String()
}

type TestCaseWithMetadata struct {
	TestCase *TestCase
	FilePath string
	Error    error
}

// ListTestCases reads a test case file, or every YAML file under a directory.
func ListTestCases(testPath string) []*TestCaseWithMetadata {
	fi, err := os.Stat(testPath)
	if err != nil {
		return []*TestCaseWithMetadata{
			{
				FilePath: testPath,
				Error:    err,
			},
		}
	}
	if !fi.IsDir() {
		c, err := parseTestCase(testPath)
		return []*TestCaseWithMetadata{
			{
				TestCase: c,
				FilePath: testPath,
				Error:    err,
			},
		}
	}

	es, err := os.ReadDir(testPath)
	if err != nil {
		return []*TestCaseWithMetadata{
			{
				FilePath: testPath,
				Error:    err,
			},
		}
	}
	var cases []*TestCaseWithMetadata
	for _, e := range es {
		if !e.IsDir() && !isYAMLFile(e.Name()) {
			continue
		}
		cs := ListTestCases(filepath.Join(testPath, e.Name()))
		cases = append(cases, cs...)
	}
	return cases
}

func isYAMLFile(name string) bool {
	ext := filepath.Ext(name)
	return ext == ".yaml" || ext == ".yml"
}

func parseTestCase(testCasePath string) (*TestCase, error) {
	f, err := os.Open(testCasePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c := &TestCase{}
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	err = dec.Decode(c)
	if err != nil {
		return nil, err
	}
	if c.Input == "" {
		return nil, fmt.Errorf("a test case needs an input")
	}
	if c.Error != "" && (len(c.Variables) > 0 || len(c.Formulas) > 0) {
		return nil, fmt.Errorf("a test case cannot expect both an error and columns")
	}
	return c, nil
}

type Tester struct {
	Cases   []*TestCaseWithMetadata
	Options []driver.Option
}

func (t *Tester) Run(ctx context.Context) []*TestResult {
	var rs []*TestResult
	for _, c := range t.Cases {
		rs = append(rs, runTest(ctx, c, t.Options))
	}
	return rs
}

func runTest(ctx context.Context, c *TestCaseWithMetadata, opts []driver.Option) *TestResult {
	if c.Error != nil {
		return &TestResult{
			TestCasePath: c.FilePath,
			Error:        c.Error,
		}
	}

	tab, err := driver.Run(ctx, c.TestCase.Input, opts...)
	if c.TestCase.Error != "" {
		var synErr *formula.SyntaxError
		if !errors.As(err, &synErr) {
			if err == nil {
				err = fmt.Errorf("no error occurred")
			}
			return &TestResult{
				TestCasePath: c.FilePath,
				Error:        fmt.Errorf("expected a syntax error %v: %w", c.TestCase.Error, err),
			}
		}
		if synErr.Kind != c.TestCase.Error {
			return &TestResult{
				TestCasePath: c.FilePath,
				Error:        fmt.Errorf("unexpected syntax error; want: %v, got: %v", c.TestCase.Error, synErr.Kind),
			}
		}
		return &TestResult{
			TestCasePath: c.FilePath,
		}
	}
	if err != nil {
		return &TestResult{
			TestCasePath: c.FilePath,
			Error:        err,
		}
	}

	doc := render.NewDocument(tab)
	var diffs []*Diff
	for _, g := range []struct {
		name     string
		expected []render.DocumentColumn
		actual   []render.DocumentColumn
	}{
		{name: "variable", expected: c.TestCase.Variables, actual: doc.Variables},
		{name: "formula", expected: c.TestCase.Formulas, actual: doc.Formulas},
	} {
		if len(g.expected) == 0 {
			continue
		}
		if len(g.expected) != len(g.actual) {
			return &TestResult{
				TestCasePath: c.FilePath,
				Error:        fmt.Errorf("unexpected %v count; want: %v, got: %v", g.name, len(g.expected), len(g.actual)),
			}
		}
		diffs = append(diffs, diffColumns(g.name, g.expected, g.actual)...)
	}
	if len(diffs) > 0 {
		return &TestResult{
			TestCasePath: c.FilePath,
			Error:        fmt.Errorf("%v of the columns differ", len(diffs)),
			Diffs:        diffs,
		}
	}
	return &TestResult{
		TestCasePath: c.FilePath,
	}
}

// diffColumns compares columns of the same count. A column whose name differs is not
// compared by values.
func diffColumns(group string, expected, actual []render.DocumentColumn) []*Diff {
	var diffs []*Diff
	for i, e := range expected {
		a := actual[i]
		switch {
		case e.Name != a.Name:
			diffs = append(diffs, &Diff{
				Group:    group,
				Index:    i,
				Name:     e.Name,
				Field:    diffFieldName,
				Expected: e.Name,
				Actual:   a.Name,
			})
		case e.Values != a.Values:
			diffs = append(diffs, &Diff{
				Group:    group,
				Index:    i,
				Name:     e.Name,
				Field:    diffFieldValues,
				Expected: e.Values,
				Actual:   a.Values,
			})
		}
	}
	return diffs
}
