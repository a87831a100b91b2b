package tester

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nihei9/truthtable/driver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTester_Run(t *testing.T) {
	tests := []struct {
		caption string
		testSrc string
		error   bool
		diffs   int
	}{
		{
			caption: "all columns match",
			testSrc: `
input: a&&b;a||b
variables:
  - name: a
    values: "0011"
  - name: b
    values: "0101"
formulas:
  - name: a&&b
    values: "0001"
  - name: a||b
    values: "0111"
`,
		},
		{
			caption: "omitted columns are not checked",
			testSrc: `
input: "!!p"
formulas:
  - name: "!!p"
    values: "10"
`,
		},
		{
			caption: "a formula column has wrong values",
			testSrc: `
input: a&&b;a||b
formulas:
  - name: a&&b
    values: "0111"
  - name: a||b
    values: "0001"
`,
			error: true,
			diffs: 2,
		},
		{
			caption: "a variable column has a wrong name",
			testSrc: `
input: a&&b
variables:
  - name: b
    values: "0011"
  - name: a
    values: "0101"
`,
			error: true,
			diffs: 2,
		},
		{
			caption: "the number of columns differs",
			testSrc: `
input: a&&b
formulas:
  - name: a&&b
    values: "0001"
  - name: a||b
    values: "0111"
`,
			error: true,
		},
		{
			caption: "an expected syntax error occurs",
			testSrc: `
input: a&&||b
error: consecutive-operators
`,
		},
		{
			caption: "a different syntax error occurs",
			testSrc: `
input: a&&
error: consecutive-operators
`,
			error: true,
		},
		{
			caption: "an expected syntax error does not occur",
			testSrc: `
input: a&&b
error: empty-formula
`,
			error: true,
		},
		{
			caption: "an unexpected syntax error occurs",
			testSrc: `
input: a b
formulas:
  - name: ab
    values: "0001"
`,
			error: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			path := writeTestCase(t, tt.testSrc)
			cases := ListTestCases(path)
			require.Len(t, cases, 1)
			require.NoError(t, cases[0].Error)

			tester := &Tester{
				Cases: cases,
			}
			rs := tester.Run(context.Background())
			require.Len(t, rs, 1)
			if tt.error {
				assert.Error(t, rs[0].Error)
				assert.Len(t, rs[0].Diffs, tt.diffs)
				assert.True(t, strings.HasPrefix(rs[0].String(), "Failed "))
				return
			}
			assert.NoError(t, rs[0].Error)
			assert.Equal(t, "Passed "+path, rs[0].String())
		})
	}
}

func TestTester_RunWithOptions(t *testing.T) {
	path := writeTestCase(t, `
input: a&&b&&c
formulas:
  - name: a&&b&&c
    values: "00000001"
`)
	tester := &Tester{
		Cases:   ListTestCases(path),
		Options: []driver.Option{driver.MaxVariables(2)},
	}
	rs := tester.Run(context.Background())
	require.Len(t, rs, 1)
	assert.ErrorIs(t, rs[0].Error, driver.ErrTooManyVariables)
}

func TestListTestCases(t *testing.T) {
	t.Run("a directory is walked recursively and non-YAML files are skipped", func(t *testing.T) {
		cases := ListTestCases(filepath.Join("testdata", "cases"))
		require.Len(t, cases, 3)
		for _, c := range cases {
			require.NoError(t, c.Error, c.FilePath)
		}
		assert.Equal(t, "conjunction and disjunction", cases[0].TestCase.Description)
		assert.Equal(t, filepath.Join("testdata", "cases", "nested", "missing_operator.yaml"), cases[2].FilePath)

		rs := (&Tester{Cases: cases}).Run(context.Background())
		for _, r := range rs {
			assert.NoError(t, r.Error, r.String())
		}
	})

	t.Run("a missing path is reported as a failed case", func(t *testing.T) {
		cases := ListTestCases(filepath.Join("testdata", "no_such_file.yaml"))
		require.Len(t, cases, 1)
		assert.Error(t, cases[0].Error)

		rs := (&Tester{Cases: cases}).Run(context.Background())
		require.Len(t, rs, 1)
		assert.Error(t, rs[0].Error)
	})

	tests := []struct {
		caption string
		testSrc string
	}{
		{
			caption: "a test case needs an input",
			testSrc: `
formulas:
  - name: a
    values: "01"
`,
		},
		{
			caption: "a test case cannot expect both an error and columns",
			testSrc: `
input: a b
error: missing-operator
formulas:
  - name: a
    values: "01"
`,
		},
		{
			caption: "unknown fields are not allowed",
			testSrc: `
input: a
output: "01"
`,
		},
		{
			caption: "a test case must be YAML",
			testSrc: `input: [a`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			cases := ListTestCases(writeTestCase(t, tt.testSrc))
			require.Len(t, cases, 1)
			assert.Error(t, cases[0].Error)
			assert.Nil(t, cases[0].TestCase)
		})
	}
}

func TestTestResult_String(t *testing.T) {
	t.Run("a passed case", func(t *testing.T) {
		r := &TestResult{
			TestCasePath: "case.yaml",
		}
		assert.Equal(t, "Passed case.yaml", r.String())
	})

	t.Run("a failed case names each differing column", func(t *testing.T) {
		path := writeTestCase(t, `
input: a&&b;a||b
formulas:
  - name: a&&b
    values: "0111"
  - name: a||b
    values: "0111"
`)
		rs := (&Tester{Cases: ListTestCases(path)}).Run(context.Background())
		require.Len(t, rs, 1)
		require.Len(t, rs[0].Diffs, 1)
		want := strings.Join([]string{
			"Failed " + path + ":",
			"    1 of the columns differ",
			"        formula #1 a&&b: unexpected values",
			"            want: 0111",
			"            got:  0001",
			"                   ^^",
		}, "\n")
		assert.Equal(t, want, rs[0].String())
	})

	t.Run("columns are not compared when their count differs", func(t *testing.T) {
		path := writeTestCase(t, `
input: a&&b
variables:
  - name: a
    values: "0011"
`)
		rs := (&Tester{Cases: ListTestCases(path)}).Run(context.Background())
		require.Len(t, rs, 1)
		assert.Empty(t, rs[0].Diffs)
		assert.Equal(t, "Failed "+path+":\n    unexpected variable count; want: 1, got: 2", rs[0].String())
	})

	t.Run("values diffs mark the differing rows", func(t *testing.T) {
		r := &TestResult{
			TestCasePath: "case.yaml",
			Error:        assert.AnError,
			Diffs: []*Diff{
				{
					Group:    "formula",
					Index:    1,
					Name:     "a||b",
					Field:    diffFieldValues,
					Expected: "0111",
					Actual:   "0001",
				},
				{
					Group:    "variable",
					Index:    0,
					Name:     "a",
					Field:    diffFieldName,
					Expected: "a",
					Actual:   "b",
				},
			},
		}
		want := strings.Join([]string{
			"Failed case.yaml:",
			"    " + assert.AnError.Error(),
			"        formula #2 a||b: unexpected values",
			"            want: 0111",
			"            got:  0001",
			"                   ^^",
			"        variable #1 a: unexpected name",
			"            want: a",
			"            got:  b",
		}, "\n")
		assert.Equal(t, want, r.String())
	})
}

func writeTestCase(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "case.yaml")
	err := os.WriteFile(path, []byte(src), 0o644)
	require.NoError(t, err)
	return path
}
