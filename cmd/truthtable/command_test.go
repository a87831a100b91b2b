package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nihei9/truthtable/driver"
	"github.com/nihei9/truthtable/formula"
	"github.com/nihei9/truthtable/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval(t *testing.T) {
	t.Run("a text table", func(t *testing.T) {
		out, err := execute(t, "eval", "a&&b")
		require.NoError(t, err)
		want := `
| a | b || a&&b |
|---|---||------|
| 0 | 0 ||   0  |
| 0 | 1 ||   0  |
| 1 | 0 ||   0  |
| 1 | 1 ||   1  |
`
		assert.Equal(t, want, out)
	})

	t.Run("a YAML document", func(t *testing.T) {
		out, err := execute(t, "eval", "--format", "yaml", "-j", "2", "a&&b;!!p")
		require.NoError(t, err)
		assert.Contains(t, out, "rows: 8")
		assert.Contains(t, out, "name: a&&b")
		assert.Contains(t, out, `values: "00001111"`)
	})

	t.Run("formulas from a source file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "formulas.txt")
		require.NoError(t, os.WriteFile(path, []byte("!!p\n"), 0o644))
		out, err := execute(t, "eval", "--source", path, "--format", "json")
		require.NoError(t, err)
		assert.Contains(t, out, `"name": "!!p"`)
		assert.Contains(t, out, `"values": "10"`)
	})

	t.Run("a syntax error", func(t *testing.T) {
		_, err := execute(t, "eval", "a b")
		assert.ErrorIs(t, err, formula.SynErrMissingOperator)
	})

	t.Run("too many variables", func(t *testing.T) {
		_, err := execute(t, "eval", "--max-variables", "1", "a&&b")
		assert.ErrorIs(t, err, driver.ErrTooManyVariables)
	})

	t.Run("an unknown format", func(t *testing.T) {
		_, err := execute(t, "eval", "--format", "csv", "a")
		assert.Error(t, err)
	})
}

func TestParse(t *testing.T) {
	t.Run("syntax trees", func(t *testing.T) {
		out, err := execute(t, "parse", "(a++b)!&c")
		require.NoError(t, err)
		want := `variables: a, b, c
(a++b)!&c
  scope 0
    0.0: $1.0 !& c
  scope 1
    1.0: a ++ b
`
		assert.Equal(t, want, out)
	})

	t.Run("tokens", func(t *testing.T) {
		out, err := execute(t, "parse", "--tokens", "a && b")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "entry 1: a && b\n"), out)
		assert.Contains(t, out, "    1: 'a' (name)\n")
		assert.Contains(t, out, "    3: '&&' (operator)\n")
		assert.Contains(t, out, "    6: 'b' (name)\n")
		assert.Contains(t, out, "<eof>")
	})
}

func TestTest(t *testing.T) {
	t.Run("all cases pass", func(t *testing.T) {
		out, err := execute(t, "test", filepath.Join("..", "..", "tester", "testdata", "cases"))
		require.NoError(t, err)
		assert.Contains(t, out, "3 passed, 0 failed")
	})

	t.Run("a failing case", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "case.yaml")
		src := `
input: a||b
formulas:
  - name: a||b
    values: "0001"
`
		require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
		out, err := execute(t, "test", path)
		assert.Error(t, err)
		assert.Contains(t, out, "formula #1 a||b: unexpected values")
		assert.Contains(t, out, "0 passed, 1 failed")
	})
}

// execute runs the root command with flags reset to their defaults, since they are
// package-level and survive between runs.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	*rootFlags.verbose = false
	*evalFlags.source = ""
	*evalFlags.format = string(render.FormatText)
	*evalFlags.jobs = 1
	*evalFlags.maxVariables = driver.DefaultMaxVariables
	*parseFlags.source = ""
	*parseFlags.tokens = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}
