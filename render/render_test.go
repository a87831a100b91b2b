package render

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nihei9/truthtable/driver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestText(t *testing.T) {
	tests := []struct {
		caption  string
		input    string
		expected string
	}{
		{
			caption: "values are centered under the titles",
			input:   "a&&b;a||b",
			expected: `| a | b || a&&b | a||b |
|---|---||------|------|
| 0 | 0 ||   0  |   0  |
| 0 | 1 ||   0  |   1  |
| 1 | 0 ||   0  |   1  |
| 1 | 1 ||   1  |   1  |
`,
		},
		{
			caption: "a formula title is the formula without white spaces",
			input:   "!! p",
			expected: `| p || !!p |
|---||-----|
| 0 ||  1  |
| 1 ||  0  |
`,
		},
		{
			caption: "a table without variables",
			input:   "1",
			expected: `|| 1 |
||---|
|| 1 |
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			var b bytes.Buffer
			err := Text(&b, run(t, tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, b.String())
		})
	}
}

func TestYAML(t *testing.T) {
	var b bytes.Buffer
	err := YAML(&b, run(t, "a && b;b"))
	require.NoError(t, err)

	doc := &Document{}
	err = yaml.Unmarshal(b.Bytes(), doc)
	require.NoError(t, err)
	assert.Equal(t, &Document{
		Rows: 4,
		Variables: []DocumentColumn{
			{Name: "a", Values: "0011"},
			{Name: "b", Values: "0101"},
		},
		Formulas: []DocumentColumn{
			{Name: "a&&b", Source: "a && b", Values: "0001"},
			{Name: "b", Values: "0101"},
		},
	}, doc)
	assert.True(t, strings.Contains(b.String(), `values: "0011"`), b.String())
}

func TestJSON(t *testing.T) {
	var b bytes.Buffer
	err := JSON(&b, run(t, "!!p"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(b.String(), `"name": "!!p"`), b.String())

	var doc map[string]any
	err = json.Unmarshal(b.Bytes(), &doc)
	require.NoError(t, err)
	assert.Equal(t, float64(2), doc["rows"])
	formulas, ok := doc["formulas"].([]any)
	require.True(t, ok)
	require.Len(t, formulas, 1)
	f := formulas[0].(map[string]any)
	assert.Equal(t, "!!p", f["name"])
	assert.Equal(t, "10", f["values"])
	_, hasSource := f["source"]
	assert.False(t, hasSource)
}

func TestStyled(t *testing.T) {
	var b bytes.Buffer
	err := Styled(&b, run(t, "a&&b;a||b"))
	require.NoError(t, err)
	out := b.String()
	for _, s := range []string{"a", "b", "a&&b", "a||b"} {
		assert.True(t, strings.Contains(out, s), "the header %v is missing:\n%v", s, out)
	}
	// header, 4 rows, and 3 horizontal borders
	assert.Equal(t, 8, strings.Count(strings.TrimRight(out, "\n"), "\n")+1, out)
}

func TestWrite(t *testing.T) {
	tab := run(t, "a")
	for _, f := range Formats {
		t.Run(string(f), func(t *testing.T) {
			var b bytes.Buffer
			err := Write(&b, tab, f)
			require.NoError(t, err)
			assert.NotEmpty(t, b.String())
		})
	}

	err := Write(&bytes.Buffer{}, tab, Format("csv"))
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := ParseFormat("html")
	assert.Error(t, err)
}

func run(t *testing.T, input string) *driver.Table {
	t.Helper()
	tab, err := driver.Run(context.Background(), input)
	require.NoError(t, err)
	return tab
}
