package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/nihei9/truthtable/driver"
)

var (
	colorBorder   = lipgloss.Color("#6B7280")
	colorHeader   = lipgloss.Color("#8B5CF6")
	colorVariable = lipgloss.Color("#06B6D4")
	colorTrue     = lipgloss.Color("#10B981")
	colorFalse    = lipgloss.Color("#94A3B8")
)

// Styled writes the table with borders and colors. Colors are dropped when w is not a
// terminal.
func Styled(w io.Writer, tab *driver.Table) error {
	r := lipgloss.NewRenderer(w)
	cell := r.NewStyle().Padding(0, 1).Align(lipgloss.Center)
	headerStyle := cell.Foreground(colorHeader).Bold(true)
	variableStyle := cell.Foreground(colorVariable)
	trueStyle := cell.Foreground(colorTrue).Bold(true)
	falseStyle := cell.Foreground(colorFalse)

	headers := make([]string, 0, len(tab.Variables)+len(tab.Formulas))
	columns := make([]*driver.Column, 0, cap(headers))
	for _, c := range tab.Variables {
		headers = append(headers, c.Name)
		columns = append(columns, c)
	}
	for _, c := range tab.Formulas {
		headers = append(headers, c.Name)
		columns = append(columns, c)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Foreground(colorBorder)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row < 0 || row >= tab.Size || col >= len(columns):
				return cell
			case col < len(tab.Variables):
				return variableStyle
			case columns[col].Values.At(row):
				return trueStyle
			}
			return falseStyle
		})
	for row := 0; row < tab.Size; row++ {
		cells := make([]string, len(columns))
		for i, c := range columns {
			if c.Values.At(row) {
				cells[i] = "1"
			} else {
				cells[i] = "0"
			}
		}
		t.Row(cells...)
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
