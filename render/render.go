package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/nihei9/truthtable/driver"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText   = Format("text")
	FormatStyled = Format("styled")
	FormatYAML   = Format("yaml")
	FormatJSON   = Format("json")
)

var Formats = []Format{FormatText, FormatStyled, FormatYAML, FormatJSON}

func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format: %v (available formats: text, styled, yaml, json)", s)
}

func Write(w io.Writer, tab *driver.Table, format Format) error {
	switch format {
	case FormatText:
		return Text(w, tab)
	case FormatStyled:
		return Styled(w, tab)
	case FormatYAML:
		return YAML(w, tab)
	case FormatJSON:
		return JSON(w, tab)
	}
	return fmt.Errorf("unknown format: %v", format)
}

// Text writes the table with each value centered under its column title:
//
//	| a | b || a&&b |
//	|---|---||------|
//	| 0 | 0 ||   0  |
func Text(w io.Writer, tab *driver.Table) error {
	var b strings.Builder

	for _, c := range tab.Variables {
		fmt.Fprintf(&b, "| %v ", c.Name)
	}
	b.WriteString("||")
	for _, c := range tab.Formulas {
		fmt.Fprintf(&b, " %v |", c.Name)
	}
	b.WriteString("\n")

	for _, c := range tab.Variables {
		fmt.Fprintf(&b, "|%v", strings.Repeat("-", len(c.Name)+2))
	}
	b.WriteString("||")
	for _, c := range tab.Formulas {
		fmt.Fprintf(&b, "%v|", strings.Repeat("-", len(c.Name)+2))
	}
	b.WriteString("\n")

	for row := 0; row < tab.Size; row++ {
		for _, c := range tab.Variables {
			fmt.Fprintf(&b, "|%v", centered(c, row))
		}
		b.WriteString("||")
		for _, c := range tab.Formulas {
			fmt.Fprintf(&b, "%v|", centered(c, row))
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func centered(c *driver.Column, row int) string {
	v := "0"
	if c.Values.At(row) {
		v = "1"
	}
	n := len(c.Name)
	return strings.Repeat(" ", 1+n/2) + v + strings.Repeat(" ", (n+1)/2)
}

// Document is the serializable form of a table. Values are strings of 0s and 1s.
type Document struct {
	Rows      int              `yaml:"rows,omitempty" json:"rows"`
	Variables []DocumentColumn `yaml:"variables" json:"variables"`
	Formulas  []DocumentColumn `yaml:"formulas" json:"formulas"`
}

type DocumentColumn struct {
	Name   string `yaml:"name" json:"name"`
	Source string `yaml:"source,omitempty" json:"source,omitempty"`
	Values string `yaml:"values" json:"values"`
}

func NewDocument(tab *driver.Table) *Document {
	doc := &Document{
		Rows:      tab.Size,
		Variables: make([]DocumentColumn, len(tab.Variables)),
		Formulas:  make([]DocumentColumn, len(tab.Formulas)),
	}
	for i, c := range tab.Variables {
		doc.Variables[i] = DocumentColumn{
			Name:   c.Name,
			Values: c.Values.String(),
		}
	}
	for i, c := range tab.Formulas {
		dc := DocumentColumn{
			Name:   c.Name,
			Values: c.Values.String(),
		}
		if c.Source != c.Name {
			dc.Source = c.Source
		}
		doc.Formulas[i] = dc
	}
	return doc
}

func YAML(w io.Writer, tab *driver.Table) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	err := enc.Encode(NewDocument(tab))
	if err != nil {
		return err
	}
	return enc.Close()
}

func JSON(w io.Writer, tab *driver.Table) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(tab))
}
