// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/bitmark-inc/treelab/fault"
)

// Table - a titled grid of cells
type Table struct {
	Kind    string     `json:"kind" yaml:"kind"`
	Title   string     `json:"title" yaml:"title"`
	Headers []string   `json:"headers" yaml:"headers"`
	Rows    [][]string `json:"rows" yaml:"rows"`
	Notes   []string   `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// New - empty table of a kind
func New(kind string, title string, headers ...string) *Table {
	return &Table{
		Kind:    kind,
		Title:   title,
		Headers: headers,
		Rows:    [][]string{},
	}
}

// Add - append a row, each value formatted with Cell
func (t *Table) Add(values ...interface{}) {
	row := make([]string, len(values))
	for i, v := range values {
		row[i] = Cell(v)
	}
	t.Rows = append(t.Rows, row)
}

// Note - append a free text line shown below the table
func (t *Table) Note(format string, arguments ...interface{}) {
	t.Notes = append(t.Notes, fmt.Sprintf(format, arguments...))
}

// Cell - text for one value, floats with two decimals
func Cell(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', 2, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', 2, 32)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// Format - output encoding
type Format int

// output encodings
const (
	Text Format = iota
	JSON
	YAML
)

var formatNames = map[Format]string{
	Text: "table",
	JSON: "json",
	YAML: "yaml",
}

// String - name of a format
func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return "*unknown*"
}

// ParseFormat - format from its name, empty selects Text
func ParseFormat(s string) (Format, error) {
	if "" == s {
		return Text, nil
	}
	for f, name := range formatNames {
		if strings.EqualFold(name, s) {
			return f, nil
		}
	}
	return 0, fault.ErrInvalidFormat
}

// Write - render the table to w in the chosen format
func Write(w io.Writer, t *Table, format Format) error {
	var s string
	var err error
	switch format {
	case Text:
		s = FormatTable(t)
	case JSON:
		s, err = FormatJSON(t)
	case YAML:
		s, err = FormatYAML(t)
	default:
		return fault.ErrInvalidFormat
	}
	if nil != err {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// FormatTable - bordered text table with title and notes
func FormatTable(t *Table) string {
	grid := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(t.Headers...).
		Rows(t.Rows...).
		StyleFunc(func(row int, col int) lipgloss.Style {
			if table.HeaderRow == row {
				return headerStyle
			}
			return cellStyle
		})

	var b strings.Builder
	if "" != t.Title {
		b.WriteString(titleStyle.Render(t.Title))
		b.WriteString("\n")
	}
	b.WriteString(grid.String())
	b.WriteString("\n")
	for _, n := range t.Notes {
		b.WriteString(n)
		b.WriteString("\n")
	}
	return b.String()
}

// FormatJSON - indented JSON
func FormatJSON(t *Table) (string, error) {
	buffer, err := json.MarshalIndent(t, "", "  ")
	if nil != err {
		return "", err
	}
	return string(buffer) + "\n", nil
}

// FormatYAML - YAML document
func FormatYAML(t *Table) (string, error) {
	buffer, err := yaml.Marshal(t)
	if nil != err {
		return "", err
	}
	return string(buffer), nil
}

// Decode - table from its JSON encoding, as archived
func Decode(data []byte) (*Table, error) {
	t := &Table{}
	if err := json.Unmarshal(data, t); nil != err {
		return nil, err
	}
	return t, nil
}

// Encode - compact JSON for archiving
func Encode(t *Table) ([]byte, error) {
	return json.Marshal(t)
}
