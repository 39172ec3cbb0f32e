// Package output renders command results as tables, JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/jettonmap/pkg/errors"
)

// Format names an output encoding.
type Format string

const (
	// FormatTable renders aligned columns.
	FormatTable Format = "table"
	// FormatJSON renders indented JSON.
	FormatJSON Format = "json"
	// FormatYAML renders YAML.
	FormatYAML Format = "yaml"
)

// Formatter writes data to w in one encoding.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// Tabular is implemented by values that know their table layout.
type Tabular interface {
	Table() Data
}

// NewFormatter returns the formatter for format, defaulting to a table.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return &TableFormatter{}
	}
}

// JSONFormatter outputs JSON.
type JSONFormatter struct {
	Indent string
}

// Format implements Formatter.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if f.Indent != "" {
		enc.SetIndent("", f.Indent)
	}
	return enc.Encode(data)
}

// YAMLFormatter outputs YAML.
type YAMLFormatter struct{}

// Format implements Formatter.
func (f *YAMLFormatter) Format(w io.Writer, data any) error {
	out, err := yaml.MarshalWithOptions(data,
		yaml.Indent(2),
		yaml.IndentSequence(false),
		yaml.UseJSONMarshaler(),
	)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// Data is a header row plus body rows.
type Data struct {
	Headers []string
	Rows    [][]string
	// Right lists column indexes aligned right.
	Right []int
}

// TableFormatter outputs a table for Data or Tabular values and falls back
// to JSON for anything else.
type TableFormatter struct{}

// Format implements Formatter.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	switch v := data.(type) {
	case Data:
		return render(w, v)
	case *Data:
		return render(w, *v)
	case Tabular:
		return render(w, v.Table())
	default:
		return (&JSONFormatter{Indent: "  "}).Format(w, data)
	}
}

func render(w io.Writer, data Data) error {
	var config tablewriter.Config
	if len(data.Right) > 0 {
		align := make([]tw.Align, len(data.Headers))
		for i := range align {
			align[i] = tw.AlignLeft
		}
		for _, col := range data.Right {
			if col >= 0 && col < len(align) {
				align[col] = tw.AlignRight
			}
		}
		config.Header.Alignment = tw.CellAlignment{PerColumn: align}
		config.Row.Alignment = tw.CellAlignment{PerColumn: align}
	}

	table := tablewriter.NewTable(w, tablewriter.WithConfig(config))
	if len(data.Headers) > 0 {
		headers := make([]any, len(data.Headers))
		for i, h := range data.Headers {
			headers[i] = h
		}
		table.Header(headers...)
	}
	for _, row := range data.Rows {
		cells := make([]any, len(row))
		for i, c := range row {
			cells[i] = c
		}
		if err := table.Append(cells...); err != nil {
			return err
		}
	}
	return table.Render()
}

var titleCaser = cases.Title(language.English)

// Title turns a field key such as "total_supply" into "Total Supply".
func Title(key string) string {
	return titleCaser.String(strings.ReplaceAll(key, "_", " "))
}

// Titles applies Title to every key.
func Titles(keys ...string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = Title(k)
	}
	return out
}

// DetectFormat returns explicit when set, otherwise a table for terminals
// and JSON for pipes.
func DetectFormat(explicit string) Format {
	if explicit != "" {
		return Format(strings.ToLower(explicit))
	}
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return FormatTable
	}
	return FormatJSON
}

// ParseFormat validates s as a Format. The empty string is accepted and
// means auto-detect.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatTable, FormatJSON, FormatYAML, "":
		return f, nil
	default:
		return "", errors.NewValidationError("format", s, fmt.Sprintf("must be one of: %s, %s, %s", FormatTable, FormatJSON, FormatYAML))
	}
}

// Write encodes data to w in format, auto-detecting when format is empty.
func Write(w io.Writer, format string, data any) error {
	f, err := ParseFormat(format)
	if err != nil {
		return err
	}
	return NewFormatter(DetectFormat(string(f))).Format(w, data)
}
