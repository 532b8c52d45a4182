package pprint

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrMissingInterface  = errors.New("missing required interface")
)

// Format represents an output format for [Write].
type Format string

const (
	Pretty   Format = "pretty"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	Table    Format = "table"
	Markdown Format = "markdown"
)

var formats = []Format{Pretty, JSON, JSONL, YAML, CSV, TSV, Table, Markdown}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// IsSupported reports whether type T implements the interfaces required by
// format f. Pretty, JSON, JSONL and YAML accept any type.
func IsSupported[T any](f Format) bool {
	var zero T
	v := any(zero)
	switch f {
	case Pretty, JSON, JSONL, YAML:
		return true
	case CSV, TSV, Table:
		_, ok := v.(Rower)
		return ok
	case Markdown:
		_, rower := v.(Rower)
		_, headed := v.(Headed)
		return rower && headed
	default:
		return false
	}
}

// Rower provides row data. Required for CSV, TSV, Table and Markdown.
// Pairs, tuples, Slice and Array implement it with one pretty-printed cell
// per element.
type Rower interface {
	Row() []string
}

// Headed provides column headers for CSV, TSV, Table and Markdown.
type Headed interface {
	Header() []string
}

// Indented controls YAML indentation by the length of the returned string.
type Indented interface {
	Indent() string
}

// Delimited controls the CSV field delimiter.
// Default: comma.
type Delimited interface {
	Delimiter() rune
}

// Bordered controls the table border style.
// Default: BorderRounded.
type Bordered interface {
	Border() BorderStyle
}

// Aligned sets per-column alignment for Table.
// Default: AlignLeft.
type Aligned interface {
	Alignments() []Alignment
}

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
)

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Write formats items and writes them to w.
func Write[T any](w io.Writer, f Format, items ...T) error {
	switch f {
	case Pretty:
		return writePretty(w, items)
	case JSON:
		return writeJSON(w, items)
	case JSONL:
		return writeJSONL(w, items)
	case YAML:
		return writeYAML(w, items)
	case CSV:
		return writeCSV(w, items)
	case TSV:
		return writeTSV(w, items)
	case Table:
		return writeTable(w, items)
	case Markdown:
		return writeMarkdown(w, items)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal formats items and returns the bytes.
func Marshal[T any](f Format, items ...T) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, items...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writePretty[T any](w io.Writer, items []T) error {
	for _, item := range items {
		if err := Fprintln(w, item); err != nil {
			return err
		}
	}
	return nil
}
