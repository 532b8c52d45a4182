package pprint

import (
	"encoding/csv"
	"fmt"
	"io"
)

func writeCSV[T any](w io.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}
	if _, ok := any(items[0]).(Rower); !ok {
		return fmt.Errorf("%w: format %q requires Rower, not implemented by %T", ErrMissingInterface, CSV, items[0])
	}
	cw := newCSVWriter(w, items[0])
	if h, ok := any(items[0]).(Headed); ok {
		if err := cw.Write(h.Header()); err != nil {
			return err
		}
	}
	for _, item := range items {
		if err := cw.Write(any(item).(Rower).Row()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func newCSVWriter(w io.Writer, first any) *csv.Writer {
	cw := csv.NewWriter(w)
	if d, ok := first.(Delimited); ok {
		cw.Comma = d.Delimiter()
	}
	return cw
}

// writeCSVRow writes a single record and flushes it.
func writeCSVRow(w io.Writer, first any, row []string) error {
	cw := newCSVWriter(w, first)
	if err := cw.Write(row); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
