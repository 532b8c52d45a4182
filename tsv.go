package pprint

import (
	"fmt"
	"io"
	"strings"
)

func writeTSV[T any](w io.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}
	if _, ok := any(items[0]).(Rower); !ok {
		return fmt.Errorf("%w: format %q requires Rower, not implemented by %T", ErrMissingInterface, TSV, items[0])
	}
	if h, ok := any(items[0]).(Headed); ok {
		if err := writeTSVRow(w, h.Header()); err != nil {
			return err
		}
	}
	for _, item := range items {
		if err := writeTSVRow(w, any(item).(Rower).Row()); err != nil {
			return err
		}
	}
	return nil
}

func writeTSVRow(w io.Writer, row []string) error {
	_, err := fmt.Fprintln(w, strings.Join(row, "\t"))
	return err
}
