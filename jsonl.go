package pprint

import (
	"io"
)

func writeJSONL[T any](w io.Writer, items []T) error {
	for _, item := range items {
		if err := encodeJSON(w, item); err != nil {
			return err
		}
	}
	return nil
}
