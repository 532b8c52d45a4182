package pprint

import (
	"fmt"
	"io"
	"iter"
)

// WriteIter formats items from an iterator and writes them to w as they
// arrive. Pretty, JSONL, CSV and TSV write each item immediately. JSON
// always produces an array, even for a single item. YAML, Table and
// Markdown need every item before rendering and collect them first.
func WriteIter[T any](w io.Writer, f Format, seq iter.Seq[T]) error {
	switch f {
	case Pretty:
		return streamEach(seq, func(item T) error { return Fprintln(w, item) })
	case JSONL:
		return streamEach(seq, func(item T) error { return encodeJSON(w, item) })
	case JSON:
		return encodeJSON(w, SeqOf(seq))
	case CSV:
		return streamRows(w, f, seq, writeCSV[T], func(first, item T) error {
			return writeCSVRow(w, first, any(item).(Rower).Row())
		})
	case TSV:
		return streamRows(w, f, seq, writeTSV[T], func(_, item T) error {
			return writeTSVRow(w, any(item).(Rower).Row())
		})
	case YAML, Table, Markdown:
		return streamCollect(w, f, seq)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// WriteChan formats items from a channel and writes them to w.
// It is a thin wrapper around [WriteIter].
func WriteChan[T any](w io.Writer, f Format, ch <-chan T) error {
	return WriteIter(w, f, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

func streamEach[T any](seq iter.Seq[T], write func(T) error) error {
	for item := range seq {
		if err := write(item); err != nil {
			return err
		}
	}
	return nil
}

// streamRows writes the first item with the full writer, so headers and
// interface checks happen once, then writes bare rows for the rest.
func streamRows[T any](w io.Writer, f Format, seq iter.Seq[T], writeFirst func(io.Writer, []T) error, writeRow func(first, item T) error) error {
	var first T
	started := false
	for item := range seq {
		if !started {
			started = true
			if _, ok := any(item).(Rower); !ok {
				return fmt.Errorf("%w: format %q requires Rower, not implemented by %T", ErrMissingInterface, f, item)
			}
			first = item
			if err := writeFirst(w, []T{item}); err != nil {
				return err
			}
			continue
		}
		if err := writeRow(first, item); err != nil {
			return err
		}
	}
	return nil
}

func streamCollect[T any](w io.Writer, f Format, seq iter.Seq[T]) error {
	var items []T
	for item := range seq {
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil
	}
	return Write(w, f, items...)
}
