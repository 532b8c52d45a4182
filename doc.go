// Package pprint writes containers, pairs and tuples in a fixed bracketed
// form without per-type formatting code.
//
//	pprint.Sprint(pprint.Of(1, 2, 3))                       // [1, 2, 3]
//	pprint.Sprint(pprint.MakePair(1, "a"))                  // (1, a)
//	pprint.Sprint(pprint.MakeTuple3(1, 2.5, "x"))           // (1, 2.5, x)
//	pprint.Sprint(pprint.Of(pprint.MakePair(1, 2)))         // [(1, 2)]
//	pprint.Sprint(pprint.MakeTuple0())                      // ()
//
// # Shapes
//
// The printing strategy is picked by the static type of the value:
//
//   - [Slice], [Array], [Seq] and [Map] print as [e0, e1, ...]
//   - [Pair] prints as (first, second)
//   - Tuple0 through Tuple8 print as (v0, v1, ...)
//
// Every shape implements [Printer] and [fmt.Formatter], so shapes nest inside
// each other and inside ordinary fmt calls. Elements that are not shapes are
// classified by their dynamic type: native slices, maps and arrays and any
// type with an All method are written in brackets too, so
//
//	pprint.Sprint(pprint.MakePair(1, []int{2, 3}))          // (1, [2, 3])
//
// Everything else is written with [fmt.Fprint], which keeps the element's own
// String or Error method in charge of its text. The separator is always ", "
// and nothing trails the last element.
//
// Any type with an All() iter.Seq[E] method can be printed with
// [WriteContainer]. A type that also has a String method is treated as
// string-like and written through String instead.
//
// # Classification
//
// [Classify], [IsCharacter], [IsStringLike], [IsContainer] and [IsArray]
// report how a type is treated. They depend only on the type, never on a
// value, and element printing follows the same rules.
//
// # Sinks
//
// [Fprint], [Fprintln], [Print] and [Sprint] write one value. [Stream]
// chains several writes and keeps the first error:
//
//	err := pprint.To(w).Print(xs).Print(" -> ").Print(p).Err()
//
// # Other Formats
//
// [Write] renders items in any [Format]:
//
//   - [Pretty]: one bracketed value per line
//   - [JSON], [JSONL]: shapes become JSON arrays
//   - [YAML]: shapes become flow sequences
//   - [CSV], [TSV], [Table], [Markdown]: items must implement [Rower]; pairs,
//     tuples, [Slice] and [Array] do, with one cell per element
//
// [WriteIter] and [WriteChan] stream items from an iterator or channel.
//
// # Errors
//
//   - [ErrUnsupportedFormat]: unknown format name
//   - [ErrMissingInterface]: items don't implement the required interface
//
// Write errors from the underlying writer are returned unchanged.
package pprint
