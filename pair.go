package pprint

import (
	"fmt"
	"io"
)

// Pair holds two values.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair returns a Pair of a and b.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Len returns 2.
func (p Pair[A, B]) Len() int { return 2 }

// Values returns the components in order.
func (p Pair[A, B]) Values() []any { return []any{p.First, p.Second} }

// Row returns the pretty-printed components as table cells.
func (p Pair[A, B]) Row() []string { return []string{Sprint(p.First), Sprint(p.Second)} }

// PrettyPrint writes p as (first, second).
func (p Pair[A, B]) PrettyPrint(w io.Writer) {
	_, _ = io.WriteString(w, "(")
	writeElem(w, p.First)
	_, _ = io.WriteString(w, Separator)
	writeElem(w, p.Second)
	_, _ = io.WriteString(w, ")")
}

// Format implements [fmt.Formatter].
func (p Pair[A, B]) Format(f fmt.State, _ rune) { formatShape(f, p) }
