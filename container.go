package pprint

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"maps"
	"reflect"
	"slices"
	"unicode/utf8"
)

// Slice is a container backed by a Go slice.
type Slice[E any] []E

// Of returns a Slice holding elems.
func Of[E any](elems ...E) Slice[E] { return Slice[E](elems) }

// SliceOf converts any slice type to a Slice without copying.
func SliceOf[S ~[]E, E any](s S) Slice[E] { return Slice[E](s) }

// All returns the elements in index order.
func (s Slice[E]) All() iter.Seq[E] { return slices.Values(s) }

// Len returns the number of elements.
func (s Slice[E]) Len() int { return len(s) }

// Row returns the pretty-printed elements as table cells.
func (s Slice[E]) Row() []string { return rowOf(s.All()) }

// PrettyPrint writes s as [e0, e1, ...].
func (s Slice[E]) PrettyPrint(w io.Writer) { writeSeq(w, s.All()) }

// Format implements [fmt.Formatter].
func (s Slice[E]) Format(f fmt.State, _ rune) { formatShape(f, s) }

// Array is a view of a fixed-size array, built with ArrayOf(a[:]).
//
// Arrays of characters are written as text up to the first zero value, the
// way a NUL-padded buffer reads; all other arrays are written like a Slice.
// Go cannot tell byte from uint8 or rune from int32, so numeric arrays of
// those types are written as text as well. Use a Slice to print them as
// numbers.
type Array[E any] []E

// ArrayOf returns an Array view of a.
func ArrayOf[E any](a []E) Array[E] { return Array[E](a) }

// All returns the elements in index order.
func (a Array[E]) All() iter.Seq[E] { return slices.Values(a) }

// Len returns the number of elements.
func (a Array[E]) Len() int { return len(a) }

// Row returns the pretty-printed elements as table cells.
func (a Array[E]) Row() []string { return rowOf(a.All()) }

// PrettyPrint writes a as [e0, e1, ...] or as text for character arrays.
func (a Array[E]) PrettyPrint(w io.Writer) {
	if IsCharacter[E]() {
		writeText(w, a)
		return
	}
	writeSeq(w, a.All())
}

// Format implements [fmt.Formatter].
func (a Array[E]) Format(f fmt.State, _ rune) { formatShape(f, a) }

// Seq is a container backed by an iterator. It is consumed each time it is
// printed, so single-use iterators print once.
type Seq[E any] iter.Seq[E]

// SeqOf wraps seq.
func SeqOf[E any](seq iter.Seq[E]) Seq[E] { return Seq[E](seq) }

// All returns the wrapped iterator. A nil Seq yields nothing.
func (s Seq[E]) All() iter.Seq[E] {
	if s == nil {
		return func(func(E) bool) {}
	}
	return iter.Seq[E](s)
}

// PrettyPrint writes s as [e0, e1, ...].
func (s Seq[E]) PrettyPrint(w io.Writer) { writeSeq(w, s.All()) }

// Format implements [fmt.Formatter].
func (s Seq[E]) Format(f fmt.State, _ rune) { formatShape(f, s) }

// Map is a container of key/value pairs visited in ascending key order.
type Map[K cmp.Ordered, V any] map[K]V

// MapOf converts any map type with ordered keys to a Map without copying.
func MapOf[M ~map[K]V, K cmp.Ordered, V any](m M) Map[K, V] { return Map[K, V](m) }

// All returns the entries as pairs, sorted by key.
func (m Map[K, V]) All() iter.Seq[Pair[K, V]] {
	return func(yield func(Pair[K, V]) bool) {
		for _, k := range slices.Sorted(maps.Keys(m)) {
			if !yield(Pair[K, V]{First: k, Second: m[k]}) {
				return
			}
		}
	}
}

// Len returns the number of entries.
func (m Map[K, V]) Len() int { return len(m) }

// PrettyPrint writes m as [(k0, v0), (k1, v1), ...].
func (m Map[K, V]) PrettyPrint(w io.Writer) { writeSeq(w, m.All()) }

// Format implements [fmt.Formatter].
func (m Map[K, V]) Format(f fmt.State, _ rune) { formatShape(f, m) }

// WriteContainer writes any container to w in bracketed form. String-like
// containers are written through their String method instead.
func WriteContainer[E any](w io.Writer, c Container[E]) error {
	s := To(w)
	switch {
	case c == nil:
		writeSeq[E](s, nil)
	case kindOf(reflect.TypeOf(c)) == KindStringLike:
		_, _ = s.WriteString(c.(fmt.Stringer).String())
	default:
		writeSeq(s, c.All())
	}
	return s.Err()
}

func writeSeq[E any](w io.Writer, seq iter.Seq[E]) {
	_, _ = io.WriteString(w, "[")
	if seq != nil {
		first := true
		for e := range seq {
			if !first {
				_, _ = io.WriteString(w, Separator)
			}
			first = false
			writeElem(w, e)
		}
	}
	_, _ = io.WriteString(w, "]")
}

func writeText[E any](w io.Writer, a []E) {
	writeTextValue(w, reflect.ValueOf(a))
}

// writeTextValue writes a slice or array of characters as text, stopping at
// the first zero element.
func writeTextValue(w io.Writer, v reflect.Value) {
	buf := make([]byte, 0, v.Len())
	for i := range v.Len() {
		e := v.Index(i)
		if e.IsZero() {
			break
		}
		if e.Kind() == reflect.Uint8 {
			buf = append(buf, byte(e.Uint()))
		} else {
			buf = utf8.AppendRune(buf, rune(e.Int()))
		}
	}
	_, _ = w.Write(buf)
}

// valuesOf yields the elements of a dynamically typed container or array.
// An All method wins over the underlying kind. Map entries are yielded as
// pairs in key order.
func valuesOf(v reflect.Value) iter.Seq[any] {
	return func(yield func(any) bool) {
		if _, ok := allMethod(v.Type()); ok {
			seq := v.MethodByName("All").Call(nil)[0]
			if seq.IsNil() {
				return
			}
			for e := range seq.Seq() {
				if !yield(e.Interface()) {
					return
				}
			}
			return
		}
		switch v.Kind() {
		case reflect.Slice, reflect.Array:
			for i := range v.Len() {
				if !yield(v.Index(i).Interface()) {
					return
				}
			}
		case reflect.Map:
			keys := v.MapKeys()
			slices.SortFunc(keys, compareKeys)
			for _, k := range keys {
				if !yield(Pair[any, any]{First: k.Interface(), Second: v.MapIndex(k).Interface()}) {
					return
				}
			}
		}
	}
}

// compareKeys orders map keys of the same type. Keys that are not numbers or
// strings are ordered by their printed form.
func compareKeys(a, b reflect.Value) int {
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	case reflect.String:
		return cmp.Compare(a.String(), b.String())
	default:
		return cmp.Compare(Sprint(a.Interface()), Sprint(b.Interface()))
	}
}

func rowOf[E any](seq iter.Seq[E]) []string {
	row := []string{}
	for e := range seq {
		row = append(row, Sprint(e))
	}
	return row
}
