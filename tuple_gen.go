// Code generated by tuplegen. DO NOT EDIT.

package pprint

import (
	"fmt"
	"io"

	"github.com/francoispqt/gojay"
)

// Tuple0 is a tuple of 0 values.
type Tuple0 struct {
}

// MakeTuple0 returns a Tuple0 of the given values.
func MakeTuple0() Tuple0 {
	return Tuple0{}
}

// Len returns 0.
func (t Tuple0) Len() int { return 0 }

// Values returns the elements in order.
func (t Tuple0) Values() []any { return []any{} }

// Row returns the pretty-printed elements as table cells.
func (t Tuple0) Row() []string { return rowOfValues(t.Values()) }

// PrettyPrint writes t in parentheses.
func (t Tuple0) PrettyPrint(w io.Writer) {
	_, _ = io.WriteString(w, "(")
	_, _ = io.WriteString(w, ")")
}

// Format implements [fmt.Formatter].
func (t Tuple0) Format(f fmt.State, _ rune) { formatShape(f, t) }

// MarshalJSONArray implements [gojay.MarshalerJSONArray].
func (t Tuple0) MarshalJSONArray(enc *gojay.Encoder) { addJSONValues(enc, t.Values()) }

// IsNil implements [gojay.MarshalerJSONArray].
func (t Tuple0) IsNil() bool { return false }

// MarshalJSON implements [json.Marshaler].
func (t Tuple0) MarshalJSON() ([]byte, error) { return gojay.MarshalJSONArray(t) }

// MarshalYAML implements [yaml.Marshaler].
func (t Tuple0) MarshalYAML() (any, error) { return yamlSequence(t.Values()) }

// Tuple1 is a tuple of 1 values.
type Tuple1[T0 any] struct {
	V0 T0
}

// MakeTuple1 returns a Tuple1 of the given values.
func MakeTuple1[T0 any](v0 T0) Tuple1[T0] {
	return Tuple1[T0]{V0: v0}
}

// Len returns 1.
func (t Tuple1[T0]) Len() int { return 1 }

// Values returns the elements in order.
func (t Tuple1[T0]) Values() []any { return []any{t.V0} }

// Row returns the pretty-printed elements as table cells.
func (t Tuple1[T0]) Row() []string { return rowOfValues(t.Values()) }

// PrettyPrint writes t in parentheses.
func (t Tuple1[T0]) PrettyPrint(w io.Writer) {
	_, _ = io.WriteString(w, "(")
	writeElem(w, t.V0)
	_, _ = io.WriteString(w, ")")
}

// Format implements [fmt.Formatter].
func (t Tuple1[T0]) Format(f fmt.State, _ rune) { formatShape(f, t) }

// MarshalJSONArray implements [gojay.MarshalerJSONArray].
func (t Tuple1[T0]) MarshalJSONArray(enc *gojay.Encoder) { addJSONValues(enc, t.Values()) }

// IsNil implements [gojay.MarshalerJSONArray].
func (t Tuple1[T0]) IsNil() bool { return false }

// MarshalJSON implements [json.Marshaler].
func (t Tuple1[T0]) MarshalJSON() ([]byte, error) { return gojay.MarshalJSONArray(t) }

// MarshalYAML implements [yaml.Marshaler].
func (t Tuple1[T0]) MarshalYAML() (any, error) { return yamlSequence(t.Values()) }

// Tuple2 is a tuple of 2 values.
type Tuple2[T0, T1 any] struct {
	V0 T0
	V1 T1
}

// MakeTuple2 returns a Tuple2 of the given values.
func MakeTuple2[T0, T1 any](v0 T0, v1 T1) Tuple2[T0, T1] {
	return Tuple2[T0, T1]{V0: v0, V1: v1}
}

// Len returns 2.
func (t Tuple2[T0, T1]) Len() int { return 2 }

// Values returns the elements in order.
func (t Tuple2[T0, T1]) Values() []any { return []any{t.V0, t.V1} }

// Row returns the pretty-printed elements as table cells.
func (t Tuple2[T0, T1]) Row() []string { return rowOfValues(t.Values()) }

// PrettyPrint writes t in parentheses.
func (t Tuple2[T0, T1]) PrettyPrint(w io.Writer) {
	_, _ = io.WriteString(w, "(")
	writeElem(w, t.V0)
	_, _ = io.WriteString(w, Separator)
	writeElem(w, t.V1)
	_, _ = io.WriteString(w, ")")
}

// Format implements [fmt.Formatter].
func (t Tuple2[T0, T1]) Format(f fmt.State, _ rune) { formatShape(f, t) }

// MarshalJSONArray implements [gojay.MarshalerJSONArray].
func (t Tuple2[T0, T1]) MarshalJSONArray(enc *gojay.Encoder) { addJSONValues(enc, t.Values()) }

// IsNil implements [gojay.MarshalerJSONArray].
func (t Tuple2[T0, T1]) IsNil() bool { return false }

// MarshalJSON implements [json.Marshaler].
func (t Tuple2[T0, T1]) MarshalJSON() ([]byte, error) { return gojay.MarshalJSONArray(t) }

// MarshalYAML implements [yaml.Marshaler].
func (t Tuple2[T0, T1]) MarshalYAML() (any, error) { return yamlSequence(t.Values()) }

// Tuple3 is a tuple of 3 values.
type Tuple3[T0, T1, T2 any] struct {
	V0 T0
	V1 T1
	V2 T2
}

// MakeTuple3 returns a Tuple3 of the given values.
func MakeTuple3[T0, T1, T2 any](v0 T0, v1 T1, v2 T2) Tuple3[T0, T1, T2] {
	return Tuple3[T0, T1, T2]{V0: v0, V1: v1, V2: v2}
}

// Len returns 3.
func (t Tuple3[T0, T1, T2]) Len() int { return 3 }

// Values returns the elements in order.
func (t Tuple3[T0, T1, T2]) Values() []any { return []any{t.V0, t.V1, t.V2} }

// Row returns the pretty-printed elements as table cells.
func (t Tuple3[T0, T1, T2]) Row() []string { return rowOfValues(t.Values()) }

// PrettyPrint writes t in parentheses.
func (t Tuple3[T0, T1, T2]) PrettyPrint(w io.Writer) {
	_, _ = io.WriteString(w, "(")
	writeElem(w, t.V0)
	_, _ = io.WriteString(w, Separator)
	writeElem(w, t.V1)
	_, _ = io.WriteString(w, Separator)
	writeElem(w, t.V2)
	_, _ = io.WriteString(w, ")")
}

// Format implements [fmt.Formatter].
func (t Tuple3[T0, T1, T2]) Format(f fmt.State, _ rune) { formatShape(f, t) }

// MarshalJSONArray implements [gojay.MarshalerJSONArray].
func (t Tuple3[T0, T1, T2]) MarshalJSONArray(enc *gojay.Encoder) { addJSONValues(enc, t.Values()) }

// IsNil implements [gojay.MarshalerJSONArray].
func (t Tuple3[T0, T1, T2]) IsNil() bool { return false }

// MarshalJSON implements [json.Marshaler].
func (t Tuple3[T0, T1, T2]) MarshalJSON() ([]byte, error) { return gojay.MarshalJSONArray(t) }

// MarshalYAML implements [yaml.Marshaler].
func (t Tuple3[T0, T1, T2]) MarshalYAML() (any, error) { return yamlSequence(t.Values()) }

// Tuple4 is a tuple of 4 values.
type Tuple4[T0, T1, T2, T3 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
}

// MakeTuple4 returns a Tuple4 of the given values.
func MakeTuple4[T0, T1, T2, T3 any](v0 T0, v1 T1, v2 T2, v3 T3) Tuple4[T0, T1, T2, T3] {
	return Tuple4[T0, T1, T2, T3]{V0: v0, V1: v1, V2: v2, V3: v3}
}

// Len returns 4.
func (t Tuple4[T0, T1, T2, T3]) Len() int { return 4 }

// Values returns the elements in order.
func (t Tuple4[T0, T1, T2, T3]) Values() []any { return []any{t.V0, t.V1, t.V2, t.V3} }

// Row returns the pretty-printed elements as table cells.
func (t Tuple4[T0, T1, T2, T3]) Row() []string { return rowOfValues(t.Values()) }

// PrettyPrint writes t in parentheses.
func (t Tuple4[T0, T1, T2, T3]) PrettyPrint(w io.Writer) {
	_, _ = io.WriteString(w, "(")
	writeElem(w, t.V0)
	_, _ = io.WriteString(w, Separator)
	writeElem(w, t.V1)
	_, _ = io.WriteString(w, Separator)
	writeElem(w, t.V2)
	_, _ = io.WriteString(w, Separator)
	writeElem(w, t.V3)
	_, _ = io.WriteString(w, ")")
}

// Format implements [fmt.Formatter].
func (t Tuple4[T0, T1, T2, T3]) Format(f fmt.State, _ rune) { formatShape(f, t) }

// MarshalJSONArray implements [gojay.MarshalerJSONArray].
func (t Tuple4[T0, T1, T2, T3]) MarshalJSONArray(enc *gojay.Encoder) { addJSONValues(enc, t.Values()) }

// IsNil implements [gojay.MarshalerJSONArray].
func (t Tuple4[T0, T1, T2, T3]) IsNil() bool { return false }

// MarshalJSON implements [json.Marshaler].
func (t Tuple4[T0, T1, T2, T3]) MarshalJSON() ([]byte, error) { return gojay.MarshalJSONArray(t) }

// MarshalYAML implements [yaml.Marshaler].
func (t Tuple4[T0, T1, T2, T3]) MarshalYAML() (any, error) { return yamlSequence(t.Values()) }

// Tuple5 is a tuple of 5 values.
type Tuple5[T0, T1, T2, T3, T4 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
	V4 T4
}

// MakeTuple5 returns a Tuple5 of the given values.
func MakeTuple5[T0, T1, T2, T3, T4 any](v0 T0, v1 T1, v2 T2, v3 T3, v4 T4) Tuple5[T0, T1, T2, T3, T4] {
	return Tuple5[T0, T1, T2, T3, T4]{V0: v0, V1: v1, V2: v2, V3: v3, V4: v4}
}

// Len returns 5.
func (t Tuple5[T0, T1, T2, T3, T4]) Len() int { return 5 }

// Values returns the elements in order.
func (t Tuple5[T0, T1, T2, T3, T4]) Values() []any { return []any{t.V0, t.V1, t.V2, t.V3, t.V4} }

// Row returns the pretty-printed elements as table cells.
func (t Tuple5[T0, T1, T2, T3, T4]) Row() []string { return rowOfValues(t.Values()) }

// PrettyPrint writes t in parentheses.
func (t Tuple5[T0, T1, T2, T3, T4]) PrettyPrint(w io.Writer) {
	_, _ = io.WriteString(w, "(")
	writeElem(w, t.V0)
	_, _ = io.WriteString(w, Separator)
	writeElem(w, t.V1)
	_, _ = io.WriteString(w, Separator)
	writeElem(w, t.V2)
	_, _ = io.WriteString(w, Separator)
	writeElem(w, t.V3)
	_, _ = io.WriteString(w, Separator)
	writeElem(w, t.V4)
	_, _ = io.WriteString(w, ")")
}

// Format implements [fmt.Formatter].
func (t Tuple5[T0, T1, T2, T3, T4]) Format(f fmt.State, _ rune) { formatShape(f, t) }

// MarshalJSONArray implements [gojay.MarshalerJSONArray].
func (t Tuple5[T0, T1, T2, T3, T4]) MarshalJSONArray(enc *gojay.Encoder) {
	addJSONValues(enc, t.Values())
}

// IsNil implements [gojay.MarshalerJSONArray].
func (t Tuple5[T0, T1, T2, T3, T4]) IsNil() bool { return false }

// MarshalJSON implements [json.Marshaler].
func (t Tuple5[T0, T1, T2, T3, T4]) MarshalJSON() ([]byte, error) { return gojay.MarshalJSONArray(t) }

// MarshalYAML implements [yaml.Marshaler].
func (t Tuple5[T0, T1, T2, T3, T4]) MarshalYAML() (any, error) { return yamlSequence(t.Values()) }

// Tuple6 is a tuple of 6 values.
type Tuple6[T0, T1, T2, T3, T4, T5 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
}

// MakeTuple6 returns a Tuple6 of the given values.
func MakeTuple6[T0, T1, T2, T3, T4, T5 any](v0 T0, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5) Tuple6[T0, T1, T2, T3, T4, T5] {
	return Tuple6[T0, T1, T2, T3, T4, T5]{V0: v0, V1: v1, V2: v2, V3: v3, V4: v4, V5: v5}
}

// Len returns 6.
func (t Tuple6[T0, T1, T2, T3, T4, T5]) Len() int { return 6 }

// Values returns the elements in order.
func (t Tuple6[T0, T1, T2, T3, T4, T5]) Values() []any {
	return []any{t.V0, t.V1, t.V2, t.V3, t.V4, t.V5}
}

// Row returns the pretty-printed elements as table cells.
func (t Tuple6[T0, T1, T2, T3, T4, T5]) Row() []string { return rowOfValues(t.Values()) }

// PrettyPrint writes t in parentheses.
func (t Tuple6[T0, T1, T2, T3, T4, T5]) PrettyPrint(w io.Writer) {
	_, _ = io.WriteString(w, "(")
	writeElem(w, t.V0)
	_, _ = io.WriteString(w, Separator)
	writeElem(w, t.V1)
	_, _ = io.WriteString(w, Separator)
	writeElem(w, t.V2)
	_, _ = io.WriteString(w, Separator)
	writeElem(w, t.V3)
	_, _ = io.WriteString(w, Separator)
	writeElem(w, t.V4)
	_, _ = io.WriteString(w, Separator)
	writeElem(w, t.V5)
	_, _ = io.WriteString(w, ")")
}

// Format implements [fmt.Formatter].
func (t Tuple6[T0, T1, T2, T3, T4, T5]) Format(f fmt.State, _ rune) { formatShape(f, t) }

// MarshalJSONArray implements [gojay.MarshalerJSONArray].
func (t Tuple6[T0, T1, T2, T3, T4, T5]) MarshalJSONArray(enc *gojay.Encoder) {
	addJSONValues(enc, t.Values())
}

// IsNil implements [gojay.MarshalerJSONArray].
func (t Tuple6[T0, T1, T2, T3, T4, T5]) IsNil() bool { return false }

// MarshalJSON implements [json.Marshaler].
func (t Tuple6[T0, T1, T2, T3, T4, T5]) MarshalJSON() ([]byte, error) {
	return gojay.MarshalJSONArray(t)
}

// MarshalYAML implements [yaml.Marshaler].
func (t Tuple6[T0, T1, T2, T3, T4, T5]) MarshalYAML() (any, error) { return yamlSequence(t.Values()) }

// Tuple7 is a tuple of 7 values.
type Tuple7[T0, T1, T2, T3, T4, T5, T6 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
}

// MakeTuple7 returns a Tuple7 of the given values.
func MakeTuple7[T0, T1, T2, T3, T4, T5, T6 any](v0 T0, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6) Tuple7[T0, T1, T2, T3, T4, T5, T6] {
	return Tuple7[T0, T1, T2, T3, T4, T5, T6]{V0: v0, V1: v1, V2: v2, V3: v3, V4: v4, V5: v5, V6: v6}
}

// Len returns 7.
func (t Tuple7[T0, T1, T2, T3, T4, T5, T6]) Len() int { return 7 }

// Values returns the elements in order.
func (t Tuple7[T0, T1, T2, T3, T4, T5, T6]) Values() []any {
	return []any{t.V0, t.V1, t.V2, t.V3, t.V4, t.V5, t.V6}
}

// Row returns the pretty-printed elements as table cells.
func (t Tuple7[T0, T1, T2, T3, T4, T5, T6]) Row() []string { return rowOfValues(t.Values()) }

// PrettyPrint writes t in parentheses.
func (t Tuple7[T0, T1, T2, T3, T4, T5, T6]) PrettyPrint(w io.Writer) {
	_, _ = io.WriteString(w, "(")
	writeElem(w, t.V0)
	_, _ = io.WriteString(w, Separator)
	writeElem(w, t.V1)
	_, _ = io.WriteString(w, Separator)
	writeElem(w, t.V2)
	_, _ = io.WriteString(w, Separator)
	writeElem(w, t.V3)
	_, _ = io.WriteString(w, Separator)
	writeElem(w, t.V4)
	_, _ = io.WriteString(w, Separator)
	writeElem(w, t.V5)
	_, _ = io.WriteString(w, Separator)
	writeElem(w, t.V6)
	_, _ = io.WriteString(w, ")")
}

// Format implements [fmt.Formatter].
func (t Tuple7[T0, T1, T2, T3, T4, T5, T6]) Format(f fmt.State, _ rune) { formatShape(f, t) }

// MarshalJSONArray implements [gojay.MarshalerJSONArray].
func (t Tuple7[T0, T1, T2, T3, T4, T5, T6]) MarshalJSONArray(enc *gojay.Encoder) {
	addJSONValues(enc, t.Values())
}

// IsNil implements [gojay.MarshalerJSONArray].
func (t Tuple7[T0, T1, T2, T3, T4, T5, T6]) IsNil() bool { return false }

// MarshalJSON implements [json.Marshaler].
func (t Tuple7[T0, T1, T2, T3, T4, T5, T6]) MarshalJSON() ([]byte, error) {
	return gojay.MarshalJSONArray(t)
}

// MarshalYAML implements [yaml.Marshaler].
func (t Tuple7[T0, T1, T2, T3, T4, T5, T6]) MarshalYAML() (any, error) {
	return yamlSequence(t.Values())
}

// Tuple8 is a tuple of 8 values.
type Tuple8[T0, T1, T2, T3, T4, T5, T6, T7 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
}

// MakeTuple8 returns a Tuple8 of the given values.
func MakeTuple8[T0, T1, T2, T3, T4, T5, T6, T7 any](v0 T0, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6, v7 T7) Tuple8[T0, T1, T2, T3, T4, T5, T6, T7] {
	return Tuple8[T0, T1, T2, T3, T4, T5, T6, T7]{V0: v0, V1: v1, V2: v2, V3: v3, V4: v4, V5: v5, V6: v6, V7: v7}
}

// Len returns 8.
func (t Tuple8[T0, T1, T2, T3, T4, T5, T6, T7]) Len() int { return 8 }

// Values returns the elements in order.
func (t Tuple8[T0, T1, T2, T3, T4, T5, T6, T7]) Values() []any {
	return []any{t.V0, t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7}
}

// Row returns the pretty-printed elements as table cells.
func (t Tuple8[T0, T1, T2, T3, T4, T5, T6, T7]) Row() []string { return rowOfValues(t.Values()) }

// PrettyPrint writes t in parentheses.
func (t Tuple8[T0, T1, T2, T3, T4, T5, T6, T7]) PrettyPrint(w io.Writer) {
	_, _ = io.WriteString(w, "(")
	writeElem(w, t.V0)
	_, _ = io.WriteString(w, Separator)
	writeElem(w, t.V1)
	_, _ = io.WriteString(w, Separator)
	writeElem(w, t.V2)
	_, _ = io.WriteString(w, Separator)
	writeElem(w, t.V3)
	_, _ = io.WriteString(w, Separator)
	writeElem(w, t.V4)
	_, _ = io.WriteString(w, Separator)
	writeElem(w, t.V5)
	_, _ = io.WriteString(w, Separator)
	writeElem(w, t.V6)
	_, _ = io.WriteString(w, Separator)
	writeElem(w, t.V7)
	_, _ = io.WriteString(w, ")")
}

// Format implements [fmt.Formatter].
func (t Tuple8[T0, T1, T2, T3, T4, T5, T6, T7]) Format(f fmt.State, _ rune) { formatShape(f, t) }

// MarshalJSONArray implements [gojay.MarshalerJSONArray].
func (t Tuple8[T0, T1, T2, T3, T4, T5, T6, T7]) MarshalJSONArray(enc *gojay.Encoder) {
	addJSONValues(enc, t.Values())
}

// IsNil implements [gojay.MarshalerJSONArray].
func (t Tuple8[T0, T1, T2, T3, T4, T5, T6, T7]) IsNil() bool { return false }

// MarshalJSON implements [json.Marshaler].
func (t Tuple8[T0, T1, T2, T3, T4, T5, T6, T7]) MarshalJSON() ([]byte, error) {
	return gojay.MarshalJSONArray(t)
}

// MarshalYAML implements [yaml.Marshaler].
func (t Tuple8[T0, T1, T2, T3, T4, T5, T6, T7]) MarshalYAML() (any, error) {
	return yamlSequence(t.Values())
}
