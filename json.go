package pprint

import (
	"encoding/json"
	"io"

	"github.com/francoispqt/gojay"
)

// Pairs, tuples and containers encode as JSON arrays. Leaves gojay knows
// natively are added directly; anything else goes through encoding/json and
// is embedded. A leaf encoding/json rejects is written as its bracketed
// text.

func addJSONValues(enc *gojay.Encoder, vs []any) {
	for _, v := range vs {
		addJSONValue(enc, v)
	}
}

func addJSONSeq[E any](enc *gojay.Encoder, c Container[E]) {
	for e := range c.All() {
		addJSONValue(enc, e)
	}
}

func addJSONValue(enc *gojay.Encoder, v any) {
	switch v.(type) {
	case gojay.MarshalerJSONArray, gojay.MarshalerJSONObject,
		string, bool, int, int64, int32, int8, uint64, uint32, uint16, uint8, float64, float32:
		enc.AddInterface(v)
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		enc.AddString(Sprint(v))
		return
	}
	embedded := gojay.EmbeddedJSON(b)
	enc.AddEmbeddedJSON(&embedded)
}

// MarshalJSONArray implements [gojay.MarshalerJSONArray].
func (s Slice[E]) MarshalJSONArray(enc *gojay.Encoder) { addJSONSeq[E](enc, s) }

// IsNil implements [gojay.MarshalerJSONArray].
func (s Slice[E]) IsNil() bool { return s == nil }

// MarshalJSON implements [json.Marshaler].
func (s Slice[E]) MarshalJSON() ([]byte, error) { return gojay.MarshalJSONArray(s) }

// MarshalJSONArray implements [gojay.MarshalerJSONArray].
func (a Array[E]) MarshalJSONArray(enc *gojay.Encoder) { addJSONSeq[E](enc, a) }

// IsNil implements [gojay.MarshalerJSONArray].
func (a Array[E]) IsNil() bool { return a == nil }

// MarshalJSON implements [json.Marshaler].
func (a Array[E]) MarshalJSON() ([]byte, error) { return gojay.MarshalJSONArray(a) }

// MarshalJSONArray implements [gojay.MarshalerJSONArray].
func (s Seq[E]) MarshalJSONArray(enc *gojay.Encoder) { addJSONSeq[E](enc, s) }

// IsNil implements [gojay.MarshalerJSONArray].
func (s Seq[E]) IsNil() bool { return s == nil }

// MarshalJSON implements [json.Marshaler].
func (s Seq[E]) MarshalJSON() ([]byte, error) { return gojay.MarshalJSONArray(s) }

// MarshalJSONArray implements [gojay.MarshalerJSONArray].
func (m Map[K, V]) MarshalJSONArray(enc *gojay.Encoder) { addJSONSeq[Pair[K, V]](enc, m) }

// IsNil implements [gojay.MarshalerJSONArray].
func (m Map[K, V]) IsNil() bool { return m == nil }

// MarshalJSON implements [json.Marshaler].
func (m Map[K, V]) MarshalJSON() ([]byte, error) { return gojay.MarshalJSONArray(m) }

// MarshalJSONArray implements [gojay.MarshalerJSONArray].
func (p Pair[A, B]) MarshalJSONArray(enc *gojay.Encoder) { addJSONValues(enc, p.Values()) }

// IsNil implements [gojay.MarshalerJSONArray].
func (p Pair[A, B]) IsNil() bool { return false }

// MarshalJSON implements [json.Marshaler].
func (p Pair[A, B]) MarshalJSON() ([]byte, error) { return gojay.MarshalJSONArray(p) }

func encodeJSON(w io.Writer, v any) error {
	if arr, ok := v.(gojay.MarshalerJSONArray); ok {
		if err := gojay.NewEncoder(w).EncodeArray(arr); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	}
	return json.NewEncoder(w).Encode(v)
}

func writeJSON[T any](w io.Writer, items []T) error {
	if len(items) == 1 {
		return encodeJSON(w, items[0])
	}
	return encodeJSON(w, Slice[T](items))
}
