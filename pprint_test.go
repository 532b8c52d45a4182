package pprint_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"
	"testing"

	"github.com/bjaus/pprint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Test types ---

// lookalike has the container method and a String method, so it is
// string-like even though it is not a string.
type lookalike struct{ text string }

func (l lookalike) All() iter.Seq[int] {
	return func(yield func(int) bool) { yield(1) }
}

func (l lookalike) String() string { return l.text }

// ring is a user container with no String method.
type ring struct{ vals []int }

func (r ring) All() iter.Seq[int] { return slices.Values(r.vals) }

// tracer records the order in which it is printed.
type tracer struct {
	name string
	log  *[]string
}

func (t tracer) PrettyPrint(w io.Writer) {
	*t.log = append(*t.log, t.name)
	_, _ = io.WriteString(w, t.name)
}

type celsius float64

func (c celsius) String() string { return fmt.Sprintf("%.1f°C", float64(c)) }

// --- Helpers ---

var errWriteFailed = errors.New("write failed")

type errWriter struct{}

func (e *errWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

// failAfterN fails on the (n+1)th call to Write.
type failAfterN struct {
	n     int
	calls int
}

func (f *failAfterN) Write(p []byte) (int, error) {
	if f.calls >= f.n {
		return 0, errWriteFailed
	}
	f.calls++
	return len(p), nil
}

// ============================================================
// Tests
// ============================================================

func TestSprint(t *testing.T) {
	t.Parallel()
	arr := [4]int{4, 5, 6, 7}
	tests := map[string]struct {
		value any
		want  string
	}{
		"empty slice":        {value: pprint.Of[int](), want: "[]"},
		"nil slice":          {value: pprint.Slice[string](nil), want: "[]"},
		"single element":     {value: pprint.Of(42), want: "[42]"},
		"ints":               {value: pprint.Of(1, 2, 3), want: "[1, 2, 3]"},
		"strings":            {value: pprint.Of("a", "b"), want: "[a, b]"},
		"array":              {value: pprint.ArrayOf(arr[:]), want: "[4, 5, 6, 7]"},
		"slice of":           {value: pprint.SliceOf([]float64{0.5, 1}), want: "[0.5, 1]"},
		"pair":               {value: pprint.MakePair(1, "a"), want: "(1, a)"},
		"tuple":              {value: pprint.MakeTuple3(1, 2.5, "x"), want: "(1, 2.5, x)"},
		"empty tuple":        {value: pprint.MakeTuple0(), want: "()"},
		"one tuple":          {value: pprint.MakeTuple1("only"), want: "(only)"},
		"eight tuple":        {value: pprint.MakeTuple8(1, 2, 3, 4, 5, 6, 7, 8), want: "(1, 2, 3, 4, 5, 6, 7, 8)"},
		"slice of pairs":     {value: pprint.Of(pprint.MakePair(1, 2), pprint.MakePair(3, 4)), want: "[(1, 2), (3, 4)]"},
		"slice of slices":    {value: pprint.Of(pprint.Of(1, 2), pprint.Of[int]()), want: "[[1, 2], []]"},
		"pair of containers": {value: pprint.MakePair(pprint.Of("x"), pprint.MakeTuple0()), want: "([x], ())"},
		"tuple of tuples":    {value: pprint.MakeTuple2(pprint.MakeTuple1(1), pprint.MakeTuple2("a", "b")), want: "((1), (a, b))"},
		"map sorted":         {value: pprint.MapOf(map[string]int{"b": 2, "a": 1, "c": 3}), want: "[(a, 1), (b, 2), (c, 3)]"},
		"empty map":          {value: pprint.Map[int, int]{}, want: "[]"},
		"seq":                {value: pprint.SeqOf(slices.Values([]int{7, 8})), want: "[7, 8]"},
		"nil seq":            {value: pprint.Seq[int](nil), want: "[]"},
		"stringer elements":  {value: pprint.Of(celsius(21.5)), want: "[21.5°C]"},
		"error elements":     {value: pprint.Of(errWriteFailed), want: "[write failed]"},
		"string-like elem":   {value: pprint.Of(lookalike{text: "custom"}), want: "[custom]"},
		"native slices":      {value: pprint.Of([]int{1, 2}, []int{3}), want: "[[1, 2], [3]]"},
		"pair of native":     {value: pprint.MakePair(1, []int{1, 2}), want: "(1, [1, 2])"},
		"user container":     {value: pprint.Of(ring{vals: []int{1, 2}}), want: "[[1, 2]]"},
		"native map":         {value: pprint.Of(map[string]int{"b": 2, "a": 1}), want: "[[(a, 1), (b, 2)]]"},
		"native array":       {value: pprint.MakeTuple2([2]int{1, 2}, [0]string{}), want: "([1, 2], [])"},
		"nested arrays":      {value: [2][2]int{{1, 2}, {3, 4}}, want: "[[1, 2], [3, 4]]"},
		"char array elem":    {value: pprint.Of([4]byte{'h', 'i'}), want: "[hi]"},
		"nil native slice":   {value: pprint.Of([]int(nil)), want: "[[]]"},
		"any elements":       {value: pprint.Of[any](1, []string{"x"}, nil), want: "[1, [x], <nil>]"},
		"top-level slice":    {value: []float64{0.5, 1}, want: "[0.5, 1]"},
		"plain value":        {value: 7, want: "7"},
		"plain string":       {value: "text", want: "text"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pprint.Sprint(tt.value))
		})
	}
}

func TestSprintCharacterArrays(t *testing.T) {
	t.Parallel()
	var buf [8]byte
	copy(buf[:], "hi")
	assert.Equal(t, "hi", pprint.Sprint(pprint.ArrayOf(buf[:])))

	runes := [5]rune{'h', 'é', 'l', 'l', 'o'}
	assert.Equal(t, "héllo", pprint.Sprint(pprint.ArrayOf(runes[:])))

	// Character slices are containers, not text.
	assert.Equal(t, "[104, 105]", pprint.Sprint(pprint.Of[byte]('h', 'i')))
}

func TestSprintNumericCharacterArrays(t *testing.T) {
	t.Parallel()
	// int32 is rune and uint8 is byte, so these arrays are read as text.
	assert.Equal(t, "\x01\x02\x03", pprint.Sprint(pprint.ArrayOf([]int32{1, 2, 3})))
	assert.Empty(t, pprint.Sprint(pprint.ArrayOf([]int32{0, 7})))
	// A Slice keeps the numbers.
	assert.Equal(t, "[0, 7]", pprint.Sprint(pprint.Of[int32](0, 7)))
}

func TestSprintFollowsClassify(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		kind  pprint.Kind
		value any
		want  string
	}{
		"array": {
			kind: pprint.Classify[[3]int, int](), value: [3]int{1, 2, 3}, want: "[1, 2, 3]",
		},
		"native container": {
			kind: pprint.Classify[[]string, string](), value: []string{"a", "b"}, want: "[a, b]",
		},
		"user container": {
			kind: pprint.Classify[ring, int](), value: ring{vals: []int{4}}, want: "[4]",
		},
		"string-like": {
			kind: pprint.Classify[lookalike, int](), value: lookalike{text: "txt"}, want: "txt",
		},
		"character": {
			kind: pprint.Classify[rune, any](), value: 'a', want: "97",
		},
	}
	bracketed := map[pprint.Kind]bool{pprint.KindContainer: true, pprint.KindArray: true}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := pprint.Sprint(tt.value)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, bracketed[tt.kind], strings.HasPrefix(got, "["), tt.kind)
		})
	}
}

func TestSprintDeterministic(t *testing.T) {
	t.Parallel()
	v := pprint.Of(
		pprint.MakeTuple3(1, "a", pprint.MapOf(map[int]string{3: "c", 1: "a", 2: "b"})),
		pprint.MakeTuple3(2, "b", pprint.MapOf(map[int]string{9: "z", 8: "y"})),
	)
	first := pprint.Sprint(v)
	assert.Equal(t, first, pprint.Sprint(v))
	assert.Equal(t, "[(1, a, [(1, a), (2, b), (3, c)]), (2, b, [(8, y), (9, z)])]", first)
}

func TestTupleOrder(t *testing.T) {
	t.Parallel()
	var log []string
	tup := pprint.MakeTuple4(
		tracer{name: "a", log: &log},
		tracer{name: "b", log: &log},
		tracer{name: "c", log: &log},
		tracer{name: "d", log: &log},
	)
	assert.Equal(t, "(a, b, c, d)", pprint.Sprint(tup))
	assert.Equal(t, []string{"a", "b", "c", "d"}, log)
}

func TestFmtInterop(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "xs=[1, 2]", fmt.Sprintf("xs=%v", pprint.Of(1, 2)))
	assert.Equal(t, "p=(1, 2)", fmt.Sprintf("p=%s", pprint.MakePair(1, 2)))
	assert.Equal(t, "()", fmt.Sprint(pprint.MakeTuple0()))
	// Flags and verbs do not change the bracketed form.
	assert.Equal(t, "[1, 2]", fmt.Sprintf("%+10d", pprint.Of(1, 2)))
}

func TestFprint(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, pprint.Fprint(&buf, pprint.Of(1, 2)))
	require.NoError(t, pprint.Fprintln(&buf, pprint.MakePair("k", "v")))
	assert.Equal(t, "[1, 2](k, v)\n", buf.String())
}

func TestFprintNoNewline(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, pprint.Fprint(&buf, pprint.Of(1)))
	assert.NotContains(t, buf.String(), "\n")
}

func TestFprintWriteError(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value any
	}{
		"container": {value: pprint.Of(1, 2, 3)},
		"pair":      {value: pprint.MakePair(1, 2)},
		"tuple":     {value: pprint.MakeTuple3(1, 2, 3)},
		"empty":     {value: pprint.MakeTuple0()},
		"plain":     {value: 5},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := pprint.Fprint(&errWriter{}, tt.value)
			assert.ErrorIs(t, err, errWriteFailed)
		})
	}
}

func TestStreamChaining(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	s := pprint.To(&buf).
		Print(pprint.Of(1, 2)).
		Print(" -> ").
		Print(pprint.MakePair("a", pprint.Of[int]()))
	require.NoError(t, s.Err())
	assert.Equal(t, "[1, 2] -> (a, [])", buf.String())
	assert.Equal(t, int64(buf.Len()), s.Written())
}

func TestStreamToReusesStream(t *testing.T) {
	t.Parallel()
	s := pprint.To(io.Discard)
	assert.Same(t, s, pprint.To(s))
}

func TestStreamStickyError(t *testing.T) {
	t.Parallel()
	w := &failAfterN{n: 2}
	s := pprint.To(w).Print(pprint.Of(1, 2, 3))
	require.ErrorIs(t, s.Err(), errWriteFailed)
	// The third write failed; nothing after it reached the writer.
	assert.Equal(t, 2, w.calls)
	s.Print("more")
	assert.Equal(t, 2, w.calls)
	_, err := s.Write([]byte("x"))
	assert.ErrorIs(t, err, errWriteFailed)
}

func TestWriteContainer(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		write func(io.Writer) error
		want  string
	}{
		"user container": {
			write: func(w io.Writer) error { return pprint.WriteContainer[int](w, ring{vals: []int{3, 1, 2}}) },
			want:  "[3, 1, 2]",
		},
		"empty user container": {
			write: func(w io.Writer) error { return pprint.WriteContainer[int](w, ring{}) },
			want:  "[]",
		},
		"string-like is not bracketed": {
			write: func(w io.Writer) error { return pprint.WriteContainer[int](w, lookalike{text: "plain"}) },
			want:  "plain",
		},
		"package container": {
			write: func(w io.Writer) error { return pprint.WriteContainer[string](w, pprint.Of("a", "b")) },
			want:  "[a, b]",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			require.NoError(t, tt.write(&buf))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteContainerError(t *testing.T) {
	t.Parallel()
	err := pprint.WriteContainer[int](&errWriter{}, ring{vals: []int{1}})
	assert.ErrorIs(t, err, errWriteFailed)
}

func TestSeqVisitsEveryElement(t *testing.T) {
	t.Parallel()
	calls := 0
	seq := pprint.SeqOf(func(yield func(int) bool) {
		for i := range 3 {
			calls++
			if !yield(i) {
				return
			}
		}
	})
	assert.Equal(t, "[0, 1, 2]", pprint.Sprint(seq))
	assert.Equal(t, 3, calls)
}

func TestLenAndValues(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 3, pprint.Of(1, 2, 3).Len())
	assert.Equal(t, 2, pprint.ArrayOf([]int{1, 2}).Len())
	assert.Equal(t, 1, pprint.MapOf(map[string]bool{"x": true}).Len())

	var tuples []pprint.Tuple
	tuples = append(tuples, pprint.MakePair(1, "a"), pprint.MakeTuple0(), pprint.MakeTuple3(1, 2, 3))
	assert.Equal(t, 2, tuples[0].Len())
	assert.Equal(t, []any{1, "a"}, tuples[0].Values())
	assert.Equal(t, 0, tuples[1].Len())
	assert.Empty(t, tuples[1].Values())
	assert.Equal(t, []any{1, 2, 3}, tuples[2].Values())
}

func TestRows(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"1", "(2, 3)"}, pprint.MakePair(1, pprint.MakePair(2, 3)).Row())
	assert.Equal(t, []string{"a", "[1, 2]", "x"}, pprint.MakeTuple3("a", pprint.Of(1, 2), "x").Row())
	assert.Equal(t, []string{"1", "2"}, pprint.Of(1, 2).Row())
	assert.Equal(t, []string{}, pprint.Of[int]().Row())
	assert.Equal(t, []string{}, pprint.MakeTuple0().Row())
}
