package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArity(t *testing.T) {
	t.Parallel()
	a := newArity(3)
	assert.Equal(t, "[T0, T1, T2 any]", a.Params)
	assert.Equal(t, "[T0, T1, T2]", a.Args)
	assert.Equal(t, field{Name: "V2", Type: "T2", Param: "v2"}, a.Fields[2])

	zero := newArity(0)
	assert.Empty(t, zero.Params)
	assert.Empty(t, zero.Args)
	assert.Empty(t, zero.Fields)
}

func TestRun(t *testing.T) {
	t.Parallel()
	out := filepath.Join(t.TempDir(), "tuple_gen.go")
	require.NoError(t, run(2, out))

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	src := string(b)

	assert.True(t, strings.HasPrefix(src, "// Code generated by tuplegen. DO NOT EDIT."))
	assert.Contains(t, src, "func MakeTuple0() Tuple0 {")
	assert.Contains(t, src, "func MakeTuple2[T0, T1 any](v0 T0, v1 T1) Tuple2[T0, T1] {")
	assert.Contains(t, src, "return Tuple2[T0, T1]{V0: v0, V1: v1}")
	assert.Contains(t, src, "\twriteElem(w, t.V0)\n\t_, _ = io.WriteString(w, Separator)\n\twriteElem(w, t.V1)\n")
	assert.NotContains(t, src, "Tuple3")
}

func TestRunMatchesCheckedInFile(t *testing.T) {
	t.Parallel()
	out := filepath.Join(t.TempDir(), "tuple_gen.go")
	require.NoError(t, run(8, out))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	want, err := os.ReadFile(filepath.Join("..", "..", "tuple_gen.go"))
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got), "tuple_gen.go is stale; run go generate")
}

func TestRunRejectsNegativeArity(t *testing.T) {
	t.Parallel()
	err := run(-1, filepath.Join(t.TempDir(), "x.go"))
	assert.Error(t, err)
}
