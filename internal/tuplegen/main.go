// Command tuplegen writes the fixed-arity tuple types of package pprint.
//
// Go has no variadic generics, so each arity gets its own type whose
// PrettyPrint method is unrolled element by element.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"
)

type arity struct {
	N      int
	Params string // "[T0, T1 any]"
	Args   string // "[T0, T1]"
	Fields []field
}

type field struct {
	Name  string // V0
	Type  string // T0
	Param string // v0
}

func newArity(n int) arity {
	a := arity{N: n}
	types := make([]string, n)
	for i := range n {
		types[i] = fmt.Sprintf("T%d", i)
		a.Fields = append(a.Fields, field{
			Name:  fmt.Sprintf("V%d", i),
			Type:  types[i],
			Param: fmt.Sprintf("v%d", i),
		})
	}
	if n > 0 {
		a.Params = "[" + strings.Join(types, ", ") + " any]"
		a.Args = "[" + strings.Join(types, ", ") + "]"
	}
	return a
}

var funcs = template.FuncMap{
	"join": func(fs []field, pattern string) string {
		parts := make([]string, len(fs))
		for i, f := range fs {
			r := strings.NewReplacer("{name}", f.Name, "{type}", f.Type, "{param}", f.Param)
			parts[i] = r.Replace(pattern)
		}
		return strings.Join(parts, ", ")
	},
}

var tmpl = template.Must(template.New("tuples").Funcs(funcs).Parse(`// Code generated by tuplegen. DO NOT EDIT.

package pprint

import (
	"fmt"
	"io"

	"github.com/francoispqt/gojay"
)
{{range .}}
// Tuple{{.N}} is a tuple of {{.N}} values.
type Tuple{{.N}}{{.Params}} struct {
{{- range .Fields}}
	{{.Name}} {{.Type}}
{{- end}}
}

// MakeTuple{{.N}} returns a Tuple{{.N}} of the given values.
func MakeTuple{{.N}}{{.Params}}({{join .Fields "{param} {type}"}}) Tuple{{.N}}{{.Args}} {
	return Tuple{{.N}}{{.Args}}{ {{- join .Fields "{name}: {param}"}}}
}

// Len returns {{.N}}.
func (t Tuple{{.N}}{{.Args}}) Len() int { return {{.N}} }

// Values returns the elements in order.
func (t Tuple{{.N}}{{.Args}}) Values() []any { return []any{ {{- join .Fields "t.{name}"}}} }

// Row returns the pretty-printed elements as table cells.
func (t Tuple{{.N}}{{.Args}}) Row() []string { return rowOfValues(t.Values()) }

// PrettyPrint writes t in parentheses.
func (t Tuple{{.N}}{{.Args}}) PrettyPrint(w io.Writer) {
	_, _ = io.WriteString(w, "(")
{{- range $i, $f := .Fields}}
{{- if $i}}
	_, _ = io.WriteString(w, Separator)
{{- end}}
	writeElem(w, t.{{$f.Name}})
{{- end}}
	_, _ = io.WriteString(w, ")")
}

// Format implements [fmt.Formatter].
func (t Tuple{{.N}}{{.Args}}) Format(f fmt.State, _ rune) { formatShape(f, t) }

// MarshalJSONArray implements [gojay.MarshalerJSONArray].
func (t Tuple{{.N}}{{.Args}}) MarshalJSONArray(enc *gojay.Encoder) { addJSONValues(enc, t.Values()) }

// IsNil implements [gojay.MarshalerJSONArray].
func (t Tuple{{.N}}{{.Args}}) IsNil() bool { return false }

// MarshalJSON implements [json.Marshaler].
func (t Tuple{{.N}}{{.Args}}) MarshalJSON() ([]byte, error) { return gojay.MarshalJSONArray(t) }

// MarshalYAML implements [yaml.Marshaler].
func (t Tuple{{.N}}{{.Args}}) MarshalYAML() (any, error) { return yamlSequence(t.Values()) }
{{end}}`))

func main() {
	n := flag.Int("n", 8, "largest arity to generate")
	out := flag.String("o", "tuple_gen.go", "output file")
	flag.Parse()

	if err := run(*n, *out); err != nil {
		fmt.Fprintln(os.Stderr, "tuplegen:", err)
		os.Exit(1)
	}
}

func run(n int, out string) error {
	if n < 0 {
		return fmt.Errorf("arity must not be negative: %d", n)
	}
	arities := make([]arity, n+1)
	for i := range arities {
		arities[i] = newArity(i)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, arities); err != nil {
		return err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format generated source: %w", err)
	}
	return os.WriteFile(out, src, 0o644)
}
