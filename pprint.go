package pprint

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
)

// Separator is written between consecutive elements of every shape.
const Separator = ", "

// Printer is implemented by values that know how to write their own
// bracketed form. Every shape in this package implements it, and elements
// implementing it are printed through it instead of [fmt].
type Printer interface {
	PrettyPrint(w io.Writer)
}

// Fprint writes the bracketed form of v to w and returns the first write
// error, if any.
func Fprint(w io.Writer, v any) error {
	s := To(w)
	writeElem(s, v)
	return s.Err()
}

// Fprintln is like [Fprint] followed by a newline.
func Fprintln(w io.Writer, v any) error {
	s := To(w)
	writeElem(s, v)
	_, _ = s.WriteString("\n")
	return s.Err()
}

// Print writes the bracketed form of v to os.Stdout.
func Print(v any) error {
	return Fprint(os.Stdout, v)
}

// Sprint returns the bracketed form of v.
func Sprint(v any) string {
	var sb strings.Builder
	_ = Fprint(&sb, v)
	return sb.String()
}

// writeElem is the element dispatch shared by every printer. Printers write
// themselves. Values that classify as containers or arrays are written in
// brackets, character arrays as text, and everything else through fmt.
func writeElem(w io.Writer, v any) {
	if p, ok := v.(Printer); ok {
		p.PrettyPrint(w)
		return
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() == reflect.Pointer && rv.IsNil()) {
		_, _ = fmt.Fprint(w, v)
		return
	}
	switch kindOf(rv.Type()) {
	case KindContainer, KindArray:
		writeSeq(w, valuesOf(rv))
	default:
		t := rv.Type()
		if t.Kind() == reflect.Array && isCharacterType(t.Elem()) && !t.Implements(stringerType) {
			writeTextValue(w, rv)
			return
		}
		_, _ = fmt.Fprint(w, v)
	}
}

// formatShape adapts a Printer to fmt.Formatter. Verbs and flags are
// ignored; the bracketed form has no options.
func formatShape(f fmt.State, p Printer) {
	p.PrettyPrint(f)
}
