package pprint

//go:generate go run ./internal/tuplegen -n 8 -o tuple_gen.go

// Tuple is the common surface of [Pair] and the TupleN types. Printing is
// unrolled per arity; there is no loop over the elements.
type Tuple interface {
	Printer
	Len() int
	Values() []any
}

func rowOfValues(vs []any) []string {
	row := make([]string, len(vs))
	for i, v := range vs {
		row[i] = Sprint(v)
	}
	return row
}
