package pprint

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// frame holds the glyphs of a border style. The rows of joins are the top,
// middle and bottom rules; the columns are the left edge, the junction
// between cells and the right edge.
type frame struct {
	rule  string
	edge  string
	joins [3][3]string
}

const (
	ruleTop = iota
	ruleMid
	ruleBottom
)

var frames = map[BorderStyle]frame{
	BorderRounded: {rule: "─", edge: "│", joins: [3][3]string{
		{"╭", "┬", "╮"},
		{"├", "┼", "┤"},
		{"╰", "┴", "╯"},
	}},
	BorderASCII: {rule: "-", edge: "|", joins: [3][3]string{
		{"+", "+", "+"},
		{"+", "+", "+"},
		{"+", "+", "+"},
	}},
}

func writeTable[T any](w io.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}
	first := any(items[0])
	if _, ok := first.(Rower); !ok {
		return fmt.Errorf("%w: format %q requires Rower, not implemented by %T", ErrMissingInterface, Table, items[0])
	}
	g := newGrid(items)
	border := BorderRounded
	if b, ok := first.(Bordered); ok {
		border = b.Border()
	}
	if f, ok := frames[border]; ok {
		return g.boxed(w, f)
	}
	return g.plain(w)
}

// grid is a table of printed cells. It is as wide as the longest of the
// header and the items, so tuples and containers of different lengths
// still line up.
type grid struct {
	header []string
	rows   [][]string
	widths []int
	aligns []Alignment
}

func newGrid[T any](items []T) *grid {
	g := &grid{rows: make([][]string, len(items))}
	first := any(items[0])
	if h, ok := first.(Headed); ok {
		g.header = h.Header()
	}
	cols := len(g.header)
	for i, item := range items {
		g.rows[i] = cellsOf(any(item))
		cols = max(cols, len(g.rows[i]))
	}

	g.widths = make([]int, cols)
	for _, cells := range append([][]string{g.header}, g.rows...) {
		for i, cell := range cells {
			g.widths[i] = max(g.widths[i], runewidth.StringWidth(cell))
		}
	}

	g.aligns = make([]Alignment, cols)
	if a, ok := first.(Aligned); ok {
		copy(g.aligns, a.Alignments())
	}
	return g
}

// cellsOf prints each value of a tuple into its own cell through the element
// dispatch. Other items supply their cells through Row.
func cellsOf(item any) []string {
	if t, ok := item.(Tuple); ok {
		return rowOfValues(t.Values())
	}
	return item.(Rower).Row()
}

// pad returns one aligned cell per column. Short rows are filled with blanks.
func (g *grid) pad(row []string) []string {
	out := make([]string, len(g.widths))
	for i, width := range g.widths {
		var cell string
		if i < len(row) {
			cell = row[i]
		}
		out[i] = alignCell(cell, width, g.aligns[i])
	}
	return out
}

// plain writes space-separated columns with a dashed rule under the header.
func (g *grid) plain(w io.Writer) error {
	s := To(w)
	line := func(row []string) {
		_, _ = s.WriteString(strings.TrimRight(strings.Join(g.pad(row), "  "), " ") + "\n")
	}
	if len(g.header) > 0 {
		line(g.header)
		dashes := make([]string, len(g.widths))
		for i, width := range g.widths {
			dashes[i] = strings.Repeat("-", width)
		}
		_, _ = s.WriteString(strings.Join(dashes, "  ") + "\n")
	}
	for _, row := range g.rows {
		line(row)
	}
	return s.Err()
}

// boxed writes the grid inside f, with a rule between header and rows.
func (g *grid) boxed(w io.Writer, f frame) error {
	s := To(w)
	rule := func(r int) {
		fills := make([]string, len(g.widths))
		for i, width := range g.widths {
			fills[i] = strings.Repeat(f.rule, width+2)
		}
		_, _ = s.WriteString(f.joins[r][0] + strings.Join(fills, f.joins[r][1]) + f.joins[r][2] + "\n")
	}
	line := func(row []string) {
		_, _ = s.WriteString(f.edge + " " + strings.Join(g.pad(row), " "+f.edge+" ") + " " + f.edge + "\n")
	}
	rule(ruleTop)
	if len(g.header) > 0 {
		line(g.header)
		rule(ruleMid)
	}
	for _, row := range g.rows {
		line(row)
	}
	rule(ruleBottom)
	return s.Err()
}

// alignCell pads s to width display columns.
func alignCell(s string, width int, align Alignment) string {
	switch align {
	case AlignRight:
		return runewidth.FillLeft(s, width)
	case AlignCenter:
		if left := (width - runewidth.StringWidth(s)) / 2; left > 0 {
			s = strings.Repeat(" ", left) + s
		}
		return runewidth.FillRight(s, width)
	default:
		return runewidth.FillRight(s, width)
	}
}
