package rodrigues

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	hyperdual "github.com/shabbyrobe/go-hyperdual"
)

const (
	cellWidth     = 14
	cellPrecision = 7
	cellSeparator = " | "
)

// Points returns n evaluation points m·step for m = -n/2, -n/2+1, … so that
// an odd n is centred on zero.
func Points[F hyperdual.Float](n int, step F) []F {
	out := make([]F, 0, n)
	for m, i := -n/2, 0; i < n; m, i = m+1, i+1 {
		out = append(out, F(m)*step)
	}
	return out
}

// Row is one coefficient expression evaluated at every point of a Table.
type Row struct {
	Mode   Mode
	Name   string
	Values []float64
}

// Label is the row heading used by Table: the mode followed by the name.
func (r Row) Label() string { return string(r.Mode) + " " + r.Name }

// Evaluate computes a0…a2, b0…b2 and the first and second derivatives of
// the ai at every point, one Row per expression, sorted by name.
func Evaluate[F hyperdual.Float](c Coeffs[F], points []F) []Row {
	type expr struct {
		name string
		fn   Func
		eval func(fn Func, theta F) F
	}
	var exprs []expr
	for _, fn := range Funcs {
		name := fn.String()
		exprs = append(exprs,
			expr{name, fn, c.A},
			expr{"b" + name[1:], fn, c.B},
			expr{"d" + name, fn, c.DA},
			expr{"d2" + name, fn, c.D2A},
		)
	}

	rows := make([]Row, 0, len(exprs))
	mode := c.Mode()
	for _, e := range exprs {
		values := make([]float64, len(points))
		for j, p := range points {
			values[j] = float64(e.eval(e.fn, p))
		}
		rows = append(rows, Row{Mode: mode, Name: e.name, Values: values})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}

// Table lays out Rows from one or more modes against a common set of points.
type Table struct {
	Points []float64
	Rows   []Row
}

// NewTable converts points to float64 for display.
func NewTable[F hyperdual.Float](points []F, rows ...[]Row) *Table {
	t := &Table{Points: make([]float64, len(points))}
	for i, p := range points {
		t.Points[i] = float64(p)
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, r...)
	}
	return t
}

// Groups returns the rows grouped by mode, modes in name order.
func (t *Table) Groups() [][]Row {
	byMode := make(map[Mode][]Row)
	var modes []Mode
	for _, r := range t.Rows {
		if _, ok := byMode[r.Mode]; !ok {
			modes = append(modes, r.Mode)
		}
		byMode[r.Mode] = append(byMode[r.Mode], r)
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i] < modes[j] })

	out := make([][]Row, 0, len(modes))
	for _, m := range modes {
		out = append(out, byMode[m])
	}
	return out
}

// WriteTo renders the table: a header of points in scientific notation, then
// one block of rows per mode, separated by dashed rules.
func (t *Table) WriteTo(w io.Writer) (n int64, err error) {
	cw := &countWriter{w: w}
	bw := bufio.NewWriter(cw)

	nameWidth := 0
	for _, r := range t.Rows {
		if l := len(r.Label()); l > nameWidth {
			nameWidth = l
		}
	}
	rule := strings.Repeat("-", nameWidth+(cellWidth+len(cellSeparator))*len(t.Points))

	bw.WriteString(strings.Repeat(" ", nameWidth))
	for _, p := range t.Points {
		fmt.Fprintf(bw, "%s%*.*e", cellSeparator, cellWidth, cellPrecision, p)
	}
	bw.WriteString("\n")
	bw.WriteString(rule + "\n")

	for _, group := range t.Groups() {
		for _, r := range group {
			fmt.Fprintf(bw, "%*s", nameWidth, r.Label())
			for _, v := range r.Values {
				fmt.Fprintf(bw, "%s%*.*e", cellSeparator, cellWidth, cellPrecision, v)
			}
			bw.WriteString("\n")
		}
		bw.WriteString(rule + "\n")
	}

	if err := bw.Flush(); err != nil {
		return cw.n, fmt.Errorf("rodrigues: write table: %w", err)
	}
	return cw.n, nil
}

type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
