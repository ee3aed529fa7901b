package brd

import (
	"bytes"
	"fmt"
	"io"
)

const (
	HeaderLine1 = "Clock   Desired   IBRD  FBRD    Real"
	HeaderLine2 = " MHz   baud rate              baud rate"

	rowFormat = "% 4d  % 8d  % 4d  % 3d  % 10.2f\n"
)

// Table is an ordered set of rows, one per requested baud rate.
type Table struct {
	Rows []Row
}

// Generate computes a row for every baud rate in order. It stops at the
// first rate that cannot be computed.
func Generate(clock Clock, rates []BaudRate) (Table, error) {
	t := Table{Rows: make([]Row, 0, len(rates))}
	for _, b := range rates {
		row, err := Compute(clock, b)
		if err != nil {
			return Table{}, fmt.Errorf("generating table: %w", err)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// WriteTo renders the header and rows to w.
func (t Table) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString(HeaderLine1 + "\n")
	buf.WriteString(HeaderLine2 + "\n")
	for _, r := range t.Rows {
		fmt.Fprintf(&buf, rowFormat, r.Clock.MHz(), r.Desired.Int(), r.IBRD, r.FBRD, r.Achieved)
	}
	return buf.WriteTo(w)
}

// String returns the rendered table.
func (t Table) String() string {
	var buf bytes.Buffer
	_, _ = t.WriteTo(&buf)
	return buf.String()
}
