package view

import (
	"fmt"
	"io"

	"mvpcalc/internal/domain"
)

// Static is a View whose operands are fixed when it is created.
type Static struct {
	first, second string
	out           io.Writer
	precision     int

	// Last output, for callers that want to inspect it.
	Result   float64
	Err      string
	Printed  bool
	Reported bool
}

// NewStatic returns a view serving first and second and writing to out.
func NewStatic(first, second string, out io.Writer, precision int) *Static {
	return &Static{first: first, second: second, out: out, precision: precision}
}

func (v *Static) FirstArgumentAsString() string  { return v.first }
func (v *Static) SecondArgumentAsString() string { return v.second }

// PrintResult writes the formatted result on its own line.
func (v *Static) PrintResult(result float64) {
	v.Result, v.Printed = result, true
	fmt.Fprintln(v.out, Format(result, v.precision))
}

// DisplayError writes "error: <message>" on its own line.
func (v *Static) DisplayError(message string) {
	v.Err, v.Reported = message, true
	fmt.Fprintf(v.out, "error: %s\n", message)
}

var _ domain.View = (*Static)(nil)
