// Package viewtest provides a recording domain.View for tests.
package viewtest

import "mvpcalc/internal/domain"

// Recorder is a View whose operands are set directly and whose sinks record
// the last value they received.
type Recorder struct {
	First  string
	Second string

	Result float64
	Error  string

	Results     int // number of PrintResult calls
	Errors      int // number of DisplayError calls
	FirstReads  int
	SecondReads int
}

// New returns a Recorder preloaded with the two operand strings.
func New(first, second string) *Recorder {
	return &Recorder{First: first, Second: second}
}

func (r *Recorder) FirstArgumentAsString() string {
	r.FirstReads++
	return r.First
}

func (r *Recorder) SecondArgumentAsString() string {
	r.SecondReads++
	return r.Second
}

func (r *Recorder) PrintResult(result float64) {
	r.Results++
	r.Result = result
}

func (r *Recorder) DisplayError(message string) {
	r.Errors++
	r.Error = message
}

// Calls returns the total number of sink calls.
func (r *Recorder) Calls() int { return r.Results + r.Errors }

var _ domain.View = (*Recorder)(nil)
