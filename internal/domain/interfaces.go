package domain

// Calculator performs the four arithmetic operations on float64 operands.
type Calculator interface {
	Sum(a, b float64) float64
	Subtract(a, b float64) float64
	Multiply(a, b float64) float64
	// Divide fails with ErrDivideByZero when |b| <= 1e-8.
	Divide(a, b float64) (float64, error)
}

// View is the display surface driven by a Presenter.
type View interface {
	// Operand accessors are called fresh on every handler invocation.
	FirstArgumentAsString() string
	SecondArgumentAsString() string

	PrintResult(result float64)
	DisplayError(message string)
}

// Presenter exposes one handler per UI action.
//
// Invalid operands are reported through View.DisplayError and the handler
// returns nil. A near-zero divisor is not reported to the view: OnDivideClicked
// returns ErrDivideByZero and the caller decides what to do.
type Presenter interface {
	OnPlusClicked() error
	OnMinusClicked() error
	OnMultiplyClicked() error
	OnDivideClicked() error
}
