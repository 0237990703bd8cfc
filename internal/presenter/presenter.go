package presenter

import (
	"mvpcalc/internal/domain"
	"mvpcalc/internal/messages"
)

// binaryOp is one calculator operation bound into a handler.
type binaryOp func(a, b float64) (float64, error)

// Presenter connects a calculator to a view.
type Presenter struct {
	calc domain.Calculator
	view domain.View
}

// New returns a presenter driving view with calc.
func New(calc domain.Calculator, view domain.View) *Presenter {
	return &Presenter{calc: calc, view: view}
}

// OnPlusClicked shows the sum of the two operands.
func (p *Presenter) OnPlusClicked() error { return p.run(infallible(p.calc.Sum)) }

// OnMinusClicked shows the difference of the two operands.
func (p *Presenter) OnMinusClicked() error { return p.run(infallible(p.calc.Subtract)) }

// OnMultiplyClicked shows the product of the two operands.
func (p *Presenter) OnMultiplyClicked() error { return p.run(infallible(p.calc.Multiply)) }

// OnDivideClicked shows the quotient of the two operands. A near-zero divisor
// is returned as domain.ErrDivideByZero.
func (p *Presenter) OnDivideClicked() error { return p.run(p.calc.Divide) }

func (p *Presenter) run(op binaryOp) error {
	a, b, ok := p.arguments()
	if !ok {
		return nil
	}
	result, err := op(a, b)
	if err != nil {
		return err
	}
	p.view.PrintResult(result)
	return nil
}

// arguments reads and parses both operands. The first operand is checked
// before the second; on failure the matching error is displayed.
func (p *Presenter) arguments() (a, b float64, ok bool) {
	first := p.view.FirstArgumentAsString()
	second := p.view.SecondArgumentAsString()

	a, errA := parseOperand(first)
	b, errB := parseOperand(second)

	if errA != nil {
		p.view.DisplayError(messages.Text(messages.FirstArgumentNotANumber))
		return 0, 0, false
	}
	if errB != nil {
		p.view.DisplayError(messages.Text(messages.SecondArgumentNotANumber))
		return 0, 0, false
	}
	return a, b, true
}

func infallible(f func(a, b float64) float64) binaryOp {
	return func(a, b float64) (float64, error) { return f(a, b), nil }
}

// Compile-time assertion that Presenter implements domain.Presenter.
var _ domain.Presenter = (*Presenter)(nil)
