package domain

import (
	"errors"

	"mvpcalc/internal/messages"
)

var (
	// ErrDivideByZero is returned by Calculator.Divide for a near-zero divisor.
	// Its message is the divide_by_zero entry of the message table.
	ErrDivideByZero = errors.New(messages.Text(messages.DivideByZero))

	// ErrUnknownOperation is returned by ParseOperation.
	ErrUnknownOperation = errors.New("unknown operation")
)
