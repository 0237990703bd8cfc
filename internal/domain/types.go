package domain

import (
	"fmt"
	"strings"
)

// Operation selects which arithmetic operation a dispatch runs.
type Operation int

const (
	Add Operation = iota + 1
	Subtract
	Multiply
	Divide
)

// Operations lists every operation in display order.
var Operations = []Operation{Add, Subtract, Multiply, Divide}

// String returns the canonical name of the operation.
func (o Operation) String() string {
	switch o {
	case Add:
		return "add"
	case Subtract:
		return "sub"
	case Multiply:
		return "mul"
	case Divide:
		return "div"
	}
	return fmt.Sprintf("Operation(%d)", int(o))
}

// Symbol returns the button label for the operation.
func (o Operation) Symbol() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	}
	return "?"
}

// ParseOperation accepts a name (add, sub, subtract, ...) or a symbol (+ - * x /).
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "plus", "sum", "+":
		return Add, nil
	case "sub", "subtract", "minus", "-":
		return Subtract, nil
	case "mul", "multiply", "times", "*", "x":
		return Multiply, nil
	case "div", "divide", "/":
		return Divide, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownOperation, s)
}
