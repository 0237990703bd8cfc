package domain_test

import (
	"errors"
	"testing"

	"mvpcalc/internal/domain"
	"mvpcalc/internal/messages"
)

func TestParseOperation(t *testing.T) {
	cases := map[string]domain.Operation{
		"add": domain.Add, "+": domain.Add, " Plus ": domain.Add,
		"sub": domain.Subtract, "subtract": domain.Subtract, "-": domain.Subtract,
		"mul": domain.Multiply, "*": domain.Multiply, "x": domain.Multiply,
		"div": domain.Divide, "divide": domain.Divide, "/": domain.Divide,
	}
	for in, want := range cases {
		got, err := domain.ParseOperation(in)
		if err != nil {
			t.Fatalf("ParseOperation(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseOperation(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseOperation_Unknown(t *testing.T) {
	_, err := domain.ParseOperation("pow")
	if !errors.Is(err, domain.ErrUnknownOperation) {
		t.Fatalf("expected ErrUnknownOperation, got %v", err)
	}
	if err.Error() != `unknown operation "pow"` {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestOperation_StringRoundTrip(t *testing.T) {
	for _, op := range domain.Operations {
		got, err := domain.ParseOperation(op.String())
		if err != nil || got != op {
			t.Fatalf("name %q: got %v, %v", op.String(), got, err)
		}
		got, err = domain.ParseOperation(op.Symbol())
		if err != nil || got != op {
			t.Fatalf("symbol %q: got %v, %v", op.Symbol(), got, err)
		}
	}
}

func TestErrDivideByZero_UsesMessageTable(t *testing.T) {
	if domain.ErrDivideByZero.Error() != messages.Text(messages.DivideByZero) {
		t.Fatalf("ErrDivideByZero = %q", domain.ErrDivideByZero.Error())
	}
}
