package view

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"mvpcalc/internal/domain"
)

// Dispatcher runs the presenter handler for op.
type Dispatcher func(op domain.Operation) error

// Session is an interactive View. Each input line sets the operands and
// triggers one handler; results and errors are written to the output.
type Session struct {
	in        *bufio.Reader
	out       io.Writer
	prompt    string
	precision int

	first, second string
}

// NewSession returns a session reading commands from in and writing to out.
// An empty prompt disables prompting.
func NewSession(in io.Reader, out io.Writer, prompt string, precision int) *Session {
	return &Session{
		in:        bufio.NewReader(in),
		out:       out,
		prompt:    prompt,
		precision: precision,
	}
}

func (s *Session) FirstArgumentAsString() string  { return s.first }
func (s *Session) SecondArgumentAsString() string { return s.second }

// PrintResult writes the formatted result on its own line.
func (s *Session) PrintResult(result float64) {
	fmt.Fprintln(s.out, Format(result, s.precision))
}

// DisplayError writes "error: <message>" on its own line.
func (s *Session) DisplayError(message string) {
	fmt.Fprintf(s.out, "error: %s\n", message)
}

// Run reads lines until input ends, a quit command is read or ctx is done.
// Lines have no length limit. Errors returned by dispatch (a near-zero
// divisor) are displayed and the loop continues.
func (s *Session) Run(ctx context.Context, dispatch Dispatcher) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.prompt != "" {
			fmt.Fprint(s.out, s.prompt)
		}
		line, readErr := s.in.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("read input: %w", readErr)
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			if readErr != nil {
				return nil
			}
			continue
		}
		switch strings.ToLower(fields[0]) {
		case "quit", "exit":
			return nil
		}

		if err := s.handle(fields, dispatch); err != nil {
			return err
		}
		if readErr != nil {
			return nil
		}
	}
}

// handle runs one "<op> <a> <b>" line.
func (s *Session) handle(fields []string, dispatch Dispatcher) error {
	op, err := domain.ParseOperation(fields[0])
	if err != nil {
		s.DisplayError(err.Error())
		return nil
	}
	if len(fields) > 3 {
		s.DisplayError(fmt.Sprintf("too many operands: expected 2, got %d", len(fields)-1))
		return nil
	}
	s.first, s.second = field(fields, 1), field(fields, 2)

	if err := dispatch(op); err != nil {
		if !errors.Is(err, domain.ErrDivideByZero) {
			return err
		}
		s.DisplayError(err.Error())
	}
	return nil
}

func field(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}

var _ domain.View = (*Session)(nil)
