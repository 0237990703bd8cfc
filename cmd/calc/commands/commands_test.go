package commands_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"mvpcalc/cmd/calc/commands"
	"mvpcalc/internal/domain"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("CALC_PRECISION", "-1")
	t.Setenv("CALC_LOG_LEVEL", "warn")

	var out, errOut bytes.Buffer
	root := commands.NewRoot(strings.NewReader(stdin), &out, &errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestOperations(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"add", "6", "3"}, "9\n"},
		{[]string{"sub", "6", "3"}, "3\n"},
		{[]string{"mul", "6", "3"}, "18\n"},
		{[]string{"div", "6", "3"}, "2\n"},
		{[]string{"plus", "1.5", "2"}, "3.5\n"},
		{[]string{"sub", "--", "-3", "4"}, "-7\n"},
		{[]string{"--precision", "3", "div", "1", "3"}, "0.333\n"},
	}
	for _, c := range cases {
		out, _, err := run(t, "", c.args...)
		if err != nil {
			t.Fatalf("%v: %v", c.args, err)
		}
		if out != c.want {
			t.Fatalf("%v: output %q, want %q", c.args, out, c.want)
		}
	}
}

func TestParseErrorIsPrintedNotReturned(t *testing.T) {
	out, _, err := run(t, "", "add", "abc", "5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "error: First argument is not a number\n" {
		t.Fatalf("output %q", out)
	}
}

func TestDivideByZeroFailsCommand(t *testing.T) {
	out, errOut, err := run(t, "", "div", "5", "0")
	if !errors.Is(err, domain.ErrDivideByZero) {
		t.Fatalf("expected ErrDivideByZero, got %v", err)
	}
	if out != "" {
		t.Fatalf("stdout should be empty, got %q", out)
	}
	if !strings.Contains(errOut, "Division by zero is not allowed") {
		t.Fatalf("stderr %q", errOut)
	}
}

func TestWrongArgCount(t *testing.T) {
	if _, _, err := run(t, "", "add", "1"); err == nil {
		t.Fatal("expected error for missing operand")
	}
}

func TestPrecisionFromEnv(t *testing.T) {
	var out, errOut bytes.Buffer
	t.Setenv("CALC_PRECISION", "2")
	t.Setenv("CALC_LOG_LEVEL", "warn")
	root := commands.NewRoot(strings.NewReader(""), &out, &errOut)
	root.SetArgs([]string{"div", "2", "3"})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out.String() != "0.67\n" {
		t.Fatalf("output %q", out.String())
	}
}

func TestBadEnvFailsBeforeRunning(t *testing.T) {
	var out, errOut bytes.Buffer
	t.Setenv("CALC_LOG_LEVEL", "chatty")
	root := commands.NewRoot(strings.NewReader(""), &out, &errOut)
	root.SetArgs([]string{"add", "1", "2"})
	if err := root.Execute(); err == nil {
		t.Fatal("expected config error")
	}
	if out.Len() != 0 {
		t.Fatalf("command ran: %q", out.String())
	}
}

func TestRepl(t *testing.T) {
	out, _, err := run(t, "add 6 3\ndiv 5 0\nmul 2 x\nquit\n", "repl", "--prompt", "")
	if err != nil {
		t.Fatalf("repl: %v", err)
	}
	want := "9\nerror: Division by zero is not allowed\nerror: Second argument is not a number\n"
	if out != want {
		t.Fatalf("output %q, want %q", out, want)
	}
}

func TestVerboseLogsDispatch(t *testing.T) {
	_, errOut, err := run(t, "", "--verbose", "add", "1", "2")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(errOut, "msg=dispatch") || !strings.Contains(errOut, "op=add") {
		t.Fatalf("stderr %q", errOut)
	}
}

func TestOperationHelpShowsSymbol(t *testing.T) {
	want := map[string]string{
		"add": "Print the sum a + b",
		"sub": "Print the difference a - b",
		"mul": "Print the product a * b",
		"div": "Print the quotient a / b",
	}
	root := commands.NewRoot(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	for name, short := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil {
			t.Fatalf("find %s: %v", name, err)
		}
		if cmd.Short != short {
			t.Fatalf("%s: Short = %q, want %q", name, cmd.Short, short)
		}
	}
}
