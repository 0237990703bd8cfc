package messages_test

import (
	"testing"

	"mvpcalc/internal/messages"
)

func TestText_KnownKeys(t *testing.T) {
	want := map[messages.Key]string{
		messages.DivideByZero:             "Division by zero is not allowed",
		messages.FirstArgumentNotANumber:  "First argument is not a number",
		messages.SecondArgumentNotANumber: "Second argument is not a number",
	}
	for key, text := range want {
		if got := messages.Text(key); got != text {
			t.Fatalf("Text(%q) = %q, want %q", key, got, text)
		}
	}
}

func TestText_UnknownKeyReturnsKey(t *testing.T) {
	if got := messages.Text("no_such_key"); got != "no_such_key" {
		t.Fatalf("Text(unknown) = %q", got)
	}
}

func TestKey_Values(t *testing.T) {
	want := map[messages.Key]string{
		messages.DivideByZero:             "divide_by_zero",
		messages.FirstArgumentNotANumber:  "first_argument_is_not_a_number",
		messages.SecondArgumentNotANumber: "second_argument_is_not_a_number",
	}
	for key, name := range want {
		if string(key) != name {
			t.Fatalf("key %q, want %q", key, name)
		}
	}
}
