package messages

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Key identifies one entry of the error-message table.
type Key string

const (
	DivideByZero             Key = "divide_by_zero"
	FirstArgumentNotANumber  Key = "first_argument_is_not_a_number"
	SecondArgumentNotANumber Key = "second_argument_is_not_a_number"
)

// locale is the only language the table is registered for.
var locale = language.English

var table = []struct {
	key  Key
	text string
}{
	{DivideByZero, "Division by zero is not allowed"},
	{FirstArgumentNotANumber, "First argument is not a number"},
	{SecondArgumentNotANumber, "Second argument is not a number"},
}

var printer = mustPrinter()

func mustPrinter() *message.Printer {
	b := catalog.NewBuilder(catalog.Fallback(locale))
	for _, e := range table {
		if err := b.SetString(locale, string(e.key), e.text); err != nil {
			panic("messages: register " + string(e.key) + ": " + err.Error())
		}
	}
	return message.NewPrinter(locale, message.Catalog(b))
}

// Text returns the message registered for key. Unknown keys are returned as is.
func Text(key Key) string {
	return printer.Sprintf(string(key))
}
