// Package messages holds the fixed table of user-facing error messages.
//
// The table is registered into an x/text message catalog for English and
// looked up through a message.Printer. There is exactly one locale.
package messages
