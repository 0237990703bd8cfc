// Package app wires the calculator and presenters for the CLI.
//
// Config is read from the environment; App owns the calculator and builds a
// presenter for whichever view the command needs.
package app
