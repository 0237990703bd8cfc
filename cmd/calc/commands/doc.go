// Package commands defines the calc CLI and wires dependencies for subcommands.
//
// Commands
//
//   - add <a> <b>   Print a + b
//   - sub <a> <b>   Print a - b
//   - mul <a> <b>   Print a * b
//   - div <a> <b>   Print a / b
//   - repl          Read "<op> <a> <b>" lines from stdin
//
// # Implementation
//
// The root command loads configuration from the environment and builds the
// app before any subcommand runs. Each subcommand wraps its operands in a
// view and dispatches through a presenter. A near-zero divisor is returned
// from the one-shot commands as an error, so the process exits non-zero; the
// repl reports it and keeps reading.
package commands
