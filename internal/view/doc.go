// Package view provides the terminal implementations of domain.View used by
// the calc CLI.
//
//   - Static   one dispatch, operands fixed at construction
//   - Session  interactive loop reading "<op> <a> <b>" lines
//
// Both write results as plain numbers and errors as "error: <message>".
package view
