// Package presenter implements domain.Presenter.
//
// Each handler reads both operand strings from the view, parses them, runs one
// calculator operation and sends the outcome back to the view. Operand errors
// are shown through View.DisplayError. The divide-by-zero error from the
// calculator is returned to the caller untouched and the view is not called.
package presenter
