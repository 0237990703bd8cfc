// Package domain defines the contracts shared by the calculator, the presenter
// and the views, plus the few plain types that flow between them.
// It contains types and interfaces only.
package domain
