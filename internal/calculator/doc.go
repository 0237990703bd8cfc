// Package calculator implements domain.Calculator with plain IEEE-754
// float64 arithmetic.
//
// Only division is validated: a divisor whose magnitude is at most
// DivisorEpsilon is rejected with domain.ErrDivideByZero. Overflow to
// infinity and NaN results are passed through unchecked.
package calculator
