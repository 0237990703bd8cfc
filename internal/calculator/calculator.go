package calculator

import (
	"math"

	"mvpcalc/internal/domain"
)

// DivisorEpsilon is the largest divisor magnitude Divide rejects (inclusive).
const DivisorEpsilon = 1e-8

// Service is a stateless calculator.
type Service struct{}

// New returns a calculator.
func New() *Service { return &Service{} }

// Sum returns a + b.
func (s *Service) Sum(a, b float64) float64 { return a + b }

// Subtract returns a - b.
func (s *Service) Subtract(a, b float64) float64 { return a - b }

// Multiply returns a * b.
func (s *Service) Multiply(a, b float64) float64 { return a * b }

// Divide returns a / b, or domain.ErrDivideByZero when |b| <= DivisorEpsilon.
func (s *Service) Divide(a, b float64) (float64, error) {
	if math.Abs(b) <= DivisorEpsilon {
		return 0, domain.ErrDivideByZero
	}
	return a / b, nil
}

// Compile-time assertion that Service implements domain.Calculator.
var _ domain.Calculator = (*Service)(nil)
