package view

import "strconv"

// Format renders a result with strconv's 'g' verb. A negative precision
// means the shortest representation that round-trips.
func Format(v float64, precision int) string {
	return strconv.FormatFloat(v, 'g', precision, 64)
}
