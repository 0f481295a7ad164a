// Package cli provides the command-line interface for the calculator.
package cli

import "fmt"

// FormatPrice formats a price with two decimal places.
func FormatPrice(price float64) string {
	return fmt.Sprintf("%.2f", price)
}

// FormatRatio formats a profit ratio as a signed percentage with two
// decimal places.
func FormatRatio(ratio float64) string {
	return fmt.Sprintf("%.2f%%", ratio*100)
}
