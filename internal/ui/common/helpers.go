// Package common provides shared utilities for the UI.
package common

import "fmt"

// Percent formats a probability as a percentage with two decimals.
func Percent(p float64) string {
	return fmt.Sprintf("%.2f%%", p*100)
}
