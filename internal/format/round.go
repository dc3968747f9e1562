// Package format holds the pure display-transform utilities: step rounding,
// duration breakdown and phrasing, relative dates, input/display date
// strings, and price formatting. Every function is total: nil or malformed
// input maps to a documented output, never a panic.
package format

import "math"

// RoundDecimal rounds v to the nearest multiple of step. A nil input yields
// a nil output; a non-positive step returns v unchanged.
//
//	RoundDecimal(&7.3, 0.5)  → 7.5
//	RoundDecimal(&7.24, 0.5) → 7.0
func RoundDecimal(v *float64, step float64) *float64 {
	if v == nil {
		return nil
	}
	if step <= 0 {
		return v
	}
	r := math.Round(*v/step) * step
	return &r
}
