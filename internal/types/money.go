// README: Dollar amount helpers shared by the cost engine and the presentation layer.
package types

import "math"

// Currency is the single currency every amount is expressed in.
const Currency = "CAD"

// Round2 rounds v to cents, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// NonNegative clamps v at zero.
func NonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
