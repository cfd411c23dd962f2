// README: Budget sensitivity: shifting a breakdown by a budget delta.
package pricing

import "math"

// PaidBumpCap is the most a budget increase adds to paid activities before
// the remainder goes to lodging.
const PaidBumpCap = 40.0

// Adjust shows how b shifts under a budget delta. Increases go to paid
// activities first (up to PaidBumpCap) and then to stay. Cuts come out of paid
// first and then stay, neither going below zero; a cut larger than both is
// absorbed. Transport, local and food never move.
func Adjust(b Breakdown, delta float64) Breakdown {
	paid, stay := b.paid, b.stay
	if delta > 0 {
		bump := math.Min(PaidBumpCap, delta)
		paid += bump
		stay += delta - bump
	} else {
		cut := -delta
		if paid >= cut {
			paid -= cut
			cut = 0
		} else {
			cut -= paid
			paid = 0
		}
		stay = math.Max(0, stay-cut)
	}
	return NewBreakdown(b.transport, b.local, stay, b.food, paid)
}
