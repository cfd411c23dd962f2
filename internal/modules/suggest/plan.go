// README: Budget what-if rows and the day-by-day activity plan.
package suggest

import "tripfit/internal/modules/pricing"

const (
	fallbackActivity1 = "City walk"
	fallbackActivity2 = "Local park"
)

// BuildPlan walks the activity list two entries per day, wrapping around.
func BuildPlan(activities []pricing.Activity, days int) []DayPlan {
	plan := make([]DayPlan, 0, days)
	next := 0
	for day := 1; day <= days; day++ {
		a1, a2 := fallbackActivity1, fallbackActivity2
		if n := len(activities); n > 0 {
			a1 = activities[next%n].Name
			a2 = activities[(next+1)%n].Name
		}
		plan = append(plan, DayPlan{
			Day:       day,
			Morning:   "Breakfast",
			Activity1: a1,
			Lunch:     "Lunch",
			Activity2: a2,
			Dinner:    "Dinner",
		})
		next += 2
	}
	return plan
}

// WhatIf applies every delta in WhatIfDeltas to b.
func WhatIf(b pricing.Breakdown) []WhatIfRow {
	rows := make([]WhatIfRow, len(WhatIfDeltas))
	for i, d := range WhatIfDeltas {
		adj := pricing.Adjust(b, d)
		rows[i] = WhatIfRow{Delta: d, Total: adj.Total(), Stay: adj.Stay(), Paid: adj.Paid()}
	}
	return rows
}
