// README: Suggestion request/response shapes (what-if rows, day plan, transport details).
package suggest

import (
	"tripfit/internal/modules/pricing"
)

type DriveOption string

const (
	DriveOwnCar  DriveOption = "Own car"
	DriveRentCar DriveOption = "Rent a car"
)

const (
	MaxDays      = 14
	MaxTravelers = 6
)

// WhatIfDeltas are the budget shifts shown for every suggestion.
var WhatIfDeltas = []float64{-200, -100, -20, -10, 10, 20, 100, 200}

const NothingFitsMessage = "No trips fit this budget. Try increasing budget, changing transport, or reducing days."

type Request struct {
	Budget         float64             `json:"budget"`
	Days           int                 `json:"days"`
	Travelers      int                 `json:"travelers"`
	From           string              `json:"from"`
	Mode           pricing.Mode        `json:"mode"`
	Local          pricing.LocalOption `json:"local_option,omitempty"`
	DriveOption    DriveOption         `json:"drive_option,omitempty"`
	Airline        string              `json:"airline,omitempty"`
	PaidActivities float64             `json:"paid_activities,omitempty"`
}

type AirlineQuote struct {
	Airline  string  `json:"airline"`
	EstCost  float64 `json:"est_cost"`
	Cheapest bool    `json:"cheapest"`
}

type DriveDetail struct {
	DistanceKm float64 `json:"distance_km"`
	Fuel       float64 `json:"fuel"`
	Rental     float64 `json:"rental"`
	OwnCar     bool    `json:"own_car"`
}

type LocalDriveDetail struct {
	KmPerDay float64 `json:"km_per_day"`
	Fuel     float64 `json:"fuel"`
	Rental   float64 `json:"rental"`
}

type WhatIfRow struct {
	Delta float64 `json:"delta"`
	Total float64 `json:"total"`
	Stay  float64 `json:"stay"`
	Paid  float64 `json:"paid"`
}

type DayPlan struct {
	Day       int    `json:"day"`
	Morning   string `json:"morning"`
	Activity1 string `json:"activity_1"`
	Lunch     string `json:"lunch"`
	Activity2 string `json:"activity_2"`
	Dinner    string `json:"dinner"`
}

type Suggestion struct {
	City       string            `json:"city"`
	Breakdown  pricing.Breakdown `json:"breakdown"`
	Airlines   []AirlineQuote    `json:"airlines,omitempty"`
	Drive      *DriveDetail      `json:"drive,omitempty"`
	LocalDrive *LocalDriveDetail `json:"local_drive,omitempty"`
	WhatIf     []WhatIfRow       `json:"what_if"`
	Plan       []DayPlan         `json:"plan"`
}

type Result struct {
	Suggestions []Suggestion `json:"suggestions"`
	Message     string       `json:"message,omitempty"`
}
