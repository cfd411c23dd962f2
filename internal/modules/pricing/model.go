// README: Destination records, trip parameters and the immutable cost breakdown.
package pricing

import (
	"encoding/json"
	"fmt"

	"tripfit/internal/types"
)

type Mode string

const (
	ModeFlight Mode = "Flight"
	ModeBus    Mode = "Bus"
	ModeDrive  Mode = "Drive"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeFlight, ModeBus, ModeDrive:
		return m, nil
	}
	return "", fmt.Errorf("%w: unknown mode %q", ErrInvalidParams, s)
}

// LocalOption is how the party moves around inside the destination city.
type LocalOption string

const (
	LocalNone          LocalOption = "None"
	LocalPublicTransit LocalOption = "Public transit"
	LocalRentCar       LocalOption = "Rent a car"
	LocalOwnCar        LocalOption = "Use own car"
)

func ParseLocalOption(s string) (LocalOption, error) {
	switch o := LocalOption(s); o {
	case LocalNone, LocalPublicTransit, LocalRentCar, LocalOwnCar:
		return o, nil
	}
	return "", fmt.Errorf("%w: unknown local option %q", ErrInvalidParams, s)
}

// UsesCar reports whether the option puts the party behind the wheel.
func (o LocalOption) UsesCar() bool {
	return o == LocalRentCar || o == LocalOwnCar
}

const (
	DefaultCarLPer100Km  = 8.0
	DefaultFuelPricePerL = 1.6
)

type Flight struct {
	Airline string  `json:"airline"`
	EstCost float64 `json:"estCost"` // one way, per traveler
}

type Bus struct {
	EstCost float64 `json:"estCost"` // one way, per traveler
}

type Drive struct {
	CarLPer100Km  float64 `json:"carLper100km"`
	FuelPricePerL float64 `json:"fuelPricePerL"`
	RentalPerDay  float64 `json:"rentalPerDay"`
}

// UnmarshalJSON fills absent consumption and fuel price with their defaults.
func (d *Drive) UnmarshalJSON(b []byte) error {
	type plain Drive
	v := plain{CarLPer100Km: DefaultCarLPer100Km, FuelPricePerL: DefaultFuelPricePerL}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*d = Drive(v)
	return nil
}

// effective returns the drive settings with non-positive inputs replaced by defaults.
// A nil receiver yields the default car.
func (d *Drive) effective() Drive {
	out := Drive{CarLPer100Km: DefaultCarLPer100Km, FuelPricePerL: DefaultFuelPricePerL}
	if d == nil {
		return out
	}
	if d.CarLPer100Km > 0 {
		out.CarLPer100Km = d.CarLPer100Km
	}
	if d.FuelPricePerL > 0 {
		out.FuelPricePerL = d.FuelPricePerL
	}
	out.RentalPerDay = types.NonNegative(d.RentalPerDay)
	return out
}

type Stay struct {
	PerNight float64 `json:"perNight"`
}

func (s *Stay) UnmarshalJSON(b []byte) error {
	var raw struct {
		PerNight *float64 `json:"perNight"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.PerNight == nil {
		return fmt.Errorf("%w: stay.perNight is required", ErrMalformedDestination)
	}
	s.PerNight = *raw.PerNight
	return nil
}

type Food struct {
	PerDay float64 `json:"perDay"`
}

func (f *Food) UnmarshalJSON(b []byte) error {
	var raw struct {
		PerDay *float64 `json:"perDay"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.PerDay == nil {
		return fmt.Errorf("%w: food.perDay is required", ErrMalformedDestination)
	}
	f.PerDay = *raw.PerDay
	return nil
}

type Activity struct {
	Name string `json:"name"`
}

// Destination is a catalog record. The engine only reads it.
type Destination struct {
	City       string     `json:"city"`
	From       string     `json:"from"`
	Flights    []Flight   `json:"flights,omitempty"`
	Bus        *Bus       `json:"bus,omitempty"`
	Drive      *Drive     `json:"drive,omitempty"`
	DistanceKm float64    `json:"distanceKm,omitempty"` // round trip
	Stay       *Stay      `json:"stay"`
	Food       *Food      `json:"food"`
	Activities []Activity `json:"activities,omitempty"`
}

// Validate checks the fields the engine cannot compute without.
func (d Destination) Validate() error {
	if d.Stay == nil {
		return fmt.Errorf("%w: %s: stay is required", ErrMalformedDestination, d.City)
	}
	if d.Food == nil {
		return fmt.Errorf("%w: %s: food is required", ErrMalformedDestination, d.City)
	}
	if d.Stay.PerNight < 0 || d.Food.PerDay < 0 || d.DistanceKm < 0 {
		return fmt.Errorf("%w: %s: negative stay, food or distance", ErrMalformedDestination, d.City)
	}
	for _, f := range d.Flights {
		if f.EstCost < 0 {
			return fmt.Errorf("%w: %s: negative fare for %s", ErrMalformedDestination, d.City, f.Airline)
		}
	}
	if d.Bus != nil && d.Bus.EstCost < 0 {
		return fmt.Errorf("%w: %s: negative bus fare", ErrMalformedDestination, d.City)
	}
	return nil
}

// Params are the trip settings a destination is priced under.
// Nights is supplied by the caller, normally max(0, Days-1).
type Params struct {
	Days           int         `json:"days"`
	Nights         int         `json:"nights"`
	Travelers      int         `json:"travelers"`
	Mode           Mode        `json:"mode"`
	OwnCar         bool        `json:"own_car"`
	Rental         bool        `json:"rental"`
	Airline        string      `json:"airline,omitempty"`
	Local          LocalOption `json:"local_option"`
	PaidActivities float64     `json:"paid_activities"`
}

func (p Params) Validate() error {
	switch {
	case p.Days < 1:
		return fmt.Errorf("%w: days must be at least 1", ErrInvalidParams)
	case p.Nights < 0:
		return fmt.Errorf("%w: nights must not be negative", ErrInvalidParams)
	case p.Travelers < 1:
		return fmt.Errorf("%w: travelers must be at least 1", ErrInvalidParams)
	}
	return nil
}

// Breakdown is an itemized trip cost. It is a value: adjustments return a new
// Breakdown and Total is always derived from the components.
type Breakdown struct {
	transport float64
	local     float64
	stay      float64
	food      float64
	paid      float64
}

// NewBreakdown rounds each component to cents and clamps it at zero.
func NewBreakdown(transport, local, stay, food, paid float64) Breakdown {
	return Breakdown{
		transport: types.Round2(types.NonNegative(transport)),
		local:     types.Round2(types.NonNegative(local)),
		stay:      types.Round2(types.NonNegative(stay)),
		food:      types.Round2(types.NonNegative(food)),
		paid:      types.Round2(types.NonNegative(paid)),
	}
}

func (b Breakdown) Transport() float64 { return b.transport }
func (b Breakdown) Local() float64     { return b.local }
func (b Breakdown) Stay() float64      { return b.stay }
func (b Breakdown) Food() float64      { return b.food }
func (b Breakdown) Paid() float64      { return b.paid }

func (b Breakdown) Total() float64 {
	return types.Round2(b.transport + b.local + b.stay + b.food + b.paid)
}

type breakdownJSON struct {
	Transport float64 `json:"transport"`
	Local     float64 `json:"local"`
	Stay      float64 `json:"stay"`
	Food      float64 `json:"food"`
	Paid      float64 `json:"paid"`
	Total     float64 `json:"total"`
}

func (b Breakdown) MarshalJSON() ([]byte, error) {
	return json.Marshal(breakdownJSON{
		Transport: b.transport,
		Local:     b.local,
		Stay:      b.stay,
		Food:      b.food,
		Paid:      b.paid,
		Total:     b.Total(),
	})
}

// UnmarshalJSON ignores any supplied total; it is recomputed from the components.
func (b *Breakdown) UnmarshalJSON(data []byte) error {
	var v breakdownJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*b = NewBreakdown(v.Transport, v.Local, v.Stay, v.Food, v.Paid)
	return nil
}
