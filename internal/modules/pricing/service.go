// README: Cost engine: primary transport, local mobility, lodging, food and paid extras.
package pricing

import (
	"errors"

	"tripfit/internal/types"
)

var (
	ErrMalformedDestination = errors.New("malformed destination")
	ErrInvalidParams        = errors.New("invalid trip parameters")
)

// LocalKmPerDay is the assumed in-city driving distance when the party has a car.
const LocalKmPerDay = 30.0

func fuelCost(km float64, d Drive) float64 {
	return (km / 100.0) * d.CarLPer100Km * d.FuelPricePerL
}

// CheapestFlight returns the lowest one-way fare; the first listed wins ties.
func CheapestFlight(dest Destination) (Flight, bool) {
	if len(dest.Flights) == 0 {
		return Flight{}, false
	}
	cheapest := dest.Flights[0]
	for _, f := range dest.Flights[1:] {
		if f.EstCost < cheapest.EstCost {
			cheapest = f
		}
	}
	return cheapest, true
}

// FlightCost prices the named airline when the destination lists it, otherwise
// the cheapest one. ok is false when the destination has no flights at all.
func FlightCost(dest Destination, travelers int, airline string) (cost float64, ok bool) {
	if airline != "" {
		for _, f := range dest.Flights {
			if f.Airline == airline {
				return f.EstCost * float64(travelers), true
			}
		}
	}
	f, ok := CheapestFlight(dest)
	if !ok {
		return 0, false
	}
	return f.EstCost * float64(travelers), true
}

func BusCost(dest Destination, travelers int) (float64, bool) {
	if dest.Bus == nil {
		return 0, false
	}
	return dest.Bus.EstCost * float64(travelers), true
}

// DriveBreakdown returns round-trip fuel and the rental fee for one car per group.
// Own car takes precedence over rental. Both parts are rounded to cents.
func DriveBreakdown(dest Destination, days int, ownCar, rental bool) (fuel, rent float64) {
	d := dest.Drive.effective()
	fuel = fuelCost(dest.DistanceKm, d)
	if rental && !ownCar {
		rent = d.RentalPerDay * float64(days)
	}
	return types.Round2(fuel), types.Round2(rent)
}

func DriveCost(dest Destination, days int, ownCar, rental bool) float64 {
	fuel, rent := DriveBreakdown(dest, days, ownCar, rental)
	return fuel + rent
}

// TransportCost prices intercity travel for the mode. ok is false when the
// destination carries no price for it.
func TransportCost(dest Destination, mode Mode, travelers, days int, ownCar, rental bool, airline string) (float64, bool) {
	switch mode {
	case ModeFlight:
		return FlightCost(dest, travelers, airline)
	case ModeBus:
		return BusCost(dest, travelers)
	case ModeDrive:
		return DriveCost(dest, days, ownCar, rental), true
	}
	return 0, true
}

// LocalDriveBreakdown estimates in-city fuel and rental for the local option.
// It does not know the trip mode.
func LocalDriveBreakdown(dest Destination, days int, option LocalOption) (fuel, rent float64) {
	if !option.UsesCar() {
		return 0, 0
	}
	d := dest.Drive.effective()
	fuel = fuelCost(LocalKmPerDay*float64(days), d)
	if option == LocalRentCar {
		rent = d.RentalPerDay * float64(days)
	}
	return types.Round2(fuel), types.Round2(rent)
}

func LocalMobilityCost(dest Destination, days int, option LocalOption) float64 {
	fuel, rent := LocalDriveBreakdown(dest, days, option)
	return fuel + rent
}

// Compute prices one destination under p.
//
// A destination without a price for the chosen mode contributes 0 transport;
// callers that need to tell "free" from "unknown" use TransportCost directly.
func Compute(dest Destination, p Params) (Breakdown, error) {
	if err := dest.Validate(); err != nil {
		return Breakdown{}, err
	}
	if err := p.Validate(); err != nil {
		return Breakdown{}, err
	}

	primary, ok := TransportCost(dest, p.Mode, p.Travelers, p.Days, p.OwnCar, p.Rental, p.Airline)
	if !ok {
		// TODO: surface missing fares to the caller instead of pricing them at 0.
		primary = 0
	}

	// Arriving by car already covers getting around the city.
	local := 0.0
	if p.Mode != ModeDrive {
		local = LocalMobilityCost(dest, p.Days, p.Local)
	}

	stay := dest.Stay.PerNight * float64(p.Nights) * float64(p.Travelers)
	food := dest.Food.PerDay * float64(p.Days) * float64(p.Travelers)
	return NewBreakdown(primary, local, stay, food, p.PaidActivities), nil
}
