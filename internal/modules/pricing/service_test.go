// README: Cost engine tests (transport branches, local mobility, composition).
package pricing

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func driveDest(rentalPerDay float64) Destination {
	return Destination{
		City:       "Banff",
		From:       "Calgary",
		DistanceKm: 600,
		Drive:      &Drive{CarLPer100Km: 8, FuelPricePerL: 1.6, RentalPerDay: rentalPerDay},
		Stay:       &Stay{PerNight: 100},
		Food:       &Food{PerDay: 50},
	}
}

func flightDest() Destination {
	return Destination{
		City: "Vancouver",
		From: "Saskatoon",
		Flights: []Flight{
			{Airline: "A", EstCost: 150},
			{Airline: "B", EstCost: 120},
		},
		Stay:       &Stay{PerNight: 100},
		Food:       &Food{PerDay: 50},
		Activities: []Activity{{Name: "Stanley Park"}},
	}
}

func TestFlightCost(t *testing.T) {
	tests := []struct {
		name    string
		flights []Flight
		airline string
		want    float64
		wantOK  bool
	}{
		{
			name:    "cheapest when no airline given",
			flights: []Flight{{"A", 150}, {"B", 120}},
			want:    240,
			wantOK:  true,
		},
		{
			name:    "named airline",
			flights: []Flight{{"A", 150}, {"B", 120}},
			airline: "A",
			want:    300,
			wantOK:  true,
		},
		{
			name:    "unknown airline falls back to cheapest",
			flights: []Flight{{"A", 150}, {"B", 120}},
			airline: "Z",
			want:    240,
			wantOK:  true,
		},
		{
			name:    "no flights",
			flights: nil,
			want:    0,
			wantOK:  false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FlightCost(Destination{Flights: tt.flights}, 2, tt.airline)
			if ok != tt.wantOK || !almostEqual(got, tt.want) {
				t.Errorf("FlightCost() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCheapestFlight_TieKeepsFirst(t *testing.T) {
	f, ok := CheapestFlight(Destination{Flights: []Flight{{"First", 99}, {"Second", 99}, {"Third", 120}}})
	if !ok || f.Airline != "First" {
		t.Errorf("CheapestFlight() = %+v, %v, want First", f, ok)
	}
}

func TestBusCost(t *testing.T) {
	if _, ok := BusCost(Destination{}, 3); ok {
		t.Error("expected no bus price")
	}
	got, ok := BusCost(Destination{Bus: &Bus{EstCost: 45}}, 3)
	if !ok || !almostEqual(got, 135) {
		t.Errorf("BusCost() = (%v, %v), want (135, true)", got, ok)
	}
}

func TestDriveBreakdown(t *testing.T) {
	tests := []struct {
		name      string
		ownCar    bool
		rental    bool
		wantFuel  float64
		wantRent  float64
		wantTotal float64
	}{
		{name: "own car", ownCar: true, wantFuel: 76.80, wantRent: 0, wantTotal: 76.80},
		{name: "rental", rental: true, wantFuel: 76.80, wantRent: 120, wantTotal: 196.80},
		{name: "own car beats rental", ownCar: true, rental: true, wantFuel: 76.80, wantRent: 0, wantTotal: 76.80},
		{name: "neither", wantFuel: 76.80, wantRent: 0, wantTotal: 76.80},
	}
	dest := driveDest(40)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fuel, rent := DriveBreakdown(dest, 3, tt.ownCar, tt.rental)
			if fuel != tt.wantFuel || rent != tt.wantRent {
				t.Errorf("DriveBreakdown() = (%v, %v), want (%v, %v)", fuel, rent, tt.wantFuel, tt.wantRent)
			}
			if got := DriveCost(dest, 3, tt.ownCar, tt.rental); !almostEqual(got, tt.wantTotal) {
				t.Errorf("DriveCost() = %v, want %v", got, tt.wantTotal)
			}
		})
	}
}

func TestDriveBreakdown_Defaults(t *testing.T) {
	// No drive section: 8 L/100km at 1.6/L, no rental fee.
	dest := Destination{DistanceKm: 1000}
	fuel, rent := DriveBreakdown(dest, 2, false, true)
	if fuel != 128 || rent != 0 {
		t.Errorf("DriveBreakdown() = (%v, %v), want (128, 0)", fuel, rent)
	}

	dest.Drive = &Drive{RentalPerDay: 30}
	fuel, rent = DriveBreakdown(dest, 2, false, true)
	if fuel != 128 || rent != 60 {
		t.Errorf("DriveBreakdown() with zero consumption = (%v, %v), want (128, 60)", fuel, rent)
	}

	// An explicit zero consumption is treated as missing, not as a free car.
	dest = Destination{DistanceKm: 100, Drive: &Drive{CarLPer100Km: 0, FuelPricePerL: 2}}
	if fuel, _ := DriveBreakdown(dest, 1, true, false); fuel != 16 {
		t.Errorf("DriveBreakdown() with explicit zero consumption = %v, want 16", fuel)
	}
}

func TestTransportCost(t *testing.T) {
	dest := driveDest(40)
	if got, ok := TransportCost(dest, ModeFlight, 2, 3, false, false, ""); ok || got != 0 {
		t.Errorf("flight without fares = (%v, %v), want (0, false)", got, ok)
	}
	if _, ok := TransportCost(dest, ModeBus, 2, 3, false, false, ""); ok {
		t.Error("bus without fare should be unavailable")
	}
	if got, ok := TransportCost(dest, ModeDrive, 2, 3, true, false, ""); !ok || !almostEqual(got, 76.8) {
		t.Errorf("drive = (%v, %v), want (76.8, true)", got, ok)
	}
	if got, ok := TransportCost(dest, Mode("Teleport"), 2, 3, false, false, ""); !ok || got != 0 {
		t.Errorf("unknown mode = (%v, %v), want (0, true)", got, ok)
	}
}

func TestLocalDriveBreakdown(t *testing.T) {
	dest := driveDest(40)
	tests := []struct {
		option   LocalOption
		wantFuel float64
		wantRent float64
	}{
		{LocalNone, 0, 0},
		{LocalPublicTransit, 0, 0},
		// 30 km/day * 3 days = 90 km -> 0.9 * 8 * 1.6
		{LocalOwnCar, 11.52, 0},
		{LocalRentCar, 11.52, 120},
	}
	for _, tt := range tests {
		t.Run(string(tt.option), func(t *testing.T) {
			fuel, rent := LocalDriveBreakdown(dest, 3, tt.option)
			if fuel != tt.wantFuel || rent != tt.wantRent {
				t.Errorf("LocalDriveBreakdown() = (%v, %v), want (%v, %v)", fuel, rent, tt.wantFuel, tt.wantRent)
			}
		})
	}
	if got := LocalMobilityCost(dest, 3, LocalRentCar); !almostEqual(got, 131.52) {
		t.Errorf("LocalMobilityCost() = %v, want 131.52", got)
	}
}

func TestCompute_Flight(t *testing.T) {
	b, err := Compute(flightDest(), Params{
		Days: 3, Nights: 2, Travelers: 2,
		Mode:  ModeFlight,
		Local: LocalPublicTransit,
	})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	want := NewBreakdown(240, 0, 400, 300, 0)
	if b != want {
		t.Errorf("Compute() = %+v, want %+v", b, want)
	}
	if b.Total() != 940 {
		t.Errorf("Total() = %v, want 940", b.Total())
	}
}

func TestCompute_DriveNeverChargesLocal(t *testing.T) {
	for _, opt := range []LocalOption{LocalNone, LocalPublicTransit, LocalRentCar, LocalOwnCar} {
		b, err := Compute(driveDest(40), Params{
			Days: 3, Nights: 2, Travelers: 1,
			Mode:   ModeDrive,
			Rental: true,
			Local:  opt,
		})
		if err != nil {
			t.Fatalf("Compute(%s) error = %v", opt, err)
		}
		if b.Local() != 0 {
			t.Errorf("local with %s = %v, want 0", opt, b.Local())
		}
		if b.Transport() != 196.8 {
			t.Errorf("transport with %s = %v, want 196.8", opt, b.Transport())
		}
	}
}

func TestCompute_LocalRentalForFlight(t *testing.T) {
	dest := flightDest()
	dest.Drive = &Drive{CarLPer100Km: 8, FuelPricePerL: 1.6, RentalPerDay: 40}
	b, err := Compute(dest, Params{Days: 3, Nights: 2, Travelers: 1, Mode: ModeFlight, Local: LocalRentCar})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if b.Local() != 131.52 {
		t.Errorf("Local() = %v, want 131.52", b.Local())
	}
}

func TestCompute_MissingFareCollapsesToZero(t *testing.T) {
	b, err := Compute(driveDest(0), Params{Days: 2, Nights: 1, Travelers: 1, Mode: ModeBus, Local: LocalNone})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if b.Transport() != 0 {
		t.Errorf("Transport() = %v, want 0", b.Transport())
	}
}

func TestCompute_PaidClampedAtZero(t *testing.T) {
	b, err := Compute(flightDest(), Params{Days: 1, Nights: 0, Travelers: 1, Mode: ModeFlight, PaidActivities: -25})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if b.Paid() != 0 {
		t.Errorf("Paid() = %v, want 0", b.Paid())
	}
	if b.Stay() != 0 {
		t.Errorf("Stay() with zero nights = %v, want 0", b.Stay())
	}
}

func TestCompute_TotalIsSumOfComponents(t *testing.T) {
	dest := flightDest()
	dest.Drive = &Drive{CarLPer100Km: 7.3, FuelPricePerL: 1.73, RentalPerDay: 41.99}
	dest.Stay.PerNight = 87.35
	dest.Food.PerDay = 33.33
	for days := 1; days <= 14; days++ {
		for travelers := 1; travelers <= 6; travelers++ {
			b, err := Compute(dest, Params{
				Days: days, Nights: days - 1, Travelers: travelers,
				Mode: ModeFlight, Local: LocalRentCar, PaidActivities: 12.345,
			})
			if err != nil {
				t.Fatalf("Compute() error = %v", err)
			}
			sum := b.Transport() + b.Local() + b.Stay() + b.Food() + b.Paid()
			if math.Round(sum*100)/100 != b.Total() {
				t.Fatalf("days=%d travelers=%d: total %v != sum %v", days, travelers, b.Total(), sum)
			}
		}
	}
}

func TestCompute_Deterministic(t *testing.T) {
	p := Params{Days: 4, Nights: 3, Travelers: 3, Mode: ModeFlight, Airline: "A", Local: LocalOwnCar, PaidActivities: 60}
	first, err := Compute(flightDest(), p)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	second, _ := Compute(flightDest(), p)
	if first != second {
		t.Errorf("Compute() not deterministic: %+v vs %+v", first, second)
	}
}

func TestCompute_Errors(t *testing.T) {
	noStay := flightDest()
	noStay.Stay = nil
	noFood := flightDest()
	noFood.Food = nil
	negative := flightDest()
	negative.Flights = []Flight{{"A", -1}}

	tests := []struct {
		name string
		dest Destination
		p    Params
		want error
	}{
		{"missing stay", noStay, Params{Days: 1, Travelers: 1}, ErrMalformedDestination},
		{"missing food", noFood, Params{Days: 1, Travelers: 1}, ErrMalformedDestination},
		{"negative fare", negative, Params{Days: 1, Travelers: 1}, ErrMalformedDestination},
		{"zero days", flightDest(), Params{Days: 0, Travelers: 1}, ErrInvalidParams},
		{"zero travelers", flightDest(), Params{Days: 1, Travelers: 0}, ErrInvalidParams},
		{"negative nights", flightDest(), Params{Days: 1, Nights: -1, Travelers: 1}, ErrInvalidParams},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Compute(tt.dest, tt.p); !errors.Is(err, tt.want) {
				t.Errorf("Compute() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseModeAndLocalOption(t *testing.T) {
	if m, err := ParseMode("Drive"); err != nil || m != ModeDrive {
		t.Errorf("ParseMode(Drive) = %v, %v", m, err)
	}
	if _, err := ParseMode("Boat"); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("ParseMode(Boat) error = %v", err)
	}
	if o, err := ParseLocalOption("Public transit"); err != nil || o != LocalPublicTransit {
		t.Errorf("ParseLocalOption(Public transit) = %v, %v", o, err)
	}
	if _, err := ParseLocalOption("Bike"); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("ParseLocalOption(Bike) error = %v", err)
	}
}
