// README: Optional catalog enrichment from map lookups (round-trip distance, attractions).
package catalog

import (
	"context"

	"tripfit/internal/logger"
	"tripfit/internal/modules/pricing"
)

// attractionsPerCity bounds how many looked-up attractions a record receives.
const attractionsPerCity = 6

type DistanceLookup interface {
	RoundTripKm(ctx context.Context, origin, destination string) (float64, error)
}

type AttractionLookup interface {
	Attractions(ctx context.Context, city string, limit int) ([]string, error)
}

// Enricher fills gaps in catalog records from map lookups. Either lookup may
// be nil. Failed lookups leave the record unchanged.
type Enricher struct {
	distance    DistanceLookup
	attractions AttractionLookup
	log         *logger.Logger
}

func NewEnricher(distance DistanceLookup, attractions AttractionLookup, log *logger.Logger) *Enricher {
	if log == nil {
		log = logger.Discard()
	}
	return &Enricher{distance: distance, attractions: attractions, log: log}
}

// Enrich returns a copy of d with a round-trip distance when it can be driven
// but has none, and with activities when it lists none. The bool is false when
// a lookup failed and the gap is still open.
func (e *Enricher) Enrich(ctx context.Context, d pricing.Destination) (pricing.Destination, bool) {
	complete := true
	if e == nil {
		return d, complete
	}
	if e.distance != nil && d.Drive != nil && d.DistanceKm == 0 && d.From != "" {
		km, err := e.distance.RoundTripKm(ctx, d.From, d.City)
		if err != nil {
			e.log.WithFields(logger.Fields{"city": d.City, "from": d.From}).WithError(err).Warn("distance lookup failed")
			complete = false
		} else {
			d.DistanceKm = km
		}
	}
	if e.attractions != nil && len(d.Activities) == 0 {
		names, err := e.attractions.Attractions(ctx, d.City, attractionsPerCity)
		if err != nil {
			e.log.WithFields(logger.Fields{"city": d.City}).WithError(err).Warn("attraction lookup failed")
			complete = false
		} else if len(names) > 0 {
			acts := make([]pricing.Activity, len(names))
			for i, n := range names {
				acts[i] = pricing.Activity{Name: n}
			}
			d.Activities = acts
		}
	}
	return d, complete
}
