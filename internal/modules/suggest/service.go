// README: Suggestion service: prices every destination from the departure city and keeps the affordable ones.
package suggest

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"tripfit/internal/logger"
	"tripfit/internal/modules/pricing"
)

var ErrInvalidRequest = errors.New("invalid suggestion request")

type Catalog interface {
	ListFrom(ctx context.Context, from string) ([]pricing.Destination, error)
}

type Service struct {
	catalog Catalog
	log     *logger.Logger
	workers int
}

func NewService(catalog Catalog, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Discard()
	}
	return &Service{catalog: catalog, log: log, workers: runtime.GOMAXPROCS(0)}
}

// Params validates req, fills its defaults and derives the engine parameters.
// Arriving by car fixes the local option to the party's own car.
func Params(req Request) (Request, pricing.Params, error) {
	switch {
	case req.Budget < 0:
		return req, pricing.Params{}, fmt.Errorf("%w: budget must not be negative", ErrInvalidRequest)
	case req.Days < 1 || req.Days > MaxDays:
		return req, pricing.Params{}, fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidRequest, MaxDays)
	case req.Travelers < 1 || req.Travelers > MaxTravelers:
		return req, pricing.Params{}, fmt.Errorf("%w: travelers must be between 1 and %d", ErrInvalidRequest, MaxTravelers)
	case req.From == "":
		return req, pricing.Params{}, fmt.Errorf("%w: departure city is required", ErrInvalidRequest)
	}

	mode, err := pricing.ParseMode(string(req.Mode))
	if err != nil {
		return req, pricing.Params{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	req.Mode = mode

	if req.Mode == pricing.ModeDrive {
		req.Local = pricing.LocalOwnCar
	} else {
		if req.Local == "" {
			req.Local = pricing.LocalPublicTransit
		}
		if req.Local, err = pricing.ParseLocalOption(string(req.Local)); err != nil {
			return req, pricing.Params{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
	}

	switch req.DriveOption {
	case "":
		req.DriveOption = DriveOwnCar
	case DriveOwnCar, DriveRentCar:
	default:
		return req, pricing.Params{}, fmt.Errorf("%w: unknown drive option %q", ErrInvalidRequest, req.DriveOption)
	}

	p := pricing.Params{
		Days:           req.Days,
		Nights:         max(0, req.Days-1),
		Travelers:      req.Travelers,
		Mode:           req.Mode,
		Airline:        req.Airline,
		Local:          req.Local,
		PaidActivities: req.PaidActivities,
	}
	if req.Mode == pricing.ModeDrive {
		p.OwnCar = req.DriveOption == DriveOwnCar
		p.Rental = req.DriveOption == DriveRentCar
	}
	return req, p, nil
}

// Suggest returns the destinations that fit the budget, cheapest first. Ties
// keep catalog order.
func (s *Service) Suggest(ctx context.Context, req Request) (Result, error) {
	req, params, err := Params(req)
	if err != nil {
		return Result{}, err
	}

	dests, err := s.catalog.ListFrom(ctx, req.From)
	if err != nil {
		return Result{}, fmt.Errorf("list destinations from %s: %w", req.From, err)
	}

	fits := make([]*Suggestion, len(dests))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, d := range dests {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b, err := pricing.Compute(d, params)
			if err != nil {
				return fmt.Errorf("%s: %w", d.City, err)
			}
			if b.Total() > req.Budget {
				return nil
			}
			sug := describe(d, b, req, params)
			fits[i] = &sug
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	res := Result{Suggestions: make([]Suggestion, 0, len(dests))}
	for _, sug := range fits {
		if sug != nil {
			res.Suggestions = append(res.Suggestions, *sug)
		}
	}
	sort.SliceStable(res.Suggestions, func(i, j int) bool {
		return res.Suggestions[i].Breakdown.Total() < res.Suggestions[j].Breakdown.Total()
	})
	if len(res.Suggestions) == 0 {
		res.Message = NothingFitsMessage
	}

	s.log.WithFields(logger.Fields{
		"from":       req.From,
		"mode":       req.Mode,
		"candidates": len(dests),
		"fits":       len(res.Suggestions),
	}).Debug("suggestions computed")
	return res, nil
}

func describe(d pricing.Destination, b pricing.Breakdown, req Request, p pricing.Params) Suggestion {
	sug := Suggestion{
		City:      d.City,
		Breakdown: b,
		WhatIf:    WhatIf(b),
		Plan:      BuildPlan(d.Activities, req.Days),
	}

	if p.Mode == pricing.ModeFlight {
		if cheapest, ok := pricing.CheapestFlight(d); ok {
			for _, f := range d.Flights {
				sug.Airlines = append(sug.Airlines, AirlineQuote{
					Airline:  f.Airline,
					EstCost:  f.EstCost,
					Cheapest: f.Airline == cheapest.Airline,
				})
			}
		}
	}

	if p.Mode == pricing.ModeDrive && d.Drive != nil {
		fuel, rent := pricing.DriveBreakdown(d, p.Days, p.OwnCar, p.Rental)
		sug.Drive = &DriveDetail{DistanceKm: d.DistanceKm, Fuel: fuel, Rental: rent, OwnCar: p.OwnCar}
	}

	if p.Mode != pricing.ModeDrive && p.Local.UsesCar() {
		fuel, rent := pricing.LocalDriveBreakdown(d, p.Days, p.Local)
		sug.LocalDrive = &LocalDriveDetail{KmPerDay: pricing.LocalKmPerDay, Fuel: fuel, Rental: rent}
	}
	return sug
}
