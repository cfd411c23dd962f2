// README: Command-line trip finder; prices the catalog for one request and prints breakdowns, what-if rows and day plans.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"tripfit/internal/config"
	"tripfit/internal/logger"
	"tripfit/internal/modules/catalog"
	"tripfit/internal/modules/pricing"
	"tripfit/internal/modules/suggest"
	"tripfit/internal/types"
)

type Config struct {
	CatalogPath string
	Timeout     time.Duration
	LogLevel    string
	Request     suggest.Request
}

func main() {
	cfg := loadConfig()

	log, err := logger.New(config.LogConfig{Level: cfg.LogLevel, Format: "text"})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log.SetOutput(os.Stderr)

	src, err := catalog.NewFileSource(cfg.CatalogPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	svc := suggest.NewService(catalog.NewService(src, nil, 0, nil, log), log)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	res, err := svc.Suggest(ctx, cfg.Request)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	printResult(os.Stdout, res)
}

func loadConfig() Config {
	var cfg Config
	var mode, local, drive string
	flag.StringVar(&cfg.CatalogPath, "catalog", envOrDefault("TRIPFIT_CATALOG_PATH", "data/destinations.json"), "Destination catalog JSON")
	flag.DurationVar(&cfg.Timeout, "timeout", envOrDefaultDuration("TRIPFIT_CLI_TIMEOUT", 10*time.Second), "Total timeout")
	flag.StringVar(&cfg.LogLevel, "log-level", envOrDefault("TRIPFIT_LOG_LEVEL", "warn"), "Log level")
	flag.Float64Var(&cfg.Request.Budget, "budget", envOrDefaultFloat("TRIPFIT_BUDGET", 1000), "Budget in CAD")
	flag.IntVar(&cfg.Request.Days, "days", envOrDefaultInt("TRIPFIT_DAYS", 3), "Trip length in days")
	flag.IntVar(&cfg.Request.Travelers, "travelers", envOrDefaultInt("TRIPFIT_TRAVELERS", 1), "Party size")
	flag.StringVar(&cfg.Request.From, "from", envOrDefault("TRIPFIT_FROM", "Saskatoon"), "Departure city")
	flag.StringVar(&mode, "mode", envOrDefault("TRIPFIT_MODE", string(pricing.ModeFlight)), "Flight, Bus or Drive")
	flag.StringVar(&local, "local", envOrDefault("TRIPFIT_LOCAL", string(pricing.LocalPublicTransit)), "Local mobility option")
	flag.StringVar(&drive, "drive", envOrDefault("TRIPFIT_DRIVE", string(suggest.DriveOwnCar)), "Own car or Rent a car (Drive mode)")
	flag.StringVar(&cfg.Request.Airline, "airline", os.Getenv("TRIPFIT_AIRLINE"), "Preferred airline")
	flag.Float64Var(&cfg.Request.PaidActivities, "paid", envOrDefaultFloat("TRIPFIT_PAID", 0), "Paid activities budget")
	flag.Parse()

	cfg.Request.Mode = pricing.Mode(mode)
	cfg.Request.Local = pricing.LocalOption(local)
	cfg.Request.DriveOption = suggest.DriveOption(drive)
	return cfg
}

func printResult(w io.Writer, res suggest.Result) {
	if len(res.Suggestions) == 0 {
		fmt.Fprintln(w, res.Message)
		return
	}
	for i, s := range res.Suggestions {
		if i > 0 {
			fmt.Fprintln(w)
		}
		printSuggestion(w, s)
	}
}

func printSuggestion(w io.Writer, s suggest.Suggestion) {
	b := s.Breakdown
	fmt.Fprintf(w, "== %s  %s ==\n", s.City, money(b.Total()))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "transport\t%s\t\n", money(b.Transport()))
	fmt.Fprintf(tw, "local\t%s\t\n", money(b.Local()))
	fmt.Fprintf(tw, "stay\t%s\t\n", money(b.Stay()))
	fmt.Fprintf(tw, "food\t%s\t\n", money(b.Food()))
	fmt.Fprintf(tw, "paid\t%s\t\n", money(b.Paid()))
	_ = tw.Flush()

	for _, a := range s.Airlines {
		tag := ""
		if a.Cheapest {
			tag = " (cheapest)"
		}
		fmt.Fprintf(w, "  %s %s one way%s\n", a.Airline, money(a.EstCost), tag)
	}
	if d := s.Drive; d != nil {
		fmt.Fprintf(w, "  drive %.0f km round trip: fuel %s, rental %s\n", d.DistanceKm, money(d.Fuel), money(d.Rental))
	}
	if d := s.LocalDrive; d != nil {
		fmt.Fprintf(w, "  local car %.0f km/day: fuel %s, rental %s\n", d.KmPerDay, money(d.Fuel), money(d.Rental))
	}

	fmt.Fprintln(w, "what if:")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "delta\ttotal\tstay\tpaid\t")
	for _, r := range s.WhatIf {
		fmt.Fprintf(tw, "%+.0f\t%s\t%s\t%s\t\n", r.Delta, money(r.Total), money(r.Stay), money(r.Paid))
	}
	_ = tw.Flush()

	fmt.Fprintln(w, "plan:")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, d := range s.Plan {
		fmt.Fprintf(tw, "day %d\t%s\t%s\t%s\t%s\t%s\n", d.Day, d.Morning, d.Activity1, d.Lunch, d.Activity2, d.Dinner)
	}
	_ = tw.Flush()
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f %s", v, types.Currency)
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
