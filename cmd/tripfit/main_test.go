package main

import (
	"bytes"
	"strings"
	"testing"

	"tripfit/internal/modules/pricing"
	"tripfit/internal/modules/suggest"
)

func TestPrintResult_NothingFits(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, suggest.Result{Message: suggest.NothingFitsMessage})
	if strings.TrimSpace(buf.String()) != suggest.NothingFitsMessage {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestPrintResult_Suggestion(t *testing.T) {
	b := pricing.NewBreakdown(240, 0, 400, 300, 0)
	res := suggest.Result{Suggestions: []suggest.Suggestion{{
		City:      "Vancouver",
		Breakdown: b,
		Airlines:  []suggest.AirlineQuote{{Airline: "WestJet", EstCost: 120, Cheapest: true}},
		WhatIf:    suggest.WhatIf(b),
		Plan:      suggest.BuildPlan([]pricing.Activity{{Name: "Stanley Park"}}, 2),
	}}}

	var buf bytes.Buffer
	printResult(&buf, res)
	out := buf.String()
	for _, want := range []string{"== Vancouver  $940.00 CAD ==", "WestJet $120.00 CAD one way (cheapest)", "+200", "day 2", "Stanley Park"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestEnvOrDefaultFloat(t *testing.T) {
	t.Setenv("TRIPFIT_TEST_FLOAT", "12.5")
	if got := envOrDefaultFloat("TRIPFIT_TEST_FLOAT", 1); got != 12.5 {
		t.Errorf("got %v", got)
	}
	t.Setenv("TRIPFIT_TEST_FLOAT", "abc")
	if got := envOrDefaultFloat("TRIPFIT_TEST_FLOAT", 1); got != 1 {
		t.Errorf("got %v", got)
	}
}
