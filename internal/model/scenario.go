// Package model defines the domain types shared by the projection generator,
// the forecast engine and every report renderer.
package model

import (
	"fmt"
	"strings"
)

// Scenario is one of the three fixed multiplier profiles.
type Scenario string

const (
	Conservative Scenario = "conservative"
	Realistic    Scenario = "realistic"
	Optimistic   Scenario = "optimistic"
)

// Scenarios lists every scenario in report order.
var Scenarios = []Scenario{Conservative, Realistic, Optimistic}

// Title returns the capitalized scenario name, e.g. "Realistic".
func (s Scenario) Title() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// Valid reports whether s is one of the known scenarios.
func (s Scenario) Valid() bool {
	switch s {
	case Conservative, Realistic, Optimistic:
		return true
	}
	return false
}

// Year is a projection horizon in years from today.
type Year int

const (
	Year1 Year = 1
	Year3 Year = 3
)

// Years lists the projection horizons in report order.
var Years = []Year{Year1, Year3}

// Period identifies one (year, scenario) cell of the projection grid.
type Period struct {
	Year     Year
	Scenario Scenario
}

// Key returns the snapshot key for the period, e.g. "year_1_realistic".
func (p Period) Key() string {
	return fmt.Sprintf("year_%d_%s", p.Year, p.Scenario)
}

// Title returns a display label, e.g. "Year 1 Realistic".
func (p Period) Title() string {
	return fmt.Sprintf("Year %d %s", p.Year, p.Scenario.Title())
}

// Periods returns every (year, scenario) pair in report order.
func Periods() []Period {
	out := make([]Period, 0, len(Years)*len(Scenarios))
	for _, y := range Years {
		for _, s := range Scenarios {
			out = append(out, Period{Year: y, Scenario: s})
		}
	}
	return out
}
