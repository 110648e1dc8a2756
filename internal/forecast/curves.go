// Package forecast produces the month-by-month revenue, expense and profit
// series for each scenario from fixed closed-form growth curves.
package forecast

import (
	"math"

	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/model"
)

// RevenueCurve returns the untruncated revenue for 1-based month m.
type RevenueCurve interface {
	At(m int) float64
}

// Linear is base + m*slope.
type Linear struct {
	Base  float64
	Slope float64
}

func (c Linear) At(m int) float64 { return c.Base + float64(m)*c.Slope }

// Accelerating is base + m*slope + m^exponent*accel.
type Accelerating struct {
	Base     float64
	Slope    float64
	Accel    float64
	Exponent float64
}

func (c Accelerating) At(m int) float64 {
	return c.Base + float64(m)*c.Slope + math.Pow(float64(m), c.Exponent)*c.Accel
}

// Geometric is seed * rate^m.
type Geometric struct {
	Seed float64
	Rate float64
}

func (c Geometric) At(m int) float64 { return c.Seed * math.Pow(c.Rate, float64(m)) }

// ExpenseLine is fixed + m*slope in whole currency units.
type ExpenseLine struct {
	Fixed int64
	Slope int64
}

// At returns the expenses for 1-based month m.
func (e ExpenseLine) At(m int) int64 { return e.Fixed + int64(m)*e.Slope }

// Curve pairs a revenue curve with its expense line.
type Curve struct {
	Revenue  RevenueCurve
	Expenses ExpenseLine
}

// Figures evaluates month m. Revenue is truncated before profit is derived.
func (c Curve) Figures(m int) model.Figures {
	rev := int64(math.Trunc(c.Revenue.At(m)))
	return model.NewFigures(rev, c.Expenses.At(m))
}

// Curves holds one curve per scenario.
type Curves map[model.Scenario]Curve

// DefaultCurves are the growth curves the business plans against.
func DefaultCurves() Curves {
	return Curves{
		model.Conservative: {
			Revenue:  Linear{Base: 1000, Slope: 500},
			Expenses: ExpenseLine{Fixed: 150, Slope: 10},
		},
		model.Realistic: {
			Revenue:  Accelerating{Base: 2000, Slope: 1500, Accel: 100, Exponent: 1.5},
			Expenses: ExpenseLine{Fixed: 500, Slope: 100},
		},
		model.Optimistic: {
			Revenue:  Geometric{Seed: 5000, Rate: 1.15},
			Expenses: ExpenseLine{Fixed: 1000, Slope: 300},
		},
	}
}
