package model

import "github.com/shopspring/decimal"

// Figures is revenue, expenses and profit for one scenario in one period.
// Profit is always Revenue - Expenses.
type Figures struct {
	Revenue  int64 `json:"revenue"`
	Expenses int64 `json:"expenses"`
	Profit   int64 `json:"profit"`
}

// NewFigures derives profit from revenue and expenses.
func NewFigures(revenue, expenses int64) Figures {
	return Figures{Revenue: revenue, Expenses: expenses, Profit: revenue - expenses}
}

// Add returns the element-wise sum of f and o.
func (f Figures) Add(o Figures) Figures {
	return Figures{
		Revenue:  f.Revenue + o.Revenue,
		Expenses: f.Expenses + o.Expenses,
		Profit:   f.Profit + o.Profit,
	}
}

// MarginPct returns profit as a percentage of revenue rounded to one decimal,
// or 0 when there is no revenue.
func (f Figures) MarginPct() float64 {
	return MarginPct(f.Profit, f.Revenue)
}

// MarginPct returns profit/revenue*100 rounded half away from zero to one
// decimal place. Zero revenue yields 0.
func MarginPct(profit, revenue int64) float64 {
	if revenue <= 0 {
		return 0
	}
	pct := decimal.NewFromInt(profit).
		Div(decimal.NewFromInt(revenue)).
		Mul(decimal.NewFromInt(100)).
		Round(1)
	f, _ := pct.Float64()
	return f
}

// MonthlyForecastEntry is one month of the forecast. MonthNum starts at 1.
type MonthlyForecastEntry struct {
	Month        string  `json:"month"`
	MonthNum     int     `json:"month_num"`
	Conservative Figures `json:"conservative"`
	Realistic    Figures `json:"realistic"`
	Optimistic   Figures `json:"optimistic"`
}

// Scenario returns the figures for s.
func (e MonthlyForecastEntry) Scenario(s Scenario) Figures {
	switch s {
	case Conservative:
		return e.Conservative
	case Realistic:
		return e.Realistic
	case Optimistic:
		return e.Optimistic
	}
	return Figures{}
}

// QuarterlyAggregate sums three consecutive forecast months.
type QuarterlyAggregate struct {
	Quarter      string   `json:"quarter"`
	Months       []string `json:"months"`
	Conservative Figures  `json:"conservative"`
	Realistic    Figures  `json:"realistic"`
	Optimistic   Figures  `json:"optimistic"`
}

// Scenario returns the figures for s.
func (q QuarterlyAggregate) Scenario(s Scenario) Figures {
	switch s {
	case Conservative:
		return q.Conservative
	case Realistic:
		return q.Realistic
	case Optimistic:
		return q.Optimistic
	}
	return Figures{}
}
