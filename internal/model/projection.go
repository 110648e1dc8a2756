package model

import (
	"errors"
	"fmt"
)

// ScenarioTotals is the annual revenue of one period, broken down by stream key.
type ScenarioTotals struct {
	Year           Year             `json:"year"`
	Scenario       Scenario         `json:"scenario"`
	TotalAnnual    int64            `json:"total_annual"`
	MonthlyAverage int64            `json:"monthly_average"`
	Breakdown      map[string]int64 `json:"breakdown"`
}

// ProfitabilityRecord is revenue against expenses for one period.
type ProfitabilityRecord struct {
	Year      Year     `json:"year"`
	Scenario  Scenario `json:"scenario"`
	Revenue   int64    `json:"revenue"`
	Expenses  int64    `json:"expenses"`
	Profit    int64    `json:"profit"`
	MarginPct float64  `json:"margin_pct"`
}

// Milestone is a dated financial target. Exactly one of Amount or RequiredMRR
// is the primary metric.
type Milestone struct {
	Name         string `json:"name"`
	TargetDate   Date   `json:"target_date"`
	Amount       *int64 `json:"amount,omitempty"`
	RequiredMRR  *int64 `json:"required_mrr,omitempty"`
	SafetyBuffer *int64 `json:"safety_buffer,omitempty"`
	Source       string `json:"source,omitempty"`
}

// ErrAmbiguousMilestone is returned for a milestone that sets both Amount and
// RequiredMRR.
var ErrAmbiguousMilestone = errors.New("milestone sets both amount and required_mrr")

// Validate checks that at most one primary metric is set.
func (m Milestone) Validate() error {
	if m.Amount != nil && m.RequiredMRR != nil {
		return fmt.Errorf("%s: %w", m.Name, ErrAmbiguousMilestone)
	}
	return nil
}

// PrimaryAmount returns Amount, or RequiredMRR when Amount is unset.
func (m Milestone) PrimaryAmount() int64 {
	if m.Amount != nil {
		return *m.Amount
	}
	if m.RequiredMRR != nil {
		return *m.RequiredMRR
	}
	return 0
}

// HistoricalRevenue is revenue already earned, by source.
type HistoricalRevenue struct {
	TotalAllTime int64            `json:"total_all_time"`
	Breakdown    map[string]int64 `json:"breakdown"`
}

// Assets is the current asset breakdown. Total is the sum of the others.
type Assets struct {
	Crypto    int64 `json:"crypto"`
	Equipment int64 `json:"equipment"`
	Domains   int64 `json:"domains"`
	Total     int64 `json:"total"`
}

// CurrentState is the fixed present-day financial position.
type CurrentState struct {
	HistoricalRevenue  HistoricalRevenue `json:"historical_revenue"`
	CurrentMonthlyBurn int64             `json:"current_monthly_burn"`
	RunwayMonths       string            `json:"runway_months"`
	CashPosition       int64             `json:"cash_position"`
	Assets             Assets            `json:"assets"`
}

// ExpenseItem is one monthly line item.
type ExpenseItem struct {
	Name    string `json:"name"`
	Monthly int64  `json:"monthly"`
}

// ExpenseCategory groups line items; Total is their sum.
type ExpenseCategory struct {
	Name  string        `json:"name"`
	Items []ExpenseItem `json:"items"`
	Total int64         `json:"total"`
}

// ExpenseBudget is a monthly operating budget. TotalAnnual = TotalMonthly*12.
type ExpenseBudget struct {
	Categories   []ExpenseCategory `json:"categories"`
	TotalMonthly int64             `json:"total_monthly"`
	TotalAnnual  int64             `json:"total_annual"`
}

// Expenses holds the present budget and the budget at scale.
type Expenses struct {
	CurrentMonthly ExpenseBudget `json:"current_monthly"`
	ScaledMonthly  ExpenseBudget `json:"scaled_monthly"`
}

// Projections is the output of the projection generator.
type Projections struct {
	CurrentState     CurrentState                   `json:"current_state"`
	RevenueStreams   []RevenueStream                `json:"revenue_streams"`
	TotalProjections map[string]ScenarioTotals      `json:"total_projections"`
	Expenses         Expenses                       `json:"expenses"`
	Profitability    map[string]ProfitabilityRecord `json:"profitability"`
	Milestones       []Milestone                    `json:"milestones"`
}

// Totals returns the scenario totals for a period.
func (p Projections) Totals(period Period) (ScenarioTotals, bool) {
	t, ok := p.TotalProjections[period.Key()]
	return t, ok
}

// Profit returns the profitability record for a period.
func (p Projections) Profit(period Period) (ProfitabilityRecord, bool) {
	r, ok := p.Profitability[period.Key()]
	return r, ok
}

// Stream returns the revenue stream with the given breakdown key.
func (p Projections) Stream(key string) (RevenueStream, bool) {
	for _, s := range p.RevenueStreams {
		if s.Key == key {
			return s, true
		}
	}
	return RevenueStream{}, false
}
