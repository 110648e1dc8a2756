package model

// Cadence is how often a pricing tier bills.
type Cadence string

const (
	CadenceMonthly Cadence = "monthly"
	CadenceAnnual  Cadence = "annual"
	CadenceHour    Cadence = "hour"
	CadenceDay     Cadence = "day"
	CadenceProject Cadence = "project"
)

// PricingTier is a named price point of a revenue stream.
type PricingTier struct {
	Price   int64   `json:"price"`
	Cadence Cadence `json:"cadence"`
}

// UnitRevenue is the revenue earned from selling Units of one tier.
type UnitRevenue struct {
	Units   int64 `json:"units"`
	Revenue int64 `json:"revenue"`
}

// StreamProjection is the projected volume of one stream under one scenario.
// Annual always equals Monthly*12 when Monthly is set.
type StreamProjection struct {
	Monthly   *int64                 `json:"monthly,omitempty"`
	Annual    int64                  `json:"annual"`
	Customers map[string]int64       `json:"customers,omitempty"`
	Breakdown map[string]UnitRevenue `json:"breakdown,omitempty"`
	Source    string                 `json:"source,omitempty"`
}

// RevenueStream is a named revenue source with its pricing and projections.
type RevenueStream struct {
	ID          string                        `json:"id"`
	Key         string                        `json:"key"`
	Name        string                        `json:"name"`
	Description string                        `json:"description"`
	Pricing     map[string]PricingTier        `json:"pricing,omitempty"`
	Projections map[Scenario]StreamProjection `json:"projections"`
}

// StreamKeys is the fixed breakdown order used by every report.
var StreamKeys = []string{"job", "sponsorships", "licensing", "consulting", "support", "saas"}

// EmploymentStream is the breakdown key of salary income, which is not a
// business revenue stream.
const EmploymentStream = "job"
