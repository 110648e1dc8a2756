// Package projection derives annual scenario totals, profitability and
// milestones from the compiled-in scenario model.
package projection

import (
	"fmt"
	"sort"

	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/config"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/model"
)

// Generator derives projections from a scenario model. It holds no state
// between calls.
type Generator struct {
	scenarios config.ScenarioModel
}

// New returns a generator over m.
func New(m config.ScenarioModel) *Generator {
	return &Generator{scenarios: m}
}

// Generate computes the full projection block. An error means the scenario
// model itself is incomplete.
func (g *Generator) Generate() (model.Projections, error) {
	streams, err := g.revenueStreams()
	if err != nil {
		return model.Projections{}, err
	}

	totals, err := g.totals()
	if err != nil {
		return model.Projections{}, err
	}

	expenses, err := g.expenses()
	if err != nil {
		return model.Projections{}, err
	}

	profitability, err := g.profitability(totals, expenses)
	if err != nil {
		return model.Projections{}, err
	}

	milestones, err := g.milestones()
	if err != nil {
		return model.Projections{}, err
	}

	return model.Projections{
		CurrentState:     g.currentState(),
		RevenueStreams:   streams,
		TotalProjections: totals,
		Expenses:         expenses,
		Profitability:    profitability,
		Milestones:       milestones,
	}, nil
}

func (g *Generator) currentState() model.CurrentState {
	cs := g.scenarios.CurrentState
	breakdown := make(map[string]int64, len(cs.HistoricalRevenue.Breakdown))
	for k, v := range cs.HistoricalRevenue.Breakdown {
		breakdown[k] = v
	}
	cs.HistoricalRevenue.Breakdown = breakdown
	cs.Assets.Total = cs.Assets.Crypto + cs.Assets.Equipment + cs.Assets.Domains
	return cs
}

func (g *Generator) revenueStreams() ([]model.RevenueStream, error) {
	out := make([]model.RevenueStream, 0, len(g.scenarios.Streams))
	for _, def := range g.scenarios.Streams {
		rs := model.RevenueStream{
			ID:          def.ID,
			Key:         def.Key,
			Name:        def.Name,
			Description: def.Description,
			Projections: make(map[model.Scenario]model.StreamProjection, len(model.Scenarios)),
		}
		if len(def.Pricing) > 0 {
			rs.Pricing = make(map[string]model.PricingTier, len(def.Pricing))
			for tier, p := range def.Pricing {
				rs.Pricing[tier] = p
			}
		}
		for _, sc := range model.Scenarios {
			raw, ok := def.Scenarios[sc]
			if !ok {
				return nil, fmt.Errorf("stream %s: no %s projection", def.Key, sc)
			}
			proj, err := streamProjection(def, raw)
			if err != nil {
				return nil, fmt.Errorf("stream %s %s: %w", def.Key, sc, err)
			}
			rs.Projections[sc] = proj
		}
		out = append(out, rs)
	}
	return out, nil
}

// streamProjection resolves the annual amount of one stream scenario:
// per-unit sales are priced by tier, monthly billing is annualized, and
// anything else takes the stated annual figure.
func streamProjection(def config.StreamDefinition, raw config.StreamScenario) (model.StreamProjection, error) {
	proj := model.StreamProjection{Source: raw.Source}
	if len(raw.Customers) > 0 {
		proj.Customers = make(map[string]int64, len(raw.Customers))
		for tier, n := range raw.Customers {
			if n < 0 {
				return proj, fmt.Errorf("tier %s has negative count %d", tier, n)
			}
			proj.Customers[tier] = n
		}
	}

	switch {
	case len(raw.UnitsSold) > 0:
		proj.Breakdown = make(map[string]model.UnitRevenue, len(raw.UnitsSold))
		for tier, units := range raw.UnitsSold {
			if units < 0 {
				return proj, fmt.Errorf("tier %s has negative units %d", tier, units)
			}
			price, ok := def.Pricing[tier]
			if !ok {
				return proj, fmt.Errorf("no price for tier %s", tier)
			}
			rev := units * price.Price
			proj.Breakdown[tier] = model.UnitRevenue{Units: units, Revenue: rev}
			proj.Annual += rev
		}
	case raw.Monthly > 0:
		monthly := raw.Monthly
		proj.Monthly = &monthly
		proj.Annual = monthly * 12
	default:
		proj.Annual = raw.Annual
	}
	return proj, nil
}

func (g *Generator) totals() (map[string]model.ScenarioTotals, error) {
	out := make(map[string]model.ScenarioTotals, len(model.Years)*len(model.Scenarios))
	for _, p := range model.Periods() {
		t := model.ScenarioTotals{
			Year:      p.Year,
			Scenario:  p.Scenario,
			Breakdown: make(map[string]int64, len(g.scenarios.Streams)),
		}
		for _, def := range g.scenarios.Streams {
			v, ok := def.Plan[p]
			if !ok {
				return nil, fmt.Errorf("stream %s: no plan for %s", def.Key, p.Key())
			}
			t.Breakdown[def.Key] = v
			t.TotalAnnual += v
		}
		t.MonthlyAverage = MonthlyAverage(t.TotalAnnual)
		out[p.Key()] = t
	}
	return out, nil
}

func (g *Generator) expenses() (model.Expenses, error) {
	current, ok := g.scenarios.Budgets[config.BudgetCurrent]
	if !ok {
		return model.Expenses{}, fmt.Errorf("missing %q budget", config.BudgetCurrent)
	}
	scaled, ok := g.scenarios.Budgets[config.BudgetScaled]
	if !ok {
		return model.Expenses{}, fmt.Errorf("missing %q budget", config.BudgetScaled)
	}
	return model.Expenses{
		CurrentMonthly: BuildBudget(current),
		ScaledMonthly:  BuildBudget(scaled),
	}, nil
}

// BuildBudget totals each category and annualizes the monthly total.
func BuildBudget(def config.BudgetDefinition) model.ExpenseBudget {
	b := model.ExpenseBudget{Categories: make([]model.ExpenseCategory, 0, len(def.Categories))}
	for _, c := range def.Categories {
		cat := model.ExpenseCategory{Name: c.Name, Items: append([]model.ExpenseItem(nil), c.Items...)}
		for _, it := range c.Items {
			cat.Total += it.Monthly
		}
		b.TotalMonthly += cat.Total
		b.Categories = append(b.Categories, cat)
	}
	b.TotalAnnual = b.TotalMonthly * 12
	return b
}

func (g *Generator) profitability(
	totals map[string]model.ScenarioTotals,
	expenses model.Expenses,
) (map[string]model.ProfitabilityRecord, error) {
	out := make(map[string]model.ProfitabilityRecord, len(totals))
	for _, p := range model.Periods() {
		ref, ok := g.scenarios.AnnualExpenses[p]
		if !ok {
			return nil, fmt.Errorf("no expense reference for %s", p.Key())
		}
		annual, err := resolveExpense(ref, expenses)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.Key(), err)
		}
		out[p.Key()] = Profitability(p, totals[p.Key()].TotalAnnual, annual)
	}
	return out, nil
}

func resolveExpense(ref config.ExpenseRef, expenses model.Expenses) (int64, error) {
	switch ref.Budget {
	case "":
		return ref.Annual, nil
	case config.BudgetCurrent:
		return expenses.CurrentMonthly.TotalAnnual, nil
	case config.BudgetScaled:
		return expenses.ScaledMonthly.TotalAnnual, nil
	}
	return 0, fmt.Errorf("unknown budget %q", ref.Budget)
}

// Profitability builds the record for one period; profit and margin are
// derived from revenue and expenses.
func Profitability(p model.Period, revenue, expenses int64) model.ProfitabilityRecord {
	profit := revenue - expenses
	return model.ProfitabilityRecord{
		Year:      p.Year,
		Scenario:  p.Scenario,
		Revenue:   revenue,
		Expenses:  expenses,
		Profit:    profit,
		MarginPct: model.MarginPct(profit, revenue),
	}
}

func (g *Generator) milestones() ([]model.Milestone, error) {
	for _, m := range g.scenarios.Milestones {
		if err := m.Validate(); err != nil {
			return nil, err
		}
	}
	return SortMilestones(g.scenarios.Milestones), nil
}

// SortMilestones returns a copy of ms ordered by target date. Ties keep their
// input order.
func SortMilestones(ms []model.Milestone) []model.Milestone {
	out := append([]model.Milestone(nil), ms...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TargetDate.Before(out[j].TargetDate.Time)
	})
	return out
}
