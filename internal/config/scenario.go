package config

import "github.com/BlackRoad-OS/blackroad-os-metrics/internal/model"

// ScenarioModel is the compiled-in definition of the business: its streams,
// budgets, current position and milestones. It is fixed at build time.
type ScenarioModel struct {
	CurrentState   model.CurrentState
	Streams        []StreamDefinition
	Budgets        map[string]BudgetDefinition
	AnnualExpenses map[model.Period]ExpenseRef
	Milestones     []model.Milestone
	Outlook        Outlook
}

// StreamDefinition describes one revenue stream before derivation.
type StreamDefinition struct {
	ID          string
	Key         string
	Name        string
	Description string
	Pricing     map[string]model.PricingTier
	Scenarios   map[model.Scenario]StreamScenario
	// Plan is the amount the stream contributes to each period's total.
	Plan map[model.Period]int64
}

// StreamScenario is the raw projection for one stream under one scenario.
// Monthly takes precedence over Annual; UnitsSold (priced per tier) takes
// precedence over both.
type StreamScenario struct {
	Monthly   int64
	Annual    int64
	Customers map[string]int64
	UnitsSold map[string]int64
	Source    string
}

// BudgetDefinition is a monthly budget by category.
type BudgetDefinition struct {
	Categories []CategoryDefinition
}

// CategoryDefinition is one budget category with monthly line items.
type CategoryDefinition struct {
	Name  string
	Items []model.ExpenseItem
}

// ExpenseRef resolves a period's annual expenses either from a named budget
// or from an explicit Annual figure.
type ExpenseRef struct {
	Budget string
	Annual int64
}

// Outlook holds the qualitative timeline lines of the summary.
type Outlook struct {
	TimeToFirstRevenue   string
	TimeToSustainability string
	TimeToFullTime       string
}

// Budget names referenced by ExpenseRef.
const (
	BudgetCurrent = "current"
	BudgetScaled  = "scaled"
)

func amount(v int64) *int64 { return &v }

func plan(y1c, y1r, y1o, y3c, y3r, y3o int64) map[model.Period]int64 {
	return map[model.Period]int64{
		{Year: model.Year1, Scenario: model.Conservative}: y1c,
		{Year: model.Year1, Scenario: model.Realistic}:    y1r,
		{Year: model.Year1, Scenario: model.Optimistic}:   y1o,
		{Year: model.Year3, Scenario: model.Conservative}: y3c,
		{Year: model.Year3, Scenario: model.Realistic}:    y3r,
		{Year: model.Year3, Scenario: model.Optimistic}:   y3o,
	}
}

// DefaultScenarioModel is the business model every generation run derives from.
var DefaultScenarioModel = ScenarioModel{
	CurrentState: model.CurrentState{
		HistoricalRevenue: model.HistoricalRevenue{
			TotalAllTime: 26_800_000,
			Breakdown: map[string]int64{
				"securian_sales_commissions": 26_800_000,
				"blackroad_saas":             0,
				"consulting":                 0,
				"licensing":                  0,
				"sponsorships":               0,
			},
		},
		CurrentMonthlyBurn: 0,
		RunwayMonths:       "infinite",
		CashPosition:       32_350,
		Assets: model.Assets{
			Crypto:    32_350,
			Equipment: 5_000,
			Domains:   2_000,
		},
	},

	Streams: []StreamDefinition{
		{
			ID:          "job_income",
			Key:         "job",
			Name:        "Employment Income",
			Description: "Full-time employment while building",
			Scenarios: map[model.Scenario]StreamScenario{
				model.Conservative: {Annual: 120_000, Source: "AI/ML Engineer role"},
				model.Realistic:    {Annual: 180_000, Source: "Senior AI Engineer role"},
				model.Optimistic:   {Annual: 250_000, Source: "Staff/Principal Engineer role"},
			},
			Plan: plan(120_000, 180_000, 250_000, 150_000, 200_000, 0),
		},
		{
			ID:          "open_source_sponsorships",
			Key:         "sponsorships",
			Name:        "Open Source Sponsorships",
			Description: "GitHub Sponsors + direct support",
			Pricing: map[string]model.PricingTier{
				"friend":    {Price: 5, Cadence: model.CadenceMonthly},
				"supporter": {Price: 25, Cadence: model.CadenceMonthly},
				"sponsor":   {Price: 100, Cadence: model.CadenceMonthly},
			},
			Scenarios: map[model.Scenario]StreamScenario{
				model.Conservative: {Monthly: 100, Customers: map[string]int64{"friend": 10, "supporter": 3, "sponsor": 0}},
				model.Realistic:    {Monthly: 500, Customers: map[string]int64{"friend": 30, "supporter": 10, "sponsor": 2}},
				model.Optimistic:   {Monthly: 2_500, Customers: map[string]int64{"friend": 100, "supporter": 40, "sponsor": 10}},
			},
			Plan: plan(1_200, 6_000, 30_000, 5_000, 30_000, 100_000),
		},
		{
			ID:          "commercial_licensing",
			Key:         "licensing",
			Name:        "Commercial Licensing",
			Description: "Commercial use licenses for businesses",
			Pricing: map[string]model.PricingTier{
				"startup":    {Price: 499, Cadence: model.CadenceAnnual},
				"business":   {Price: 999, Cadence: model.CadenceAnnual},
				"enterprise": {Price: 2_499, Cadence: model.CadenceAnnual},
			},
			Scenarios: map[model.Scenario]StreamScenario{
				model.Conservative: {Annual: 50_000, Customers: map[string]int64{"startup": 50, "business": 25, "enterprise": 5}},
				model.Realistic:    {Annual: 150_000, Customers: map[string]int64{"startup": 100, "business": 75, "enterprise": 20}},
				model.Optimistic:   {Annual: 500_000, Customers: map[string]int64{"startup": 300, "business": 200, "enterprise": 50}},
			},
			Plan: plan(0, 50_000, 200_000, 50_000, 150_000, 500_000),
		},
		{
			ID:          "consulting_integration",
			Key:         "consulting",
			Name:        "Consulting & Integration",
			Description: "Custom integration and consulting services",
			Pricing: map[string]model.PricingTier{
				"hourly":  {Price: 250, Cadence: model.CadenceHour},
				"daily":   {Price: 1_500, Cadence: model.CadenceDay},
				"project": {Price: 5_000, Cadence: model.CadenceProject},
			},
			Scenarios: map[model.Scenario]StreamScenario{
				model.Conservative: {UnitsSold: map[string]int64{"hourly": 100, "daily": 10, "project": 2}},
				model.Realistic:    {UnitsSold: map[string]int64{"hourly": 200, "daily": 40, "project": 8}},
				model.Optimistic:   {UnitsSold: map[string]int64{"hourly": 400, "daily": 100, "project": 50}},
			},
			Plan: plan(10_000, 100_000, 300_000, 50_000, 200_000, 500_000),
		},
		{
			ID:          "priority_support",
			Key:         "support",
			Name:        "Priority Support",
			Description: "24/7 priority support with SLA",
			Pricing: map[string]model.PricingTier{
				"monthly": {Price: 499, Cadence: model.CadenceMonthly},
			},
			Scenarios: map[model.Scenario]StreamScenario{
				model.Conservative: {Monthly: 2_500, Customers: map[string]int64{"monthly": 5}},
				model.Realistic:    {Monthly: 10_000, Customers: map[string]int64{"monthly": 20}},
				model.Optimistic:   {Monthly: 25_000, Customers: map[string]int64{"monthly": 50}},
			},
			Plan: plan(0, 60_000, 100_000, 25_000, 120_000, 400_000),
		},
		{
			ID:          "saas_platform",
			Key:         "saas",
			Name:        "SaaS Platform",
			Description: "Multi-agent orchestration platform as SaaS",
			Pricing: map[string]model.PricingTier{
				"starter":      {Price: 49, Cadence: model.CadenceMonthly},
				"professional": {Price: 199, Cadence: model.CadenceMonthly},
				"business":     {Price: 499, Cadence: model.CadenceMonthly},
				"enterprise":   {Price: 1_999, Cadence: model.CadenceMonthly},
			},
			Scenarios: map[model.Scenario]StreamScenario{
				model.Conservative: {Monthly: 5_000, Customers: map[string]int64{"starter": 50, "professional": 15, "business": 5, "enterprise": 1}},
				model.Realistic:    {Monthly: 25_000, Customers: map[string]int64{"starter": 200, "professional": 80, "business": 30, "enterprise": 5}},
				model.Optimistic:   {Monthly: 100_000, Customers: map[string]int64{"starter": 1_000, "professional": 300, "business": 100, "enterprise": 20}},
			},
			Plan: plan(0, 60_000, 400_000, 0, 250_000, 2_000_000),
		},
	},

	Budgets: map[string]BudgetDefinition{
		BudgetCurrent: {Categories: []CategoryDefinition{
			{Name: "infrastructure", Items: []model.ExpenseItem{
				{Name: "cloudflare", Monthly: 20},
				{Name: "railway", Monthly: 0},
				{Name: "domains", Monthly: 50},
				{Name: "github", Monthly: 0},
			}},
			{Name: "tools_software", Items: []model.ExpenseItem{
				{Name: "anthropic_api", Monthly: 50},
				{Name: "other_apis", Monthly: 20},
			}},
			{Name: "marketing"},
		}},
		BudgetScaled: {Categories: []CategoryDefinition{
			{Name: "infrastructure", Items: []model.ExpenseItem{
				{Name: "cloudflare", Monthly: 200},
				{Name: "railway", Monthly: 500},
				{Name: "domains", Monthly: 100},
				{Name: "databases", Monthly: 200},
				{Name: "cdn_bandwidth", Monthly: 300},
			}},
			{Name: "tools_software", Items: []model.ExpenseItem{
				{Name: "ai_apis", Monthly: 500},
				{Name: "monitoring", Monthly: 200},
				{Name: "analytics", Monthly: 100},
				{Name: "email", Monthly: 50},
			}},
			{Name: "marketing", Items: []model.ExpenseItem{
				{Name: "ads", Monthly: 1_000},
				{Name: "content", Monthly: 500},
			}},
			{Name: "team", Items: []model.ExpenseItem{
				{Name: "contractors", Monthly: 5_000},
			}},
		}},
	},

	AnnualExpenses: map[model.Period]ExpenseRef{
		{Year: model.Year1, Scenario: model.Conservative}: {Budget: BudgetCurrent},
		{Year: model.Year1, Scenario: model.Realistic}:    {Annual: 20_000},
		{Year: model.Year1, Scenario: model.Optimistic}:   {Budget: BudgetScaled},
		{Year: model.Year3, Scenario: model.Conservative}: {Annual: 20_000},
		{Year: model.Year3, Scenario: model.Realistic}:    {Budget: BudgetScaled},
		{Year: model.Year3, Scenario: model.Optimistic}:   {Annual: 500_000},
	},

	Milestones: []model.Milestone{
		{
			Name:       "first_dollar",
			TargetDate: model.NewDate(2025, 1, 15),
			Source:     "First GitHub sponsor or consulting client",
			Amount:     amount(25),
		},
		{
			Name:       "first_1k_month",
			TargetDate: model.NewDate(2025, 3, 1),
			Source:     "Mix of sponsors + consulting",
			Amount:     amount(1_000),
		},
		{
			Name:       "first_10k_month",
			TargetDate: model.NewDate(2025, 6, 1),
			Source:     "Licensing + consulting + sponsors",
			Amount:     amount(10_000),
		},
		{
			Name:         "quit_job",
			TargetDate:   model.NewDate(2025, 12, 1),
			RequiredMRR:  amount(20_000),
			SafetyBuffer: amount(100_000),
		},
		{
			Name:       "first_100k_year",
			TargetDate: model.NewDate(2025, 12, 31),
			Source:     "All revenue streams",
			Amount:     amount(100_000),
		},
		{
			Name:       "first_1m_year",
			TargetDate: model.NewDate(2027, 12, 31),
			Source:     "SaaS scaling",
			Amount:     amount(1_000_000),
		},
	},

	Outlook: Outlook{
		TimeToFirstRevenue:   "2-4 weeks",
		TimeToSustainability: "3-6 months",
		TimeToFullTime:       "6-12 months",
	},
}
