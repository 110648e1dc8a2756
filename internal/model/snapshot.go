package model

import "time"

// Range is the spread of an annual figure across scenarios.
type Range struct {
	Min    int64 `json:"min"`
	Likely int64 `json:"likely"`
	Max    int64 `json:"max"`
}

// Summary is the headline view of one generation run.
type Summary struct {
	Year1Range           Range  `json:"year_1_range"`
	Year3Range           Range  `json:"year_3_range"`
	Profitability        string `json:"profitability"`
	TimeToFirstRevenue   string `json:"time_to_first_revenue"`
	TimeToSustainability string `json:"time_to_sustainability"`
	TimeToFullTime       string `json:"time_to_full_time"`
}

// SnapshotData is the payload of a ReportSnapshot.
type SnapshotData struct {
	Projections     Projections            `json:"projections"`
	MonthlyForecast []MonthlyForecastEntry `json:"monthly_forecast"`
	Summary         Summary                `json:"summary"`
}

// Metadata tags a persisted artifact.
type Metadata struct {
	UpdatedAt    time.Time `json:"updated_at"`
	Source       string    `json:"source"`
	Copyright    string    `json:"copyright"`
	Confidential bool      `json:"confidential"`
}

// ReportSnapshot is the complete output of one generation run. Renderers
// treat it as read-only.
type ReportSnapshot struct {
	Data     SnapshotData `json:"data"`
	Metadata Metadata     `json:"metadata"`
}

// SnapshotSource is the metadata source tag of revenue_projections.json.
const SnapshotSource = "financial-modeling"
