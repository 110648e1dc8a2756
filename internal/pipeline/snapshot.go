package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/config"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/forecast"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/model"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/projection"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/store"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/telemetry"
)

// Options parameterizes a snapshot build.
type Options struct {
	Scenarios config.ScenarioModel
	Curves    forecast.Curves
	Months    int
	// Now stamps the snapshot and anchors the forecast calendar.
	Now       time.Time
	Copyright string
}

// DefaultOptions uses the compiled-in model and curves.
func DefaultOptions(cfg config.Config, now time.Time) Options {
	return Options{
		Scenarios: config.DefaultScenarioModel,
		Curves:    forecast.DefaultCurves(),
		Months:    cfg.General.ForecastMonths,
		Now:       now,
		Copyright: cfg.Company.Copyright,
	}
}

// BuildSnapshot runs the projection generator and the forecast engine and
// assembles a fresh snapshot. It writes nothing.
func BuildSnapshot(ctx context.Context, opts Options) (_ *model.ReportSnapshot, err error) {
	_, span := telemetry.Start(ctx, "pipeline.BuildSnapshot")
	span.SetAttributes(attribute.Int("forecast.months", opts.Months))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	projections, err := projection.New(opts.Scenarios).Generate()
	if err != nil {
		return nil, fmt.Errorf("generating projections: %w", err)
	}
	summary, err := projection.Summarize(projections, opts.Scenarios.Outlook)
	if err != nil {
		return nil, fmt.Errorf("summarizing projections: %w", err)
	}

	engine, err := forecast.New(opts.Curves, opts.Months, opts.Now)
	if err != nil {
		return nil, fmt.Errorf("building forecast: %w", err)
	}

	return &model.ReportSnapshot{
		Data: model.SnapshotData{
			Projections:     projections,
			MonthlyForecast: engine.Collect(),
			Summary:         summary,
		},
		Metadata: model.Metadata{
			UpdatedAt:    opts.Now,
			Source:       model.SnapshotSource,
			Copyright:    opts.Copyright,
			Confidential: true,
		},
	}, nil
}

// Generate builds a snapshot and overwrites the persisted copy in st.
func Generate(ctx context.Context, st *store.Store, opts Options) (*model.ReportSnapshot, error) {
	snap, err := BuildSnapshot(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := st.SaveSnapshot(snap); err != nil {
		return nil, fmt.Errorf("saving snapshot: %w", err)
	}
	return snap, nil
}
