// Package report renders one immutable snapshot into every output format.
// Renderers copy figures from the snapshot; they never derive their own.
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/config"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/model"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/source"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/store"
	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/telemetry"
)

// Input is everything a target may read. Snapshot is required by the report
// targets; the deck tolerates a nil snapshot and falls back to defaults.
type Input struct {
	Snapshot    *model.ReportSnapshot
	KPIs        source.Blob
	History     source.Blob
	DeckData    source.Blob
	Company     config.CompanyConfig
	Deck        config.DeckConfig
	// Fallbacks overrides DefaultDeckFallbacks when set.
	Fallbacks   *DeckFallbacks
	GeneratedAt time.Time
}

// Rendered is the output of one target.
type Rendered struct {
	Data []byte
	// Fallbacks lists the fields that used a declared default.
	Fallbacks []string
}

// Target renders one artifact.
type Target interface {
	Name() string
	File() string
	Render(in Input) (Rendered, error)
}

// TargetError is a failure confined to one target.
type TargetError struct {
	Target string
	Err    error
}

func (e *TargetError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Target, e.Err)
}

func (e *TargetError) Unwrap() error { return e.Err }

// Result is the outcome of one target.
type Result struct {
	Target    string
	Path      string
	Bytes     int
	Fallbacks []string
	Err       error
}

// Results is the outcome of a Run, in target order.
type Results []Result

// Failed returns the results that have an error.
func (rs Results) Failed() Results {
	var out Results
	for _, r := range rs {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}

// Err joins every target error, or returns nil.
func (rs Results) Err() error {
	var errs []error
	for _, r := range rs {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errors.Join(errs...)
}

// Run renders and writes each target independently. A target that fails to
// render, panics or fails to write is recorded and the rest still run.
func Run(ctx context.Context, st *store.Store, in Input, targets []Target, log *zap.SugaredLogger) Results {
	results := make(Results, 0, len(targets))
	for _, t := range targets {
		results = append(results, runOne(ctx, st, in, t, log))
	}
	return results
}

func runOne(ctx context.Context, st *store.Store, in Input, t Target, log *zap.SugaredLogger) (res Result) {
	_, span := telemetry.Start(ctx, "report."+t.Name())
	span.SetAttributes(attribute.String("report.file", t.File()))
	res = Result{Target: t.Name(), Path: st.Path(t.File())}

	defer func() {
		if r := recover(); r != nil {
			res.Err = &TargetError{Target: t.Name(), Err: fmt.Errorf("panic: %v", r)}
		}
		if res.Err != nil {
			span.RecordError(res.Err)
			span.SetStatus(codes.Error, res.Err.Error())
			log.Errorw("report target failed", "target", t.Name(), "error", res.Err)
		}
		span.End()
	}()

	out, err := t.Render(in)
	if err != nil {
		res.Err = &TargetError{Target: t.Name(), Err: err}
		return res
	}
	for _, f := range out.Fallbacks {
		log.Warnw("using fallback default", "target", t.Name(), "field", f)
	}
	res.Fallbacks = out.Fallbacks

	if err := st.WriteFile(t.File(), out.Data); err != nil {
		res.Err = &TargetError{Target: t.Name(), Err: err}
		return res
	}
	res.Bytes = len(out.Data)
	return res
}

// ReportTargets are the artifacts derived from the persisted snapshot.
func ReportTargets() []Target {
	return []Target{
		MonthlyForecastCSV{},
		RevenueStreamsCSV{},
		MilestonesCSV{},
		Summary{},
		Dashboard{},
		DeckDataJSON{},
		QuarterlyTargets{},
	}
}

// DeckTargets are the presentation artifacts.
func DeckTargets() []Target {
	return []Target{PitchDeck{}}
}

var errNoSnapshot = errors.New("no projections snapshot")

func requireSnapshot(in Input) (*model.ReportSnapshot, error) {
	if in.Snapshot == nil {
		return nil, errNoSnapshot
	}
	return in.Snapshot, nil
}
