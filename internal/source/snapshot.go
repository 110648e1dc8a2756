package source

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/model"
)

// requiredSnapshotPaths must be present with the given shape for a snapshot
// to be usable by the report renderers.
var requiredSnapshotPaths = []struct {
	path string
	kind string
}{
	{"data.projections.current_state", "object"},
	{"data.projections.total_projections", "object"},
	{"data.projections.profitability", "object"},
	{"data.projections.milestones", "array"},
	{"data.monthly_forecast", "array"},
}

// LoadSnapshot reads and validates a persisted snapshot. The file is
// required: absence is a MissingInputError.
func LoadSnapshot(path string) (*model.ReportSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &MissingInputError{Name: Projections, Path: path}
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return DecodeSnapshot(path, data)
}

// DecodeSnapshot validates required paths then decodes data. path is used
// only in error messages.
func DecodeSnapshot(path string, data []byte) (*model.ReportSnapshot, error) {
	if !gjson.ValidBytes(data) {
		return nil, &MalformedInputError{Name: Projections, Path: path, Reason: "not valid JSON"}
	}
	doc := gjson.ParseBytes(data)
	for _, req := range requiredSnapshotPaths {
		r := doc.Get(req.path)
		if !r.Exists() {
			return nil, &MalformedInputError{Name: Projections, Path: path, Field: req.path, Reason: "missing"}
		}
		if (req.kind == "object" && !r.IsObject()) || (req.kind == "array" && !r.IsArray()) {
			return nil, &MalformedInputError{
				Name: Projections, Path: path, Field: req.path,
				Reason: fmt.Sprintf("expected %s", req.kind),
			}
		}
	}
	if field, reason := missingFigure(doc); field != "" {
		return nil, &MalformedInputError{Name: Projections, Path: path, Field: field, Reason: reason}
	}

	var snap model.ReportSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, &MalformedInputError{Name: Projections, Path: path, Reason: err.Error()}
	}
	if field, reason := milestoneOrder(snap.Data.Projections.Milestones); field != "" {
		return nil, &MalformedInputError{Name: Projections, Path: path, Field: field, Reason: reason}
	}
	return &snap, nil
}

var (
	figureFields        = []string{"revenue", "expenses", "profit"}
	totalsFields        = []string{"total_annual", "monthly_average"}
	profitabilityFields = []string{"revenue", "expenses", "profit", "margin_pct"}
)

// missingFigure returns the full path of the first financial figure that is
// absent or not a number, with the reason.
func missingFigure(doc gjson.Result) (field, reason string) {
	check := func(p string) bool {
		r := doc.Get(p)
		switch {
		case !r.Exists():
			field, reason = p, "missing"
		case r.Type != gjson.Number:
			field, reason = p, "expected number"
		default:
			return true
		}
		return false
	}

	for i, entry := range doc.Get("data.monthly_forecast").Array() {
		if !entry.Get("month").Exists() {
			return fmt.Sprintf("data.monthly_forecast.%d.month", i), "missing"
		}
		for _, sc := range model.Scenarios {
			for _, f := range figureFields {
				if !check(fmt.Sprintf("data.monthly_forecast.%d.%s.%s", i, sc, f)) {
					return field, reason
				}
			}
		}
	}

	for _, section := range []struct {
		key    string
		fields []string
	}{
		{"data.projections.total_projections", totalsFields},
		{"data.projections.profitability", profitabilityFields},
	} {
		var keys []string
		doc.Get(section.key).ForEach(func(k, _ gjson.Result) bool {
			keys = append(keys, k.String())
			return true
		})
		for _, k := range keys {
			for _, f := range section.fields {
				if !check(section.key + "." + gjson.Escape(k) + "." + f) {
					return field, reason
				}
			}
		}
	}

	for i, m := range doc.Get("data.projections.milestones").Array() {
		p := fmt.Sprintf("data.projections.milestones.%d", i)
		date := m.Get("target_date")
		if date.Type != gjson.String {
			return p + ".target_date", "missing"
		}
		if _, err := model.ParseDate(date.String()); err != nil {
			return p + ".target_date", err.Error()
		}
		amount, mrr := m.Get("amount").Exists(), m.Get("required_mrr").Exists()
		switch {
		case amount && mrr:
			return p, model.ErrAmbiguousMilestone.Error()
		case amount && !check(p+".amount"):
			return field, reason
		case mrr && !check(p+".required_mrr"):
			return field, reason
		}
	}
	return "", ""
}

// milestoneOrder reports the first milestone dated before its predecessor.
func milestoneOrder(ms []model.Milestone) (field, reason string) {
	for i := 1; i < len(ms); i++ {
		if ms[i].TargetDate.Before(ms[i-1].TargetDate.Time) {
			return fmt.Sprintf("data.projections.milestones.%d.target_date", i), "not in target date order"
		}
	}
	return "", ""
}
