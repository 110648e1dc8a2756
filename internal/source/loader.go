package source

import (
	"fmt"
	"os"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	"github.com/tidwall/gjson"

	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/model"
)

// LoadResult is the outcome of reading one discovered input.
type LoadResult struct {
	File DiscoveredFile
	Blob Blob
	// Repaired is set when the file was not valid JSON and was recovered.
	Repaired bool
	Err      error
}

// Inputs holds every optional input of a run. Missing inputs are empty blobs.
type Inputs struct {
	KPIs        Blob
	History     Blob
	Projections Blob
	DeckData    Blob
	Files       []LoadResult
}

// PriorSnapshot decodes the projections input as a snapshot. An input that
// was not found or failed to read is a MissingInputError.
func (in Inputs) PriorSnapshot() (*model.ReportSnapshot, error) {
	for _, res := range in.Files {
		if res.File.Spec.Name != Projections {
			continue
		}
		if res.Err != nil || in.Projections.Empty() {
			return nil, &MissingInputError{Name: Projections, Path: res.File.Path}
		}
		return DecodeSnapshot(res.File.Path, []byte(in.Projections.Raw()))
	}
	return nil, &MissingInputError{Name: Projections, Path: ProjectionsFile}
}

// ReadFile reads a discovered input. A missing file yields a
// MissingInputError. Invalid JSON is passed through json-repair; a document
// that still does not parse is a MalformedInputError.
func ReadFile(df DiscoveredFile) LoadResult {
	res := LoadResult{File: df}
	if !df.Exists {
		res.Err = &MissingInputError{Name: df.Spec.Name, Path: df.Path}
		return res
	}

	data, err := os.ReadFile(df.Path)
	if err != nil {
		if os.IsNotExist(err) {
			res.Err = &MissingInputError{Name: df.Spec.Name, Path: df.Path}
		} else {
			res.Err = fmt.Errorf("reading %s: %w", df.Path, err)
		}
		return res
	}

	if gjson.ValidBytes(data) {
		res.Blob = NewBlob(data)
		return res
	}

	repaired, err := jsonrepair.RepairJSON(string(data))
	if err != nil || !gjson.Valid(repaired) {
		res.Err = &MalformedInputError{Name: df.Spec.Name, Path: df.Path, Reason: "not valid JSON"}
		return res
	}
	res.Blob = NewBlob([]byte(repaired))
	res.Repaired = true
	return res
}

// Collect assembles read results into Inputs. Failed reads leave the
// corresponding blob empty.
func Collect(results []LoadResult) Inputs {
	in := Inputs{Files: results}
	for _, res := range results {
		switch res.File.Spec.Name {
		case KPIs:
			in.KPIs = res.Blob
		case History:
			in.History = res.Blob
		case Projections:
			in.Projections = res.Blob
		case DeckData:
			in.DeckData = res.Blob
		}
	}
	return in
}
