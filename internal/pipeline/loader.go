package pipeline

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/source"
)

// LoadResult holds the optional inputs of a run and how each fared.
type LoadResult struct {
	Inputs     source.Inputs
	TotalFiles int
	Loaded     int
	Missing    int
	Repaired   int
	FileErrors int
}

// ProgressFunc is called after each input is read.
// current is the number of inputs processed so far, total is the total count.
type ProgressFunc func(current, total int)

// Load discovers and reads every input in specs. Optional inputs never fail
// the run: missing, unreadable or malformed files degrade to empty mappings
// and are logged at warn level.
func Load(inputDir string, specs []source.InputSpec, log *zap.SugaredLogger, progressFn ProgressFunc) (*LoadResult, error) {
	files, err := source.ScanDir(inputDir, specs)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", inputDir, err)
	}

	result := &LoadResult{TotalFiles: len(files)}
	results := make([]source.LoadResult, 0, len(files))
	for i, df := range files {
		res := source.ReadFile(df)
		switch {
		case !df.Exists:
			result.Missing++
			log.Warnw("input not found, using empty mapping", "input", df.Spec.Name, "path", df.Path)
		case res.Err != nil:
			result.FileErrors++
			log.Warnw("input unreadable, using empty mapping", "input", df.Spec.Name, "path", df.Path, "error", res.Err)
		default:
			result.Loaded++
			if res.Repaired {
				result.Repaired++
				log.Warnw("input was not valid JSON, repaired", "input", df.Spec.Name, "path", df.Path)
			}
		}
		results = append(results, res)
		if progressFn != nil {
			progressFn(i+1, len(files))
		}
	}

	result.Inputs = source.Collect(results)
	return result, nil
}
