package source

import (
	"os"
	"path/filepath"
)

// ScanDir resolves each spec against inputDir. Missing files are returned
// with Exists=false; only unexpected stat failures are errors.
func ScanDir(inputDir string, specs []InputSpec) ([]DiscoveredFile, error) {
	files := make([]DiscoveredFile, 0, len(specs))
	for _, spec := range specs {
		df, err := discover(inputDir, spec)
		if err != nil {
			return nil, err
		}
		files = append(files, df)
	}
	return files, nil
}

func discover(inputDir string, spec InputSpec) (DiscoveredFile, error) {
	candidates := []string{filepath.Join(inputDir, spec.File)}
	if spec.Shared {
		candidates = append(candidates, filepath.Join(inputDir, "..", spec.File))
	}

	for _, path := range candidates {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return DiscoveredFile{}, err
		}
		if info.IsDir() {
			continue
		}
		return DiscoveredFile{Spec: spec, Path: path, Exists: true, Size: info.Size()}, nil
	}
	return DiscoveredFile{Spec: spec, Path: candidates[0]}, nil
}
