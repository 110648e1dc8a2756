// Package store writes generated artifacts to an output directory. Every
// write is atomic: readers see the previous file or the complete new one.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/model"
)

// SnapshotFile is the name of the persisted ReportSnapshot.
const SnapshotFile = "revenue_projections.json"

// Store is an output directory.
type Store struct {
	dir string
}

// Open creates dir if needed and returns a store rooted there.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the output directory.
func (s *Store) Dir() string { return s.dir }

// Path returns the full path of an artifact.
func (s *Store) Path(name string) string { return filepath.Join(s.dir, name) }

// WriteFile atomically replaces name with data.
func (s *Store) WriteFile(name string, data []byte) error {
	return WriteFileAtomic(s.Path(name), data, 0o644)
}

// WriteJSON atomically writes v as indented JSON with a trailing newline.
func (s *Store) WriteJSON(name string, v any) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	return s.WriteFile(name, data)
}

// SaveSnapshot overwrites the persisted snapshot.
func (s *Store) SaveSnapshot(snap *model.ReportSnapshot) error {
	return s.WriteJSON(SnapshotFile, snap)
}

// MarshalJSON encodes v indented by two spaces without HTML escaping, so
// labels like "R&D" survive verbatim.
func MarshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFileAtomic writes data to a temp file in the target directory, syncs
// it and renames it over path.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("syncing %s: %w", path, err)
	}
	if err = tmp.Chmod(perm); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("renaming %s: %w", path, err)
	}
	return nil
}
