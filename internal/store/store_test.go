package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BlackRoad-OS/blackroad-os-metrics/internal/model"
)

func TestOpen_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "nested")
	s, err := Open(dir)
	require.NoError(t, err)
	info, err := os.Stat(s.Dir())
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestWriteFile_OverwritesAndLeavesNoTemp(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.WriteFile("a.csv", []byte("first")))
	require.NoError(t, s.WriteFile("a.csv", []byte("second")))

	got, err := os.ReadFile(s.Path("a.csv"))
	require.NoError(t, err)
	require.Equal(t, "second", string(got))

	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestWriteFileAtomic_MissingDir(t *testing.T) {
	err := WriteFileAtomic(filepath.Join(t.TempDir(), "missing", "x.json"), []byte("{}"), 0o644)
	require.Error(t, err)
}

func TestWriteFileAtomic_FailureKeepsPrevious(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "report.md")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o644))
	// A directory in place of the destination makes the rename fail.
	blocked := filepath.Join(dir, "blocked")
	require.NoError(t, os.MkdirAll(filepath.Join(blocked, "child"), 0o755))

	require.Error(t, WriteFileAtomic(blocked, []byte("new"), 0o644))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Equal(t, "old", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		require.False(t, strings.Contains(e.Name(), ".tmp-"), "temp file left behind: %s", e.Name())
	}
}

func TestWriteJSON_NoHTMLEscape(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.WriteJSON("x.json", map[string]string{"k": "R&D <core>"}))

	got, err := os.ReadFile(s.Path("x.json"))
	require.NoError(t, err)
	require.Equal(t, "{\n  \"k\": \"R&D <core>\"\n}\n", string(got))
}

func TestSaveSnapshot(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	snap := &model.ReportSnapshot{Metadata: model.Metadata{Source: model.SnapshotSource, Confidential: true}}
	require.NoError(t, s.SaveSnapshot(snap))

	got, err := os.ReadFile(s.Path(SnapshotFile))
	require.NoError(t, err)
	require.Contains(t, string(got), `"source": "financial-modeling"`)
}
