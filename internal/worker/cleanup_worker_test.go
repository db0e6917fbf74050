package worker

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, dir, name string, age time.Duration) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("png"), 0o644))
	stamp := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, stamp, stamp))
	return path
}

func TestCleanupWorker_Sweep(t *testing.T) {
	dir := t.TempDir()

	stale := writeFile(t, dir, "simplex_graph_old.png", time.Hour)
	fresh := writeFile(t, dir, "simplex_graph_new.png", time.Minute)
	unrelated := writeFile(t, dir, "notes.txt", time.Hour)

	w := NewCleanupWorker(dir, "@every 1h", 30*time.Minute, zap.NewNop())
	w.Sweep()

	_, err := os.Stat(stale)
	assert.True(t, os.IsNotExist(err), "stale graph should be removed")

	_, err = os.Stat(fresh)
	assert.NoError(t, err, "fresh graph should survive")

	_, err = os.Stat(unrelated)
	assert.NoError(t, err, "non-graph files are never touched")
}

func TestCleanupWorker_SweepMissingDir(t *testing.T) {
	w := NewCleanupWorker(filepath.Join(t.TempDir(), "missing"), "@every 1h", time.Minute, zap.NewNop())
	// A directory that does not exist yet is an empty sweep, not an error.
	w.Sweep()
}

func TestCleanupWorker_StartStop(t *testing.T) {
	w := NewCleanupWorker(t.TempDir(), "@every 1h", time.Minute, zap.NewNop())
	require.NoError(t, w.Start())
	w.Stop()
}

func TestCleanupWorker_BadSchedule(t *testing.T) {
	w := NewCleanupWorker(t.TempDir(), "not a schedule", time.Minute, zap.NewNop())
	assert.Error(t, w.Start())
}
