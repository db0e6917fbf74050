package worker

import (
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// graphFilePattern matches the PNGs the plot service writes. Files a request
// already served are deleted inline; the sweep only catches what aborted
// requests leave behind.
const graphFilePattern = "simplex_graph_*.png"

// CleanupWorker periodically removes stale graph files from the plot
// directory.
type CleanupWorker struct {
	cron     *cron.Cron
	dir      string
	maxAge   time.Duration
	schedule string
	logger   *zap.Logger
}

// NewCleanupWorker creates a cleanup worker for dir. Files older than
// maxAge are removed on every run of schedule (a cron expression).
func NewCleanupWorker(dir, schedule string, maxAge time.Duration, logger *zap.Logger) *CleanupWorker {
	return &CleanupWorker{
		cron:     cron.New(),
		dir:      dir,
		maxAge:   maxAge,
		schedule: schedule,
		logger:   logger,
	}
}

// Start registers the sweep job and starts the scheduler.
func (w *CleanupWorker) Start() error {
	if _, err := w.cron.AddFunc(w.schedule, w.Sweep); err != nil {
		return err
	}

	w.cron.Start()
	w.logger.Info("Graph cleanup worker started",
		zap.String("dir", w.dir),
		zap.String("schedule", w.schedule),
		zap.Duration("max_age", w.maxAge),
	)
	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (w *CleanupWorker) Stop() {
	ctx := w.cron.Stop()
	<-ctx.Done()
	w.logger.Info("Graph cleanup worker stopped")
}

// Sweep removes every matching file older than maxAge.
func (w *CleanupWorker) Sweep() {
	matches, err := filepath.Glob(filepath.Join(w.dir, graphFilePattern))
	if err != nil {
		w.logger.Warn("Graph sweep failed", zap.Error(err))
		return
	}

	cutoff := time.Now().Add(-w.maxAge)
	removed := 0
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(path); err != nil {
			w.logger.Warn("Failed to remove stale graph", zap.String("path", path), zap.Error(err))
			continue
		}
		removed++
	}

	if removed > 0 {
		w.logger.Info("Stale graphs removed", zap.Int("count", removed))
	}
}
