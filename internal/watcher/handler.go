package watcher

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// HandleFile runs one transcript through the pipeline and moves it to the processed directory.
// Failures are reported in the Result and never returned; the source stays in place when anything fails.
func (w *implWatcher) HandleFile(ctx context.Context, path string) Result {
	result := Result{
		RunID:     uuid.NewString(),
		Path:      path,
		StartedAt: time.Now(),
	}

	if !w.qualifies(path) {
		return w.finish(ctx, result, OutcomeSkipped, "not a transcript", nil)
	}

	if !w.claim(path) {
		return w.finish(ctx, result, OutcomeSkipped, "already in progress", nil)
	}
	defer w.unclaim(path)

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return w.finish(ctx, result, OutcomeSkipped, "no longer in watch directory", nil)
		}
		return w.finish(ctx, result, OutcomeFailed, "stat failed", err)
	}
	if !info.Mode().IsRegular() {
		return w.finish(ctx, result, OutcomeSkipped, "not a regular file", nil)
	}

	filename := filepath.Base(path)
	result.OutputPath = w.outputPath(filename)
	w.logger.Info(ctx, "Processing: %s [run %s]", filename, result.RunID)

	record, err := w.processor.Process(ctx, path, result.OutputPath)
	if err != nil {
		w.logger.Error(ctx, "Error processing %s: %v", filename, err)
		return w.finish(ctx, result, OutcomeFailed, "pipeline failed", err)
	}
	result.SummaryPoints = len(record.SummaryPoints)
	result.Actions = len(record.ActionsList)

	processedPath, err := w.moveToProcessed(ctx, path)
	if err != nil {
		w.logger.Error(ctx, "Error processing %s: %v", filename, err)
		return w.finish(ctx, result, OutcomeFailed, "move failed", err)
	}
	result.ProcessedPath = processedPath

	w.logger.Info(ctx, "Processing complete and file moved: %s -> %s", filename, result.OutputPath)
	return w.finish(ctx, result, OutcomeProcessed, "", nil)
}

// outputPath swaps the transcript extension for the output suffix under the output directory
func (w *implWatcher) outputPath(filename string) string {
	stem := filename[:len(filename)-len(filepath.Ext(filename))]
	return filepath.Join(w.opts.OutputDir, stem+w.opts.OutputSuffix)
}

func (w *implWatcher) claim(path string) bool {
	key := filepath.Clean(path)
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, busy := w.inFlight[key]; busy {
		return false
	}
	w.inFlight[key] = struct{}{}
	return true
}

func (w *implWatcher) unclaim(path string) {
	w.mu.Lock()
	delete(w.inFlight, filepath.Clean(path))
	w.mu.Unlock()
}

func (w *implWatcher) finish(ctx context.Context, result Result, outcome Outcome, reason string, err error) Result {
	result.Outcome = outcome
	result.Reason = reason
	result.Err = err
	result.FinishedAt = time.Now()

	if outcome == OutcomeSkipped {
		w.logger.Debug(ctx, "Skipped %s: %s", result.Path, reason)
		return result
	}

	if w.recorder != nil {
		if recErr := w.recorder.Record(ctx, result); recErr != nil {
			w.logger.Warn(ctx, "Failed to record history for %s: %v", result.Path, recErr)
		}
	}
	return result
}
