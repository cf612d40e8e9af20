package watcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Start processes transcripts already in the watch directory, then serves creation events.
// The event source is already subscribed, so files arriving during the scan are not lost;
// duplicates are absorbed by HandleFile.
func (w *implWatcher) Start(ctx context.Context) error {
	if w.source == nil {
		return errors.New("watcher has no event source")
	}
	if err := w.scanExisting(ctx); err != nil {
		return err
	}

	w.logger.Info(ctx, "Watching for new meeting transcripts in %s (max concurrent: %d)", w.opts.WatchDir, w.opts.MaxConcurrent)

	for {
		select {
		case <-ctx.Done():
			return w.drain(ctx)

		case event, ok := <-w.source.Events():
			if !ok {
				w.wg.Wait()
				return fmt.Errorf("watcher events channel closed")
			}

			if !w.qualifies(event.Path) {
				w.logger.Debug(ctx, "Ignoring non-transcript file: %s", event.Path)
				continue
			}

			w.logger.Info(ctx, "New transcript detected: %s (%d in progress)", event.Path, w.semaphore.inUse())

			// Acquire a slot (blocks if max concurrent reached)
			if err := w.semaphore.acquire(ctx); err != nil {
				return w.drain(ctx)
			}
			w.wg.Add(1)
			go func(path string) {
				defer w.wg.Done()
				defer w.semaphore.release()

				if !w.settle(ctx) {
					w.logger.Info(ctx, "Shutdown before handling %s; it stays pending", filepath.Base(path))
					return
				}
				// In-flight files run to completion even if shutdown starts now.
				w.HandleFile(context.WithoutCancel(ctx), path)
			}(event.Path)

		case err, ok := <-w.source.Errors():
			if !ok {
				w.wg.Wait()
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the event source
func (w *implWatcher) Stop() error {
	if w.source == nil {
		return nil
	}
	return w.source.Close()
}

func (w *implWatcher) drain(ctx context.Context) error {
	w.logger.Info(ctx, "Stopping watcher...")
	w.wg.Wait()
	w.logger.Info(ctx, "Shutdown complete.")
	return nil
}

// scanExisting handles every qualifying file present at startup, one at a time, in os.ReadDir order.
func (w *implWatcher) scanExisting(ctx context.Context) error {
	w.logger.Info(ctx, "Checking for existing transcripts...")

	if err := os.MkdirAll(w.opts.WatchDir, 0755); err != nil {
		return fmt.Errorf("create watch dir: %w", err)
	}

	entries, err := os.ReadDir(w.opts.WatchDir)
	if err != nil {
		return fmt.Errorf("list watch dir: %w", err)
	}

	found := false
	for _, entry := range entries {
		if ctx.Err() != nil {
			return nil
		}
		if !entry.Type().IsRegular() {
			continue
		}
		path := filepath.Join(w.opts.WatchDir, entry.Name())
		if !w.qualifies(path) {
			continue
		}
		found = true
		// Shutdown is checked between files; a started file runs to completion.
		w.HandleFile(context.WithoutCancel(ctx), path)
	}

	if !found {
		w.logger.Info(ctx, "No existing files found.")
	}
	return nil
}

// qualifies reports whether a path names a visible file with the transcript extension
func (w *implWatcher) qualifies(path string) bool {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") {
		return false
	}
	return strings.EqualFold(filepath.Ext(name), w.opts.Extension)
}

// settle waits for writers to finish the file; it reports false if ctx ends first
func (w *implWatcher) settle(ctx context.Context) bool {
	if w.opts.SettleDelay <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(w.opts.SettleDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
