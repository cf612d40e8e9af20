package watcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
)

// moveToProcessed moves a transcript from the watch folder into the processed folder, keeping its name
func (w *implWatcher) moveToProcessed(ctx context.Context, path string) (string, error) {
	if err := os.MkdirAll(w.opts.ProcessedDir, 0755); err != nil {
		return "", fmt.Errorf("create processed dir: %w", err)
	}

	destPath := filepath.Join(w.opts.ProcessedDir, filepath.Base(path))
	w.logger.Debug(ctx, "Moving to processed folder: %s -> %s", path, destPath)

	if err := os.Rename(path, destPath); err != nil {
		// Different filesystem: copy, then remove the source
		if !errors.Is(err, syscall.EXDEV) {
			return "", fmt.Errorf("move to processed: %w", err)
		}
		if err := copyFile(path, destPath); err != nil {
			_ = os.Remove(destPath)
			return "", fmt.Errorf("copy to processed: %w", err)
		}
		if err := os.Remove(path); err != nil {
			return "", fmt.Errorf("remove source after copy: %w", err)
		}
	}

	return destPath, nil
}

// copyFile streams src to dst and syncs it
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	if err := out.Sync(); err != nil {
		return err
	}
	return out.Close()
}
