package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/extractor"
	"github.com/nguyentantai21042004/transcript-flow/internal/history"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/normalizer"
	"github.com/nguyentantai21042004/transcript-flow/internal/processor"
	"github.com/nguyentantai21042004/transcript-flow/internal/segmenter"
	"github.com/nguyentantai21042004/transcript-flow/internal/summarizer"
	"github.com/nguyentantai21042004/transcript-flow/internal/watcher"
	"github.com/nguyentantai21042004/transcript-flow/internal/writer"
	"github.com/nguyentantai21042004/transcript-flow/pkg/executor"
)

const lockSuffix = ".transcript-flow.lock"

// buildProcessor wires the pipeline stages. Any error here is a startup failure.
func buildProcessor(cfg *config.Config, log logger.Logger) (processor.Processor, error) {
	seg, err := segmenter.New(cfg.Segmenter, executor.New())
	if err != nil {
		return nil, fmt.Errorf("init segmenter: %w", err)
	}

	sum, err := summarizer.New(cfg.Summary.MaxSentences)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalid, err)
	}

	keywords := cfg.Actions.Keywords
	if keywords == nil {
		keywords = extractor.DefaultKeywords
	}
	ex, err := extractor.New(keywords)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalid, err)
	}

	return processor.New(processor.Deps{
		Normalizer: normalizer.New(cfg.Normalize.Whitespace),
		Segmenter:  seg,
		Summarizer: sum,
		Extractor:  ex,
		Writer:     writer.New(),
		Logger:     log,
	})
}

func watcherOptions(cfg *config.Config) watcher.Options {
	return watcher.Options{
		WatchDir:      cfg.Paths.Watch,
		ProcessedDir:  cfg.Paths.Processed,
		OutputDir:     cfg.Paths.Output,
		Extension:     cfg.Watch.Extension,
		OutputSuffix:  cfg.Watch.OutputSuffix,
		SettleDelay:   cfg.Watch.SettleDelay,
		MaxConcurrent: cfg.Performance.MaxConcurrent,
	}
}

// openHistory returns nil when the ledger is disabled (empty paths.history)
func openHistory(cfg *config.Config) (*history.Store, error) {
	if cfg.Paths.History == "" {
		return nil, nil
	}
	return history.Open(cfg.Paths.History)
}

// recorderFor avoids handing the watcher a typed nil
func recorderFor(store *history.Store) watcher.Recorder {
	if store == nil {
		return nil
	}
	return store
}

// lockPath names the lock after the watch directory and keeps it in that directory's parent,
// so neither the watched inputs nor the published outputs ever contain it.
func lockPath(cfg *config.Config) (string, error) {
	watch, err := filepath.Abs(cfg.Paths.Watch)
	if err != nil {
		return "", fmt.Errorf("resolve watch dir: %w", err)
	}
	return filepath.Join(filepath.Dir(watch), "."+filepath.Base(watch)+lockSuffix), nil
}

// acquireLock keeps a second instance from consuming the same watch directory
func acquireLock(cfg *config.Config) (*flock.Flock, error) {
	path, err := lockPath(cfg)
	if err != nil {
		return nil, err
	}
	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, errors.New("another transcript-flow instance is already consuming " + cfg.Paths.Watch)
	}
	return lock, nil
}
