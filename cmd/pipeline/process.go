package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/watcher"
)

func newProcessCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "process <transcript>...",
		Short: "Process the named transcripts once and move them to the processed folder",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, *configFlag)
			if err != nil {
				return err
			}
			return runProcess(cmd.Context(), cfg, args)
		},
	}
}

func runProcess(ctx context.Context, cfg *config.Config, paths []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := logger.New(cfg.Logging.Level)

	if err := cfg.EnsureDirectories(); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	lock, err := acquireLock(cfg)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	proc, err := buildProcessor(cfg, log)
	if err != nil {
		return err
	}
	store, err := openHistory(cfg)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	if store != nil {
		defer store.Close()
	}

	w, err := watcher.New(watcherOptions(cfg), proc, nil, recorderFor(store), log)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	failed := 0
	for _, path := range paths {
		res := w.HandleFile(ctx, path)
		switch res.Outcome {
		case watcher.OutcomeFailed:
			failed++
		case watcher.OutcomeSkipped:
			log.Warn(ctx, "Skipped %s: %s", path, res.Reason)
		}
	}

	log.Info(ctx, "Done: %d processed or skipped, %d failed", len(paths)-failed, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d transcripts failed", failed, len(paths))
	}
	return nil
}
