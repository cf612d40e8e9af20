package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/watcher"
)

func newWatchCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Process existing transcripts, then watch for new ones until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, *configFlag)
			if err != nil {
				return err
			}
			return runWatch(cmd.Context(), cfg)
		},
	}
}

func runWatch(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Meeting Transcript Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Max sentences: %d, segmenter: %s, whitespace: %s",
		cfg.Summary.MaxSentences, cfg.Segmenter.Engine, cfg.Normalize.Whitespace)

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

	// Subscribe before the startup scan so nothing created meanwhile is missed
	source, err := watcher.NewFSNotifySource(cfg.Paths.Watch)
	if err != nil {
		return err
	}

	w, err := watcher.New(watcherOptions(cfg), proc, source, recorderFor(store), log)
	if err != nil {
		_ = source.Close()
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	log.Info(ctx, "Monitoring: %s", cfg.Paths.Watch)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Processed: %s", cfg.Paths.Processed)
	log.Info(ctx, "Press Ctrl+C to stop")

	doneChan := make(chan error, 1)
	go func() {
		doneChan <- w.Start(ctx)
	}()

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
		cancel()
		return <-doneChan
	case err := <-doneChan:
		if err != nil {
			log.Error(ctx, "Watcher error: %v", err)
		}
		return err
	}
}
