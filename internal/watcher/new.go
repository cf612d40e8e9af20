package watcher

import (
	"errors"
	"fmt"
	"sync"

	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/processor"
)

type implWatcher struct {
	opts      Options
	processor processor.Processor
	source    EventSource
	recorder  Recorder
	logger    logger.Logger
	semaphore *semaphore
	wg        sync.WaitGroup

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// New creates a Watcher. recorder may be nil, and so may source when only HandleFile is used.
func New(opts Options, proc processor.Processor, source EventSource, recorder Recorder, log logger.Logger) (Watcher, error) {
	if proc == nil {
		return nil, errors.New("watcher requires a processor")
	}
	if opts.WatchDir == "" || opts.ProcessedDir == "" || opts.OutputDir == "" {
		return nil, fmt.Errorf("watcher requires watch, processed and output directories")
	}
	if opts.Extension == "" {
		opts.Extension = ".txt"
	}
	if opts.OutputSuffix == "" {
		opts.OutputSuffix = "_summary.json"
	}
	// Default to one file at a time
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 1
	}
	if log == nil {
		log = logger.Nop()
	}

	return &implWatcher{
		opts:      opts,
		processor: proc,
		source:    source,
		recorder:  recorder,
		logger:    log,
		semaphore: newSemaphore(opts.MaxConcurrent),
		inFlight:  make(map[string]struct{}),
	}, nil
}
