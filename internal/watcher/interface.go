package watcher

import (
	"context"
	"time"
)

// Watcher discovers transcripts in the watch directory and runs each through the pipeline once
type Watcher interface {
	// Start processes existing files, then consumes creation events until ctx is cancelled.
	// In-flight files are allowed to finish before it returns.
	Start(ctx context.Context) error
	// HandleFile runs the per-file handler synchronously
	HandleFile(ctx context.Context, path string) Result
	Stop() error
}

// Event announces a file created in the watch directory
type Event struct {
	Path string
}

// EventSource publishes creation events for one directory, non-recursively
type EventSource interface {
	Events() <-chan Event
	Errors() <-chan error
	Close() error
}

// Recorder stores the outcome of each handled file
type Recorder interface {
	Record(ctx context.Context, result Result) error
}

// Outcome is the final state of one handled file
type Outcome string

const (
	// OutcomeProcessed means the record was written and the source moved to the processed directory
	OutcomeProcessed Outcome = "processed"
	// OutcomeSkipped means the path did not qualify, vanished, or was already being handled
	OutcomeSkipped Outcome = "skipped"
	// OutcomeFailed means the source was left in the watch directory
	OutcomeFailed Outcome = "failed"
)

// Result is what the per-file handler reports back to the loop
type Result struct {
	RunID         string
	Path          string
	OutputPath    string
	ProcessedPath string
	Outcome       Outcome
	Reason        string
	Err           error
	SummaryPoints int
	Actions       int
	StartedAt     time.Time
	FinishedAt    time.Time
}

// Options configure directories and scheduling
type Options struct {
	WatchDir      string
	ProcessedDir  string
	OutputDir     string
	Extension     string
	OutputSuffix  string
	SettleDelay   time.Duration
	MaxConcurrent int
}
