package writer

import "time"

type implWriter struct {
	now func() time.Time
}

// New creates a Writer that stamps records with the wall clock
func New() Writer {
	return &implWriter{now: time.Now}
}

// NewWithClock creates a Writer with an injected clock
func NewWithClock(now func() time.Time) Writer {
	return &implWriter{now: now}
}
