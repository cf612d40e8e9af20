package processor

import "errors"

var (
	// ErrNotFound is returned when the input file vanished before it could be read
	ErrNotFound = errors.New("transcript not found")
	// ErrRead is returned when the input file exists but cannot be read
	ErrRead = errors.New("read transcript")
	// ErrDecode is returned when the input is not valid UTF-8
	ErrDecode = errors.New("transcript is not valid UTF-8")
	// ErrSegment is returned when the segmenter fails; no partial record is written
	ErrSegment = errors.New("segment transcript")
	// ErrWrite is returned when the output record cannot be persisted
	ErrWrite = errors.New("write output")
)
