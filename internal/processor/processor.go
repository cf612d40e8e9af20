package processor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
	"unicode/utf8"

	"github.com/nguyentantai21042004/transcript-flow/internal/models"
)

// Process reads, normalizes, segments, summarizes, extracts actions and writes the record
func (p *implProcessor) Process(ctx context.Context, inputPath, outputPath string) (models.OutputRecord, error) {
	startTime := time.Now()

	// Step 1: Read transcript
	transcript, err := p.read(inputPath)
	if err != nil {
		return models.OutputRecord{}, err
	}

	// Step 2: Normalize and segment once for both consumers
	cleaned := p.normalizer.Normalize(transcript.Text)
	sentences, err := p.segmenter.Segment(ctx, cleaned)
	if err != nil {
		return models.OutputRecord{}, fmt.Errorf("%w: %v", ErrSegment, err)
	}
	p.logger.Debug(ctx, "Segmented %s into %d sentences", inputPath, len(sentences))

	// Step 3: Summary and action items
	record := models.OutputRecord{
		SummaryPoints: models.Texts(p.summarizer.Summarize(sentences)),
		ActionsList:   p.extractor.Extract(sentences),
	}

	// Step 4: Persist
	record, err = p.writer.Write(record, outputPath)
	if err != nil {
		return models.OutputRecord{}, fmt.Errorf("%w: %v", ErrWrite, err)
	}

	p.logger.Debug(ctx, "Wrote %s (%d summary points, %d actions) in %s",
		outputPath, len(record.SummaryPoints), len(record.ActionsList), time.Since(startTime))

	return record, nil
}

func (p *implProcessor) read(path string) (models.Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.Transcript{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return models.Transcript{}, fmt.Errorf("%w: %v", ErrRead, err)
	}
	if !utf8.Valid(data) {
		return models.Transcript{}, fmt.Errorf("%w: %s", ErrDecode, path)
	}
	return models.Transcript{Source: path, Text: string(data)}, nil
}
