package processor

import (
	"errors"

	"github.com/nguyentantai21042004/transcript-flow/internal/extractor"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/normalizer"
	"github.com/nguyentantai21042004/transcript-flow/internal/segmenter"
	"github.com/nguyentantai21042004/transcript-flow/internal/summarizer"
	"github.com/nguyentantai21042004/transcript-flow/internal/writer"
)

// Deps are the collaborators of a pipeline run. They are built once at startup and shared read-only.
type Deps struct {
	Normalizer normalizer.Normalizer
	Segmenter  segmenter.Segmenter
	Summarizer summarizer.Summarizer
	Extractor  extractor.Extractor
	Writer     writer.Writer
	Logger     logger.Logger
}

type implProcessor struct {
	normalizer normalizer.Normalizer
	segmenter  segmenter.Segmenter
	summarizer summarizer.Summarizer
	extractor  extractor.Extractor
	writer     writer.Writer
	logger     logger.Logger
}

// New creates a new Processor instance
func New(d Deps) (Processor, error) {
	if d.Normalizer == nil || d.Segmenter == nil || d.Summarizer == nil || d.Extractor == nil || d.Writer == nil {
		return nil, errors.New("processor requires normalizer, segmenter, summarizer, extractor and writer")
	}
	if d.Logger == nil {
		d.Logger = logger.Nop()
	}
	return &implProcessor{
		normalizer: d.Normalizer,
		segmenter:  d.Segmenter,
		summarizer: d.Summarizer,
		extractor:  d.Extractor,
		writer:     d.Writer,
		logger:     d.Logger,
	}, nil
}
