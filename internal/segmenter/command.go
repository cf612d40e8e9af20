package segmenter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/nguyentantai21042004/transcript-flow/internal/models"
	"github.com/nguyentantai21042004/transcript-flow/pkg/executor"
)

type commandSegmenter struct {
	executor executor.Executor
	name     string
	args     []string
}

// NewCommand delegates segmentation to an external process.
// The text is written to its stdin and each non-blank stdout line is one sentence.
func NewCommand(exec executor.Executor, argv []string) (Segmenter, error) {
	if exec == nil {
		return nil, errors.New("command segmenter requires an executor")
	}
	if len(argv) == 0 || strings.TrimSpace(argv[0]) == "" {
		return nil, errors.New("command segmenter requires a command")
	}
	return &commandSegmenter{
		executor: exec,
		name:     argv[0],
		args:     argv[1:],
	}, nil
}

func (c *commandSegmenter) Segment(ctx context.Context, text string) ([]models.Sentence, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	out, err := c.executor.ExecuteWithInput(ctx, text, c.name, c.args...)
	if err != nil {
		return nil, fmt.Errorf("run segmenter: %w", err)
	}
	if !utf8.ValidString(out) {
		return nil, errors.New("segmenter output is not valid UTF-8")
	}

	sentences := indexed(strings.Split(out, "\n"))
	if len(sentences) == 0 {
		return nil, errors.New("segmenter returned no sentences for non-empty text")
	}
	return sentences, nil
}
