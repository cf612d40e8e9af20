package processor

import (
	"context"

	"github.com/nguyentantai21042004/transcript-flow/internal/models"
)

// Processor runs the transcript pipeline for one input file.
// It holds no per-file state; callers must not run it twice concurrently on the same path.
type Processor interface {
	Process(ctx context.Context, inputPath, outputPath string) (models.OutputRecord, error)
}
