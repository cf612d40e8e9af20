package segmenter

import (
	"fmt"

	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/pkg/executor"
)

// New builds the segmenter selected by cfg.Engine
func New(cfg config.SegmenterConfig, exec executor.Executor) (Segmenter, error) {
	switch cfg.Engine {
	case config.EnginePunkt, "":
		return NewPunkt()
	case config.EngineCommand:
		return NewCommand(exec, cfg.Command)
	default:
		return nil, fmt.Errorf("unknown segmenter engine %q", cfg.Engine)
	}
}
