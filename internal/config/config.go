package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalid marks a configuration that must stop the process before the watch loop starts.
var ErrInvalid = errors.New("invalid configuration")

const (
	WhitespaceSingle = "single"
	WhitespaceStrip  = "strip"

	EnginePunkt   = "punkt"
	EngineCommand = "command"
)

type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	Summary     SummaryConfig     `yaml:"summary"`
	Actions     ActionsConfig     `yaml:"actions"`
	Normalize   NormalizeConfig   `yaml:"normalize"`
	Segmenter   SegmenterConfig   `yaml:"segmenter"`
	Watch       WatchConfig       `yaml:"watch"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type PathsConfig struct {
	Watch     string `yaml:"watch"`
	Processed string `yaml:"processed"`
	Output    string `yaml:"output"`
	History   string `yaml:"history"`
}

type SummaryConfig struct {
	MaxSentences int `yaml:"max_sentences"`
}

// ActionsConfig holds the keyword lexicon override. A nil slice selects the built-in lexicon.
type ActionsConfig struct {
	Keywords []string `yaml:"keywords"`
}

type NormalizeConfig struct {
	Whitespace string `yaml:"whitespace"`
}

type SegmenterConfig struct {
	Engine  string   `yaml:"engine"`
	Command []string `yaml:"command"`
}

type WatchConfig struct {
	Extension    string        `yaml:"extension"`
	OutputSuffix string        `yaml:"output_suffix"`
	SettleDelay  time.Duration `yaml:"settle_delay"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Default returns the configuration used when no config file is present
func Default() *Config {
	cfg := &Config{
		Paths: PathsConfig{
			Watch:     "input",
			Processed: "processed",
			Output:    "output",
			History:   "data/history.db",
		},
		Summary: SummaryConfig{MaxSentences: 5},
		Watch: WatchConfig{
			SettleDelay: 500 * time.Millisecond,
		},
	}
	_ = cfg.Validate()
	return cfg
}

// Validate rejects unusable settings and fills defaults for the optional ones.
func (c *Config) Validate() error {
	if c.Paths.Watch == "" {
		return invalid("paths.watch is required")
	}
	if c.Paths.Processed == "" {
		return invalid("paths.processed is required")
	}
	if c.Paths.Output == "" {
		return invalid("paths.output is required")
	}
	if c.Summary.MaxSentences <= 0 {
		return invalid("summary.max_sentences must be positive, got %d", c.Summary.MaxSentences)
	}
	if c.Actions.Keywords != nil && len(nonBlank(c.Actions.Keywords)) == 0 {
		return invalid("actions.keywords must not be empty")
	}

	c.Normalize.Whitespace = strings.ToLower(strings.TrimSpace(c.Normalize.Whitespace))
	switch c.Normalize.Whitespace {
	case "":
		c.Normalize.Whitespace = WhitespaceSingle
	case WhitespaceSingle, WhitespaceStrip:
	default:
		return invalid("normalize.whitespace must be %q or %q, got %q", WhitespaceSingle, WhitespaceStrip, c.Normalize.Whitespace)
	}

	c.Segmenter.Engine = strings.ToLower(strings.TrimSpace(c.Segmenter.Engine))
	switch c.Segmenter.Engine {
	case "":
		c.Segmenter.Engine = EnginePunkt
	case EnginePunkt:
	case EngineCommand:
		if len(c.Segmenter.Command) == 0 || strings.TrimSpace(c.Segmenter.Command[0]) == "" {
			return invalid("segmenter.command is required when engine is %q", EngineCommand)
		}
	default:
		return invalid("segmenter.engine must be %q or %q, got %q", EnginePunkt, EngineCommand, c.Segmenter.Engine)
	}

	if c.Watch.Extension == "" {
		c.Watch.Extension = ".txt"
	}
	if !strings.HasPrefix(c.Watch.Extension, ".") {
		c.Watch.Extension = "." + c.Watch.Extension
	}
	if c.Watch.OutputSuffix == "" {
		c.Watch.OutputSuffix = "_summary.json"
	}
	if c.Watch.SettleDelay < 0 {
		return invalid("watch.settle_delay must not be negative")
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 1
	}
	if c.Performance.MaxConcurrent < 0 {
		return invalid("performance.max_concurrent must be positive, got %d", c.Performance.MaxConcurrent)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

func nonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
