package logger

import (
	"context"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

const (
	colorReset  = "\033[0m"
	colorGray   = "\033[90m"
	colorCyan   = "\033[36m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
)

var levelOrder = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

type implLogger struct {
	logger *log.Logger
	level  string
	color  bool
}

// New creates a Logger writing to stdout. Level tags are colored when stdout is a terminal.
func New(level string) Logger {
	fd := os.Stdout.Fd()
	color := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	return newLogger(os.Stdout, level, color)
}

// NewWithWriter creates an uncolored Logger writing to w
func NewWithWriter(w io.Writer, level string) Logger {
	return newLogger(w, level, false)
}

// Nop returns a Logger that discards everything
func Nop() Logger {
	return newLogger(io.Discard, "error", false)
}

func newLogger(w io.Writer, level string, color bool) *implLogger {
	return &implLogger{
		logger: log.New(w, "", log.LstdFlags),
		level:  strings.ToLower(level),
		color:  color,
	}
}

func (l *implLogger) shouldLog(level string) bool {
	currentLevel, ok := levelOrder[l.level]
	if !ok {
		currentLevel = 1 // default to info
	}

	targetLevel, ok := levelOrder[level]
	if !ok {
		return true
	}

	return targetLevel >= currentLevel
}

func (l *implLogger) tag(level, color string) string {
	label := "[" + strings.ToUpper(level) + "] "
	if !l.color {
		return label
	}
	return color + label + colorReset
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("debug") {
		l.logger.Printf(l.tag("debug", colorGray)+msg, args...)
	}
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("info") {
		l.logger.Printf(l.tag("info", colorCyan)+msg, args...)
	}
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("warn") {
		l.logger.Printf(l.tag("warn", colorYellow)+msg, args...)
	}
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("error") {
		l.logger.Printf(l.tag("error", colorRed)+msg, args...)
	}
}
