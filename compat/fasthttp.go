// FILE: lixenwraith/slogger/compat/fasthttp.go
package compat

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/slogger"
	"github.com/valyala/fasthttp"
)

var _ fasthttp.Logger = (*FastHTTPAdapter)(nil)

// FastHTTPAdapter wraps slogger.Logger to implement the fasthttp Logger interface
type FastHTTPAdapter struct {
	logger        *slogger.Logger
	prefix        string
	defaultLevel  slogger.Level
	levelDetector func(string) slogger.Level // Detects the level from message content, LevelNone for no match
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(logger *slogger.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		logger:        logger,
		prefix:        "fasthttp: ",
		defaultLevel:  slogger.LevelInfo,
		levelDetector: DetectLogLevel,
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the level used when detection finds nothing
func WithDefaultLevel(level slogger.Level) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom function to detect log level from message content
func WithLevelDetector(detector func(string) slogger.Level) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// WithFastHTTPPrefix sets the text prepended to every message, "fasthttp: " by default
func WithFastHTTPPrefix(prefix string) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.prefix = prefix
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected := a.levelDetector(msg); detected != slogger.LevelNone {
			level = detected
		}
	}

	a.logger.AddMessage(level, a.prefix+msg)
}

// DetectLogLevel attempts to detect log level from message content
func DetectLogLevel(msg string) slogger.Level {
	msgLower := strings.ToLower(msg)

	if strings.Contains(msgLower, "panic") {
		return slogger.LevelException
	}

	if strings.Contains(msgLower, "fatal") {
		return slogger.LevelFatal
	}

	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") {
		return slogger.LevelError
	}

	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "deprecated") {
		return slogger.LevelWarning
	}

	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return slogger.LevelDebug
	}

	return slogger.LevelNone
}
