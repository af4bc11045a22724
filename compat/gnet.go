package compat

import (
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/slogger"
	"github.com/panjf2000/gnet/v2/pkg/logging"
)

var _ logging.Logger = (*GnetAdapter)(nil)

// fatalFlushTimeout bounds the wait for queued records before the fatal handler runs
const fatalFlushTimeout = 100 * time.Millisecond

// GnetAdapter wraps slogger.Logger to implement the gnet logging.Logger interface
type GnetAdapter struct {
	logger       *slogger.Logger
	prefix       string
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(logger *slogger.Logger, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		logger: logger,
		prefix: "gnet: ",
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// WithGnetPrefix sets the text prepended to every message, "gnet: " by default
func WithGnetPrefix(prefix string) GnetOption {
	return func(a *GnetAdapter) {
		a.prefix = prefix
	}
}

// Debugf logs at debug level with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.logger.Addf(slogger.LevelDebug, a.prefix+format, args...)
}

// Infof logs at info level with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.logger.Addf(slogger.LevelInfo, a.prefix+format, args...)
}

// Warnf logs at warning level with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.logger.Addf(slogger.LevelWarning, a.prefix+format, args...)
}

// Errorf logs at error level with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.logger.Addf(slogger.LevelError, a.prefix+format, args...)
}

// Fatalf logs at fatal level, waits for the record to reach the file and triggers the fatal handler
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.logger.AddMessage(slogger.LevelFatal, a.prefix+msg)

	// Ensure log is flushed before exit
	_ = a.logger.Flush(fatalFlushTimeout)

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
