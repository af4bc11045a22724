package compat

import (
	"fmt"
	"os"

	"github.com/lixenwraith/slogger"
)

// FiberAdapter wraps slogger.Logger to implement Fiber's CommonLogger interface
// (Logger, FormatLogger and WithLogger) without importing fiber
type FiberAdapter struct {
	logger       *slogger.Logger
	prefix       string
	fatalHandler func(msg string) // Customizable fatal behavior
	panicHandler func(msg string) // Customizable panic behavior
}

// NewFiberAdapter creates a new Fiber-compatible logger adapter
func NewFiberAdapter(logger *slogger.Logger, opts ...FiberOption) *FiberAdapter {
	adapter := &FiberAdapter{
		logger: logger,
		prefix: "fiber: ",
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior
		},
		panicHandler: func(msg string) {
			panic(msg) // Default behavior
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FiberOption allows customizing adapter behavior
type FiberOption func(*FiberAdapter)

// WithFiberFatalHandler sets a custom fatal handler
func WithFiberFatalHandler(handler func(string)) FiberOption {
	return func(a *FiberAdapter) {
		a.fatalHandler = handler
	}
}

// WithFiberPanicHandler sets a custom panic handler
func WithFiberPanicHandler(handler func(string)) FiberOption {
	return func(a *FiberAdapter) {
		a.panicHandler = handler
	}
}

// WithFiberPrefix sets the text prepended to every message, "fiber: " by default
func WithFiberPrefix(prefix string) FiberOption {
	return func(a *FiberAdapter) {
		a.prefix = prefix
	}
}

// log enqueues msg at level behind the prefix
func (a *FiberAdapter) log(level slogger.Level, msg string) {
	a.logger.AddMessage(level, a.prefix+msg)
}

// logw enqueues msg followed by the key-value pairs, rendered space separated
func (a *FiberAdapter) logw(level slogger.Level, msg string, keysAndValues []any) {
	args := make([]any, 0, len(keysAndValues)+1)
	args = append(args, a.prefix+msg)
	args = append(args, keysAndValues...)
	a.logger.Add(level, args...)
}

// logFatal writes msg at fatal level, waits for it to reach the file and triggers the fatal handler
func (a *FiberAdapter) logFatal(msg string) {
	a.log(slogger.LevelFatal, msg)
	_ = a.logger.Flush(fatalFlushTimeout)
	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}

// logPanic writes msg at exception level, waits for it to reach the file and triggers the panic handler
func (a *FiberAdapter) logPanic(msg string) {
	a.log(slogger.LevelException, msg)
	_ = a.logger.Flush(fatalFlushTimeout)
	if a.panicHandler != nil {
		a.panicHandler(msg)
	}
}

// --- Logger interface ---

// Trace logs at debug level, marked as trace
func (a *FiberAdapter) Trace(v ...any) {
	a.log(slogger.LevelDebug, "trace: "+fmt.Sprint(v...))
}

// Debug logs at debug level
func (a *FiberAdapter) Debug(v ...any) {
	a.log(slogger.LevelDebug, fmt.Sprint(v...))
}

// Info logs at info level
func (a *FiberAdapter) Info(v ...any) {
	a.log(slogger.LevelInfo, fmt.Sprint(v...))
}

// Warn logs at warning level
func (a *FiberAdapter) Warn(v ...any) {
	a.log(slogger.LevelWarning, fmt.Sprint(v...))
}

// Error logs at error level
func (a *FiberAdapter) Error(v ...any) {
	a.log(slogger.LevelError, fmt.Sprint(v...))
}

// Fatal logs at fatal level and triggers the fatal handler
func (a *FiberAdapter) Fatal(v ...any) {
	a.logFatal(fmt.Sprint(v...))
}

// Panic logs at exception level and triggers the panic handler
func (a *FiberAdapter) Panic(v ...any) {
	a.logPanic(fmt.Sprint(v...))
}

// Write makes FiberAdapter an io.Writer for fiber's output redirection, one record per call
func (a *FiberAdapter) Write(p []byte) (n int, err error) {
	msg := string(p)
	// Trim trailing newline if present
	if len(msg) > 0 && msg[len(msg)-1] == '\n' {
		msg = msg[:len(msg)-1]
	}
	a.log(slogger.LevelInfo, msg)
	return len(p), nil
}

// --- FormatLogger interface ---

// Tracef logs at debug level with printf-style formatting, marked as trace
func (a *FiberAdapter) Tracef(format string, v ...any) {
	a.log(slogger.LevelDebug, "trace: "+fmt.Sprintf(format, v...))
}

// Debugf logs at debug level with printf-style formatting
func (a *FiberAdapter) Debugf(format string, v ...any) {
	a.logger.Addf(slogger.LevelDebug, a.prefix+format, v...)
}

// Infof logs at info level with printf-style formatting
func (a *FiberAdapter) Infof(format string, v ...any) {
	a.logger.Addf(slogger.LevelInfo, a.prefix+format, v...)
}

// Warnf logs at warning level with printf-style formatting
func (a *FiberAdapter) Warnf(format string, v ...any) {
	a.logger.Addf(slogger.LevelWarning, a.prefix+format, v...)
}

// Errorf logs at error level with printf-style formatting
func (a *FiberAdapter) Errorf(format string, v ...any) {
	a.logger.Addf(slogger.LevelError, a.prefix+format, v...)
}

// Fatalf logs at fatal level and triggers the fatal handler
func (a *FiberAdapter) Fatalf(format string, v ...any) {
	a.logFatal(fmt.Sprintf(format, v...))
}

// Panicf logs at exception level and triggers the panic handler
func (a *FiberAdapter) Panicf(format string, v ...any) {
	a.logPanic(fmt.Sprintf(format, v...))
}

// --- WithLogger interface ---

// Tracew logs at debug level with key-value pairs, marked as trace
func (a *FiberAdapter) Tracew(msg string, keysAndValues ...any) {
	a.logw(slogger.LevelDebug, "trace: "+msg, keysAndValues)
}

// Debugw logs at debug level with key-value pairs
func (a *FiberAdapter) Debugw(msg string, keysAndValues ...any) {
	a.logw(slogger.LevelDebug, msg, keysAndValues)
}

// Infow logs at info level with key-value pairs
func (a *FiberAdapter) Infow(msg string, keysAndValues ...any) {
	a.logw(slogger.LevelInfo, msg, keysAndValues)
}

// Warnw logs at warning level with key-value pairs
func (a *FiberAdapter) Warnw(msg string, keysAndValues ...any) {
	a.logw(slogger.LevelWarning, msg, keysAndValues)
}

// Errorw logs at error level with key-value pairs
func (a *FiberAdapter) Errorw(msg string, keysAndValues ...any) {
	a.logw(slogger.LevelError, msg, keysAndValues)
}

// Fatalw logs at fatal level with key-value pairs and triggers the fatal handler
func (a *FiberAdapter) Fatalw(msg string, keysAndValues ...any) {
	a.logw(slogger.LevelFatal, msg, keysAndValues)
	_ = a.logger.Flush(fatalFlushTimeout)
	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}

// Panicw logs at exception level with key-value pairs and triggers the panic handler
func (a *FiberAdapter) Panicw(msg string, keysAndValues ...any) {
	a.logw(slogger.LevelException, msg, keysAndValues)
	_ = a.logger.Flush(fatalFlushTimeout)
	if a.panicHandler != nil {
		a.panicHandler(msg)
	}
}
