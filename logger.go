// FILE: lixenwraith/slogger/logger.go
package slogger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lixenwraith/slogger/sanitizer"
)

// Errors returned by Flush
var (
	ErrNotStarted   = errors.New("slogger: logger not started")
	ErrFlushTimeout = errors.New("slogger: flush timeout")
)

// Logger is an asynchronous file logger. Producers enqueue records from any goroutine,
// a single writer goroutine drains them in batches to a daily named file.
type Logger struct {
	state State
	queue *recordQueue

	fileMu sync.Mutex // Guards sink, held by the writer for a whole batch
	sink   *fileSink

	closeMu sync.Mutex    // Held by the one caller performing Start or Close
	stopCh  chan struct{} // Closed to request writer exit, guarded by closeMu
	doneCh  chan struct{} // Closed by the writer on exit, guarded by closeMu

	clock func() time.Time

	// Writer goroutine only
	lineBuf []byte
	acks    []chan struct{}
}

// NewLogger creates a stopped Logger with default settings
func NewLogger() *Logger {
	cfg := DefaultConfig()
	l := &Logger{
		queue:   newRecordQueue(),
		clock:   time.Now,
		lineBuf: make([]byte, 0, lineBufferSize),
	}

	l.sink = newFileSink(cfg.FilePath, cfg.Extension, cfg.Separator, l.now)
	l.sink.report = l.internalLog
	l.sink.onOpen = func(string) { l.state.TotalFilesOpened.Add(1) }

	l.state.MinimalLevel.Store(int32(LevelNone))
	l.state.InternalErrors.Store(cfg.InternalErrors)
	l.state.InternalWriter.Store(&sink{w: os.Stdout})
	l.setConsole(cfg.EnableConsole, cfg.ConsoleTarget)
	l.setSanitize(cfg.Sanitize)

	return l
}

// now reads the logger clock
func (l *Logger) now() time.Time {
	return l.clock()
}

// ApplyConfig validates and applies a configuration. Level and options take effect for
// subsequent records; a changed file name reopens the file if one is open.
func (l *Logger) ApplyConfig(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("configuration cannot be nil")
	}

	if err := cfg.Validate(); err != nil {
		return fmtErrorf("invalid configuration: %w", err)
	}

	level, _ := ParseLevel(cfg.Level)
	l.state.MinimalLevel.Store(int32(level))
	l.state.FileRotation.Store(cfg.Rotation)
	l.state.InternalErrors.Store(cfg.InternalErrors)
	l.setConsole(cfg.EnableConsole, cfg.ConsoleTarget)
	l.setSanitize(cfg.Sanitize)

	l.fileMu.Lock()
	defer l.fileMu.Unlock()

	l.sink.separator = cfg.Separator
	ext := extensionOrDefault(cfg.Extension)
	if l.sink.basePath != cfg.FilePath || l.sink.extension != ext {
		l.sink.basePath = cfg.FilePath
		l.sink.extension = ext
		if l.sink.isOpen() {
			l.sink.reopen()
		}
	}

	return nil
}

// GetConfig returns a snapshot of the live configuration
func (l *Logger) GetConfig() *Config {
	cfg := DefaultConfig()
	cfg.Level = levelName(l.GetMinimalLevel())
	cfg.Rotation = l.state.FileRotation.Load()
	cfg.Sanitize = l.state.SanitizePolicy.Load().(string)
	cfg.EnableConsole = l.state.EnableConsole.Load()
	cfg.ConsoleTarget = l.state.ConsoleTarget.Load().(string)
	cfg.InternalErrors = l.state.InternalErrors.Load()

	l.fileMu.Lock()
	cfg.FilePath = l.sink.basePath
	cfg.Extension = l.sink.extension
	cfg.Separator = l.sink.separator
	l.fileMu.Unlock()

	return cfg
}

// Start opens the log file and launches the writer goroutine. A running writer is fully
// closed first, so repeated calls never leave an orphaned goroutine.
func (l *Logger) Start() {
	l.closeMu.Lock()
	defer l.closeMu.Unlock()

	l.stopLocked()

	l.fileMu.Lock()
	l.sink.resetRetry()
	l.sink.ensureOpen(l.now(), false)
	l.fileMu.Unlock()

	l.stopCh = make(chan struct{})
	l.doneCh = make(chan struct{})
	l.state.Working.Store(true)
	go l.processLogs(l.stopCh, l.doneCh)
}

// Close stops the writer after it has drained every queued record, then flushes and closes the
// file. Safe to call concurrently and when not running; a caller that finds another Close in
// progress returns immediately without waiting for it.
func (l *Logger) Close() {
	if !l.closeMu.TryLock() {
		return
	}
	defer l.closeMu.Unlock()

	l.stopLocked()
}

// stopLocked joins the writer if running and releases the file, closeMu must be held
func (l *Logger) stopLocked() {
	if l.doneCh != nil {
		close(l.stopCh)
		<-l.doneCh
		l.stopCh = nil
		l.doneCh = nil
		l.state.Working.Store(false)
	}

	l.fileMu.Lock()
	defer l.fileMu.Unlock()
	if err := l.sink.closeFile(); err != nil {
		l.internalLog("%v\n", err)
	}
}

// IsWorking reports whether the writer goroutine is running
func (l *Logger) IsWorking() bool {
	return l.state.Working.Load()
}

// AddMessage enqueues text at the given level. Records below the minimal level are discarded.
// Never blocks on file I/O and never fails; the record is picked up by the next Start if the
// logger is not running.
func (l *Logger) AddMessage(level Level, text string) {
	if !l.enabled(level) {
		return
	}
	l.state.TotalEnqueued.Add(1)
	l.queue.push(l.newRecord(level, text))
}

// enabled applies the level gate
func (l *Logger) enabled(level Level) bool {
	return level >= l.GetMinimalLevel()
}

// Flush waits until every record enqueued before the call is written and flushed to the file
func (l *Logger) Flush(timeout time.Duration) error {
	if !l.state.Working.Load() {
		return ErrNotStarted
	}

	confirmChan := make(chan struct{})
	l.queue.push(Record{CapturedAt: l.now(), flushed: confirmChan})

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-confirmChan:
		return nil
	case <-timer.C:
		return fmt.Errorf("%w after %v", ErrFlushTimeout, timeout)
	}
}

// SetFileName changes the base path and extension and reopens the file immediately under the
// new name. Blocks while a batch is being written. An empty extension selects "log".
func (l *Logger) SetFileName(basePath, extension string) {
	l.fileMu.Lock()
	defer l.fileMu.Unlock()

	l.sink.basePath = basePath
	l.sink.extension = extensionOrDefault(extension)
	l.sink.reopen()
}

// GetFileName returns the configured base path
func (l *Logger) GetFileName() string {
	l.fileMu.Lock()
	defer l.fileMu.Unlock()
	return l.sink.basePath
}

// CurrentFile returns the path of the open log file, empty when no file is open
func (l *Logger) CurrentFile() string {
	l.fileMu.Lock()
	defer l.fileMu.Unlock()
	return l.sink.currentPath()
}

// SetSeparator changes the banner written by subsequent file opens
func (l *Logger) SetSeparator(separator string) {
	l.fileMu.Lock()
	defer l.fileMu.Unlock()
	l.sink.separator = separator
}

// SetOption switches a named option
func (l *Logger) SetOption(option Option, enabled bool) {
	switch option {
	case OptionFileRotation:
		l.state.FileRotation.Store(enabled)
	}
}

// IsOptionSet reports the value of a named option, false for unknown options
func (l *Logger) IsOptionSet(option Option) bool {
	switch option {
	case OptionFileRotation:
		return l.state.FileRotation.Load()
	default:
		return false
	}
}

// SetMinimalLevel sets the level gate for subsequent AddMessage calls
func (l *Logger) SetMinimalLevel(level Level) {
	l.state.MinimalLevel.Store(int32(level))
}

// GetMinimalLevel returns the current level gate
func (l *Logger) GetMinimalLevel() Level {
	return Level(l.state.MinimalLevel.Load())
}

// setConsole configures the console mirror
func (l *Logger) setConsole(enable bool, target string) {
	var writer io.Writer = io.Discard
	if enable {
		if target == "stderr" {
			writer = os.Stderr
		} else {
			writer = os.Stdout
		}
	}
	l.state.ConsoleTarget.Store(target)
	l.state.ConsoleWriter.Store(&sink{w: writer})
	l.state.EnableConsole.Store(enable)
}

// setSanitize selects the record text policy
func (l *Logger) setSanitize(policy string) {
	l.state.Sanitizer.Store(sanitizer.New().Policy(sanitizer.PolicyPreset(policy)))
	l.state.SanitizePolicy.Store(policy)
}

// setInternalWriter redirects internal diagnostics
func (l *Logger) setInternalWriter(w io.Writer) {
	l.state.InternalWriter.Store(&sink{w: w})
}

// internalLog handles writing internal logger diagnostics, if enabled
func (l *Logger) internalLog(format string, args ...any) {
	if !l.state.InternalErrors.Load() {
		return
	}

	// Errors built with fmtErrorf already carry the prefix
	msg := fmt.Sprintf(format, args...)
	if !strings.HasPrefix(msg, "slogger: ") {
		msg = "slogger: " + msg
	}

	out := l.state.InternalWriter.Load().(*sink)
	io.WriteString(out.w, msg)
}

// extensionOrDefault maps an empty extension to the default one
func extensionOrDefault(ext string) string {
	if ext == "" {
		return defaultExtension
	}
	return ext
}
