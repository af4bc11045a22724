// FILE: lixenwraith/slogger/state.go
package slogger

import (
	"io"
	"sync/atomic"
)

// State encapsulates the runtime state of the logger
type State struct {
	Working        atomic.Bool  // Writer goroutine running
	MinimalLevel   atomic.Int32 // Stores Level
	FileRotation   atomic.Bool
	EnableConsole  atomic.Bool
	InternalErrors atomic.Bool

	SanitizePolicy atomic.Value // stores string
	Sanitizer      atomic.Value // stores *sanitizer.Sanitizer, read by the writer goroutine only
	ConsoleTarget  atomic.Value // stores string, "stdout" or "stderr"
	ConsoleWriter  atomic.Value // stores *sink
	InternalWriter atomic.Value // stores *sink

	// Statistics
	TotalEnqueued    atomic.Uint64 // Records accepted by the level gate
	TotalWritten     atomic.Uint64 // Records flushed to a file
	TotalDropped     atomic.Uint64 // Records lost to open, write or formatting failures
	TotalFilesOpened atomic.Uint64 // Successful file opens, initial and rotations
}

// sink is a wrapper around an io.Writer, atomic value type change workaround
type sink struct {
	w io.Writer
}

// Stats is a point-in-time copy of the logger counters
type Stats struct {
	Enqueued    uint64
	Written     uint64
	Dropped     uint64
	FilesOpened uint64
	Queued      int // Records waiting for the writer
}

// Stats returns the current counters
func (l *Logger) Stats() Stats {
	return Stats{
		Enqueued:    l.state.TotalEnqueued.Load(),
		Written:     l.state.TotalWritten.Load(),
		Dropped:     l.state.TotalDropped.Load(),
		FilesOpened: l.state.TotalFilesOpened.Load(),
		Queued:      l.queue.len(),
	}
}
