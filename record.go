// FILE: lixenwraith/slogger/record.go
package slogger

import (
	"time"

	"github.com/lixenwraith/slogger/sanitizer"
)

// Record is a single queued log entry. It is immutable once created and owned by exactly one
// holder at a time: the queue, then the writer's batch.
type Record struct {
	CapturedAt time.Time // Assigned at enqueue, not at write
	Level      Level
	Text       string

	flushed chan struct{} // Non-nil marks a flush request; never rendered
}

// newRecord builds a record stamped with the logger clock
func (l *Logger) newRecord(level Level, text string) Record {
	return Record{
		CapturedAt: l.clock(),
		Level:      level,
		Text:       text,
	}
}

// isMarker reports whether the record is a flush marker rather than a log line
func (r *Record) isMarker() bool {
	return r.flushed != nil
}

// AppendLine appends the rendered line "<YYYY-MM-DD HH:MM:SS.mmm> [<LEVEL>] <text>\n" to buf.
// The level tag and its trailing space are omitted for LevelNone.
func (r *Record) AppendLine(buf []byte) []byte {
	return r.appendLine(buf, nil)
}

// appendLine renders the record with its text passed through san, verbatim when san is nil
func (r *Record) appendLine(buf []byte, san *sanitizer.Sanitizer) []byte {
	buf = r.CapturedAt.Local().AppendFormat(buf, lineTimeFormat)
	buf = append(buf, ' ')
	if tag := r.Level.String(); tag != "" {
		buf = append(buf, '[')
		buf = append(buf, tag...)
		buf = append(buf, ']', ' ')
	}
	if san != nil {
		buf = san.AppendSanitized(buf, r.Text)
	} else {
		buf = append(buf, r.Text...)
	}
	buf = append(buf, '\n')
	return buf
}

// String returns the rendered line without the trailing newline
func (r Record) String() string {
	line := r.AppendLine(make([]byte, 0, lineBufferSize))
	return string(line[:len(line)-1])
}
