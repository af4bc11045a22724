// FILE: lixenwraith/slogger/format.go
package slogger

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// dumper renders composite values compactly on a single line
var dumper = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Addf formats a printf-style message and enqueues it. The level gate is applied before
// formatting, so filtered calls cost no rendering.
func (l *Logger) Addf(level Level, format string, args ...any) {
	if !l.enabled(level) {
		return
	}
	defer l.recoverFormat()
	l.AddMessage(level, fmt.Sprintf(format, args...))
}

// Add joins args with single spaces and enqueues the result. Strings, numbers, booleans,
// errors, Stringers and times render directly, anything else is dumped by spew.
func (l *Logger) Add(level Level, args ...any) {
	if !l.enabled(level) {
		return
	}
	defer l.recoverFormat()
	l.AddMessage(level, formatArgs(args))
}

// recoverFormat drops a record whose rendering panicked and reports it
func (l *Logger) recoverFormat() {
	if r := recover(); r != nil {
		l.state.TotalDropped.Add(1)
		l.internalLog("dropped message, formatting failed: %v\n", r)
	}
}

// formatArgs renders args as a single space separated string
func formatArgs(args []any) string {
	buf := make([]byte, 0, lineBufferSize)
	for i, arg := range args {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = appendValue(buf, arg)
	}
	return string(buf)
}

// appendValue converts any value to its text representation
func appendValue(buf []byte, v any) []byte {
	switch val := v.(type) {
	case string:
		return append(buf, val...)
	case int:
		return strconv.AppendInt(buf, int64(val), 10)
	case int64:
		return strconv.AppendInt(buf, val, 10)
	case int32:
		return strconv.AppendInt(buf, int64(val), 10)
	case uint:
		return strconv.AppendUint(buf, uint64(val), 10)
	case uint64:
		return strconv.AppendUint(buf, val, 10)
	case uint32:
		return strconv.AppendUint(buf, uint64(val), 10)
	case float32:
		return strconv.AppendFloat(buf, float64(val), 'f', -1, 32)
	case float64:
		return strconv.AppendFloat(buf, val, 'f', -1, 64)
	case bool:
		return strconv.AppendBool(buf, val)
	case nil:
		return append(buf, "nil"...)
	case time.Time:
		return val.Local().AppendFormat(buf, lineTimeFormat)
	case error:
		return append(buf, val.Error()...)
	case fmt.Stringer:
		return append(buf, val.String()...)
	case []byte:
		return hex.AppendEncode(buf, val) // Keeps binary out of the text file
	default:
		var b bytes.Buffer
		dumper.Fdump(&b, val)
		// spew output is multi-line, fold it onto the record line
		return append(buf, bytes.Join(bytes.Fields(b.Bytes()), []byte{' '})...)
	}
}
