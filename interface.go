// FILE: lixenwraith/slogger/interface.go
package slogger

// Level-named convenience methods over Add.

// Debug logs args at debug level.
func (l *Logger) Debug(args ...any) {
	l.Add(LevelDebug, args...)
}

// Debug2 logs args at the second debug level.
func (l *Logger) Debug2(args ...any) {
	l.Add(LevelDebug2, args...)
}

// Warning logs args at warning level.
func (l *Logger) Warning(args ...any) {
	l.Add(LevelWarning, args...)
}

// Error logs args at error level.
func (l *Logger) Error(args ...any) {
	l.Add(LevelError, args...)
}

// Fatal logs args at fatal level. The process is not terminated.
func (l *Logger) Fatal(args ...any) {
	l.Add(LevelFatal, args...)
}

// Exception logs args at exception level.
func (l *Logger) Exception(args ...any) {
	l.Add(LevelException, args...)
}

// Info logs args at info level.
func (l *Logger) Info(args ...any) {
	l.Add(LevelInfo, args...)
}

// Message logs args without a level tag.
func (l *Logger) Message(args ...any) {
	l.Add(LevelNone, args...)
}
