// FILE: lixenwraith/slogger/utility.go
package slogger

import (
	"fmt"
	"strings"
)

// String returns the tag written between brackets in a rendered line, empty for LevelNone
func (lv Level) String() string {
	switch lv {
	case LevelDebug:
		return "DEBUG"
	case LevelDebug2:
		return "DEBUG2"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	case LevelException:
		return "EXCEPTION"
	case LevelInfo:
		return "INFO"
	default:
		return ""
	}
}

// valid reports whether lv is one of the defined levels
func (lv Level) valid() bool {
	return lv >= LevelNone && lv <= LevelInfo
}

// ParseLevel converts a level name to its constant. Matching is case-insensitive,
// "none" and the empty string map to LevelNone.
func ParseLevel(levelStr string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "", "none":
		return LevelNone, nil
	case "debug":
		return LevelDebug, nil
	case "debug2":
		return LevelDebug2, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	case "exception":
		return LevelException, nil
	case "info":
		return LevelInfo, nil
	default:
		return LevelNone, fmtErrorf("invalid level string: '%s' (use none, debug, debug2, warning, error, fatal, exception, info)", levelStr)
	}
}

// fmtErrorf wrapper
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "slogger: ") {
		format = "slogger: " + format
	}
	return fmt.Errorf(format, args...)
}

// combineErrors helper
func combineErrors(err1, err2 error) error {
	if err1 == nil {
		return err2
	}
	if err2 == nil {
		return err1
	}
	return fmt.Errorf("%v; %w", err1, err2)
}

// parseKeyValue splits a "key=value" string.
func parseKeyValue(arg string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(arg), "=", 2)
	if len(parts) != 2 {
		return "", "", fmtErrorf("invalid format in override string '%s', expected key=value", arg)
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", fmtErrorf("key cannot be empty in override string '%s'", arg)
	}
	return key, value, nil
}
