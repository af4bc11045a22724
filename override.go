// FILE: lixenwraith/slogger/override.go
package slogger

import (
	"fmt"
	"strconv"
	"strings"
)

// ApplyOverride applies string key-value overrides to the logger's current configuration.
// Each override should be in the format "key=value".
//
// Example:
//
//	logger := slogger.NewLogger()
//	err := logger.ApplyOverride(
//	    "file_path=/var/log/app/server",
//	    "level=warning",
//	    "rotation=true",
//	)
func (l *Logger) ApplyOverride(overrides ...string) error {
	cfg := l.GetConfig()

	var errors []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errors = append(errors, err)
			continue
		}

		if err := applyConfigField(cfg, key, value); err != nil {
			errors = append(errors, err)
		}
	}

	if len(errors) > 0 {
		return combineConfigErrors(errors)
	}

	return l.ApplyConfig(cfg)
}

// combineConfigErrors combines multiple configuration errors into a single error.
func combineConfigErrors(errors []error) error {
	if len(errors) == 0 {
		return nil
	}
	if len(errors) == 1 {
		return errors[0]
	}

	var sb strings.Builder
	sb.WriteString("slogger: multiple configuration errors:")
	for i, err := range errors {
		errMsg := strings.TrimPrefix(err.Error(), "slogger: ")
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, errMsg))
	}
	return fmt.Errorf("%s", sb.String())
}

// applyConfigField applies a single key-value override to a Config.
func applyConfigField(cfg *Config, key, value string) error {
	switch key {
	case "level":
		// Accept both numeric and named values
		if numVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			level := Level(numVal)
			if !level.valid() {
				return fmtErrorf("invalid level value '%s': out of range", value)
			}
			cfg.Level = levelName(level)
		} else {
			if _, err := ParseLevel(value); err != nil {
				return fmtErrorf("invalid level value '%s': %w", value, err)
			}
			cfg.Level = strings.ToLower(value)
		}

	case "file_path":
		cfg.FilePath = value
	case "extension":
		cfg.Extension = value
	case "separator":
		cfg.Separator = value
	case "sanitize":
		cfg.Sanitize = value
	case "rotation":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for rotation '%s': %w", value, err)
		}
		cfg.Rotation = boolVal

	case "enable_console":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for enable_console '%s': %w", value, err)
		}
		cfg.EnableConsole = boolVal
	case "console_target":
		cfg.ConsoleTarget = value

	case "internal_errors":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for internal_errors '%s': %w", value, err)
		}
		cfg.InternalErrors = boolVal

	default:
		return fmtErrorf("unknown configuration key '%s'", key)
	}

	return nil
}

// levelName returns the lower-case config name of a level
func levelName(level Level) string {
	if level == LevelNone {
		return "none"
	}
	return strings.ToLower(level.String())
}
