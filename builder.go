// FILE: lixenwraith/slogger/builder.go
package slogger

// Builder provides a fluent API for building logger configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg *Config
	err error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new, not yet started, Logger with the specified configuration.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	logger := NewLogger()

	if err := logger.ApplyConfig(b.cfg); err != nil {
		return nil, err
	}

	return logger, nil
}

// Config returns a copy of the configuration built so far.
func (b *Builder) Config() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.cfg.Clone(), nil
}

// Level sets the minimal level.
func (b *Builder) Level(level Level) *Builder {
	if !level.valid() {
		b.err = fmtErrorf("invalid level: %d", level)
		return b
	}
	b.cfg.Level = levelName(level)
	return b
}

// LevelString sets the minimal level from its name.
func (b *Builder) LevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	if _, err := ParseLevel(level); err != nil {
		b.err = err
		return b
	}
	b.cfg.Level = level
	return b
}

// FilePath sets the base path of log files.
func (b *Builder) FilePath(path string) *Builder {
	b.cfg.FilePath = path
	return b
}

// Extension sets the log file extension.
func (b *Builder) Extension(ext string) *Builder {
	b.cfg.Extension = ext
	return b
}

// Separator sets the banner written at the top of each file.
func (b *Builder) Separator(separator string) *Builder {
	b.cfg.Separator = separator
	return b
}

// Rotation enables daily file rotation.
func (b *Builder) Rotation(enable bool) *Builder {
	b.cfg.Rotation = enable
	return b
}

// Sanitize selects the policy applied to record text before it is written.
func (b *Builder) Sanitize(policy string) *Builder {
	b.cfg.Sanitize = policy
	return b
}

// EnableConsole enables mirroring records to stdout/stderr.
func (b *Builder) EnableConsole(enable bool) *Builder {
	b.cfg.EnableConsole = enable
	return b
}

// ConsoleTarget selects "stdout" or "stderr" for the console mirror.
func (b *Builder) ConsoleTarget(target string) *Builder {
	b.cfg.ConsoleTarget = target
	return b
}

// InternalErrors enables reporting of logger failures to stdout.
func (b *Builder) InternalErrors(enable bool) *Builder {
	b.cfg.InternalErrors = enable
	return b
}

// Example usage:
// logger, err := slogger.NewBuilder().
//
//	FilePath("/var/log/app/server").
//	LevelString("warning").
//	Rotation(true).
//	Build()
//
// if err == nil {
//
//	 logger.Start()
//	 defer logger.Close()
//	 logger.AddMessage(slogger.LevelInfo, "logger initialized")
//
// }
