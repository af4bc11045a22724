// FILE: lixenwraith/slogger/default.go
package slogger

import "time"

// Global instance for package-level functions
var defaultLogger = NewLogger()

// Default returns the package-level logger
func Default() *Logger {
	return defaultLogger
}

// Init applies cfg to the package-level logger and starts it
func Init(cfg *Config) error {
	if err := defaultLogger.ApplyConfig(cfg); err != nil {
		return err
	}
	defaultLogger.Start()
	return nil
}

// Start launches the package-level logger
func Start() {
	defaultLogger.Start()
}

// Shutdown drains and closes the package-level logger
func Shutdown() {
	defaultLogger.Close()
}

// AddMessage enqueues text on the package-level logger
func AddMessage(level Level, text string) {
	defaultLogger.AddMessage(level, text)
}

// Addf enqueues a formatted message on the package-level logger
func Addf(level Level, format string, args ...any) {
	defaultLogger.Addf(level, format, args...)
}

// Debug logs args at debug level
func Debug(args ...any) {
	defaultLogger.Debug(args...)
}

// Info logs args at info level
func Info(args ...any) {
	defaultLogger.Info(args...)
}

// Warning logs args at warning level
func Warning(args ...any) {
	defaultLogger.Warning(args...)
}

// Error logs args at error level
func Error(args ...any) {
	defaultLogger.Error(args...)
}

// Fatal logs args at fatal level, the process is not terminated
func Fatal(args ...any) {
	defaultLogger.Fatal(args...)
}

// SetFileName changes the package-level logger file name
func SetFileName(basePath, extension string) {
	defaultLogger.SetFileName(basePath, extension)
}

// SetMinimalLevel sets the package-level logger level gate
func SetMinimalLevel(level Level) {
	defaultLogger.SetMinimalLevel(level)
}

// SetOption switches an option on the package-level logger
func SetOption(option Option, enabled bool) {
	defaultLogger.SetOption(option, enabled)
}

// Flush waits for the package-level logger to write everything queued so far
func Flush(timeout time.Duration) error {
	return defaultLogger.Flush(timeout)
}
