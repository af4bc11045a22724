// FILE: lixenwraith/slogger/constant.go
package slogger

// Level is the severity of a record. Records below the logger's minimal level are discarded
// before they reach the queue.
type Level int32

// Log level constants, in gating order
const (
	LevelNone      Level = 0 // No filtering when used as minimal level, no tag when used on a record
	LevelDebug     Level = 1
	LevelDebug2    Level = 2
	LevelWarning   Level = 3
	LevelError     Level = 4
	LevelFatal     Level = 5
	LevelException Level = 6
	LevelInfo      Level = 7
)

// Option names a boolean logger switch
type Option int

// Logger options
const (
	// OptionFileRotation reopens the log file when a record's local calendar day differs
	// from the day the current file was opened
	OptionFileRotation Option = iota
)

// DefaultSeparator is the banner written at the top of every newly opened file
const DefaultSeparator = "##########################################################################\n" +
	"##########################################################################"

// File naming
const (
	defaultFilePath  = "log"
	defaultExtension = "log"
	dateSuffixFormat = "_2006_01_02"
)

// Record rendering
const (
	lineTimeFormat = "2006-01-02 15:04:05.000"
	// Initial capacity of the writer buffer and of the reusable line buffer
	writeBufferSize = 64 * 1024
	lineBufferSize  = 512
)

