// FILE: lixenwraith/slogger/storage.go
package slogger

import (
	"bufio"
	"cmp"
	"os"
	"time"
)

// fileSink owns the log file handle and the daily rotation state.
// All methods must be called with the logger's fileMu held.
type fileSink struct {
	basePath  string
	extension string
	separator string

	file     *os.File
	writer   *bufio.Writer
	openedAt time.Time // Local time of the last successful open

	clock  func() time.Time
	onOpen func(path string)                // Called after every successful open
	report func(format string, args ...any) // Internal diagnostics side channel

	failing   bool // Opens have failed since the last success
	retryHeld bool // No open attempt until the next batch, set by a failed open or abandon
}

func newFileSink(basePath, extension, separator string, clock func() time.Time) *fileSink {
	return &fileSink{
		basePath:  basePath,
		extension: extension,
		separator: separator,
		clock:     clock,
		report:    func(string, ...any) {},
	}
}

// compareLocalDay orders the local calendar days of t1 and t2: -1 if t1's day is earlier,
// 0 on the same day, +1 if later
func compareLocalDay(t1, t2 time.Time) int {
	y1, m1, d1 := t1.Local().Date()
	y2, m2, d2 := t2.Local().Date()
	if c := cmp.Compare(y1, y2); c != 0 {
		return c
	}
	if c := cmp.Compare(m1, m2); c != 0 {
		return c
	}
	return cmp.Compare(d1, d2)
}

// isOpen reports whether a handle is currently held
func (s *fileSink) isOpen() bool {
	return s.file != nil
}

// fileNameFor returns "<basePath>_YYYY_MM_DD.<extension>" for the local day of t
func (s *fileSink) fileNameFor(t time.Time) string {
	return s.basePath + t.Local().Format(dateSuffixFormat) + "." + s.extension
}

// ensureOpen opens a file when none is held, and with rotation enabled reopens the file when
// referenceTime is on a later local day than the current file's open time. Records captured
// before the open day, e.g. queued before a Start after midnight, stay in the current file.
// Returns false when no handle is available afterwards.
func (s *fileSink) ensureOpen(referenceTime time.Time, rotation bool) bool {
	if !s.isOpen() {
		if s.retryHeld {
			// A failed open is retried once per batch, see resetRetry
			return false
		}
		return s.reopen()
	}
	if rotation && compareLocalDay(referenceTime, s.openedAt) > 0 {
		return s.reopen()
	}
	return true
}

// resetRetry allows the next ensureOpen to attempt an open again after a failure
func (s *fileSink) resetRetry() {
	s.retryHeld = false
}

// reopen closes any held handle, opens the file for the current local day in append mode and
// writes the separator banner. On failure the sink is left without a handle.
func (s *fileSink) reopen() bool {
	if err := s.closeFile(); err != nil {
		s.report("%v\n", err)
	}

	now := s.clock()
	path := s.fileNameFor(now)

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		if !s.failing {
			s.report("failed to open log file '%s': %v\n", path, err)
		}
		s.failing = true
		s.retryHeld = true
		return false
	}

	s.file = file
	s.failing = false
	s.retryHeld = false
	if s.writer == nil {
		s.writer = bufio.NewWriterSize(file, writeBufferSize)
	} else {
		s.writer.Reset(file)
	}
	s.openedAt = now.Local()

	s.writer.WriteByte('\n')
	s.writer.WriteString(s.separator)
	s.writer.WriteString("\n\n")

	if s.onOpen != nil {
		s.onOpen(path)
	}
	return true
}

// write buffers one rendered line. No-op without an open handle.
func (s *fileSink) write(line []byte) error {
	if !s.isOpen() {
		return nil
	}
	if _, err := s.writer.Write(line); err != nil {
		return fmtErrorf("failed to write to log file '%s': %w", s.file.Name(), err)
	}
	return nil
}

// flush pushes buffered bytes to the file
func (s *fileSink) flush() error {
	if !s.isOpen() {
		return nil
	}
	if err := s.writer.Flush(); err != nil {
		return fmtErrorf("failed to flush log file '%s': %w", s.file.Name(), err)
	}
	return nil
}

// abandon releases the handle without flushing after a write or flush failure. The buffered
// bytes are discarded with the sticky writer error, and the next open waits for resetRetry.
func (s *fileSink) abandon() {
	if !s.isOpen() {
		return
	}
	s.file.Close()
	s.file = nil
	s.retryHeld = true
}

// closeFile flushes and releases the handle
func (s *fileSink) closeFile() error {
	if !s.isOpen() {
		return nil
	}
	err := s.flush()
	if closeErr := s.file.Close(); closeErr != nil {
		err = combineErrors(err, fmtErrorf("failed to close log file '%s': %w", s.file.Name(), closeErr))
	}
	s.file = nil
	return err
}

// currentPath returns the path of the open file, empty when none
func (s *fileSink) currentPath() string {
	if !s.isOpen() {
		return ""
	}
	return s.file.Name()
}
