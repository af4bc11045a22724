// FILE: lixenwraith/slogger/logger_test.go
package slogger

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lineRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3} \[INFO\] hello world$`)

// TestNewLogger verifies the initial state of a logger
func TestNewLogger(t *testing.T) {
	logger := NewLogger()

	assert.NotNil(t, logger)
	assert.False(t, logger.IsWorking())
	assert.Equal(t, LevelNone, logger.GetMinimalLevel())
	assert.Equal(t, "log", logger.GetFileName())
	assert.Empty(t, logger.CurrentFile())
	assert.False(t, logger.IsOptionSet(OptionFileRotation))
}

// TestStartOpensFileWithBanner verifies the daily file name and the separator banner
func TestStartOpensFileWithBanner(t *testing.T) {
	logger, base := createTestLogger(t)
	assert.True(t, logger.IsWorking())
	assert.Equal(t, todayFile(base), logger.CurrentFile())

	logger.Close()
	assert.False(t, logger.IsWorking())
	assert.Empty(t, logger.CurrentFile())

	data, err := os.ReadFile(todayFile(base))
	require.NoError(t, err)
	assert.Equal(t, "\n"+DefaultSeparator+"\n\n", string(data))
}

// TestAddMessageLineFormat verifies the rendered line layout
func TestAddMessageLineFormat(t *testing.T) {
	logger, base := createTestLogger(t)

	logger.AddMessage(LevelInfo, "hello world")
	logger.AddMessage(LevelNone, "untagged")
	logger.Close()

	lines := readLines(t, todayFile(base))
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Regexp(t, lineRe, lines[len(lines)-2])

	last := lines[len(lines)-1]
	_, err := time.ParseInLocation(lineTimeFormat, last[:len(lineTimeFormat)], time.Local)
	require.NoError(t, err)
	assert.Equal(t, " untagged", last[len(lineTimeFormat):])
}

// TestLevelFiltering verifies records below the minimal level are discarded
func TestLevelFiltering(t *testing.T) {
	logger, base := createTestLogger(t)
	logger.SetMinimalLevel(LevelWarning)

	logger.AddMessage(LevelDebug, "debug")
	logger.AddMessage(LevelDebug2, "debug2")
	logger.AddMessage(LevelNone, "none")
	logger.AddMessage(LevelWarning, "warning")
	logger.AddMessage(LevelError, "error")
	logger.AddMessage(LevelInfo, "info")
	logger.Close()

	assert.Equal(t, []string{"warning", "error", "info"}, recordTexts(t, todayFile(base)))
	assert.Equal(t, uint64(3), logger.Stats().Enqueued)
}

// TestCloseBeforeStart verifies Close on a never started logger is a no-op
func TestCloseBeforeStart(t *testing.T) {
	logger, base, internal := newTestLogger(t)

	assert.NotPanics(t, func() {
		logger.Close()
		logger.Close()
	})
	assert.False(t, logger.IsWorking())
	assert.NoFileExists(t, todayFile(base))
	assert.Empty(t, internal.String())
}

// TestConcurrentClose verifies concurrent Close calls all return and stop the writer once
func TestConcurrentClose(t *testing.T) {
	logger, base := createTestLogger(t)
	for i := 0; i < 100; i++ {
		logger.AddMessage(LevelInfo, fmt.Sprintf("msg %d", i))
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Close()
		}()
	}
	wg.Wait()

	// A Close that lost the race may return before the winner finishes, the final one waits
	logger.Close()
	assert.False(t, logger.IsWorking())
	assert.Len(t, recordTexts(t, todayFile(base)), 100)
}

// TestCloseDrainsQueue verifies every queued record is written before Close returns
func TestCloseDrainsQueue(t *testing.T) {
	logger, base := createTestLogger(t)

	const count = 10000
	for i := 0; i < count; i++ {
		logger.AddMessage(LevelInfo, fmt.Sprintf("msg %d", i))
	}
	logger.Close()

	texts := recordTexts(t, todayFile(base))
	require.Len(t, texts, count)
	for i, text := range texts {
		assert.Equal(t, fmt.Sprintf("msg %d", i), text)
	}

	stats := logger.Stats()
	assert.Equal(t, uint64(count), stats.Written)
	assert.Zero(t, stats.Dropped)
	assert.Zero(t, stats.Queued)
}

// TestRecordsBeforeStart verifies records enqueued while stopped are written after Start
func TestRecordsBeforeStart(t *testing.T) {
	logger, base, _ := newTestLogger(t)

	logger.AddMessage(LevelInfo, "early")
	assert.Equal(t, 1, logger.Stats().Queued)

	logger.Start()
	logger.AddMessage(LevelInfo, "late")
	logger.Close()

	assert.Equal(t, []string{"early", "late"}, recordTexts(t, todayFile(base)))
}

// TestRestart verifies Start on a running logger replaces the writer and keeps appending
func TestRestart(t *testing.T) {
	logger, base := createTestLogger(t)

	logger.AddMessage(LevelInfo, "first")
	logger.Start()
	logger.AddMessage(LevelInfo, "second")
	logger.Close()

	logger.Start()
	logger.AddMessage(LevelInfo, "third")
	logger.Close()

	assert.Equal(t, []string{"first", "second", "third"}, recordTexts(t, todayFile(base)))

	data, err := os.ReadFile(todayFile(base))
	require.NoError(t, err)
	// One banner per open: initial Start, restart, second Start
	assert.Equal(t, 3, strings.Count(string(data), DefaultSeparator))
}

// TestProducerOrder verifies per-producer order and completeness across goroutines
func TestProducerOrder(t *testing.T) {
	logger, base := createTestLogger(t)

	const producers = 8
	const perProducer = 2000

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				logger.Addf(LevelInfo, "p%d %d", p, i)
			}
		}(p)
	}
	wg.Wait()
	logger.Close()

	texts := recordTexts(t, todayFile(base))
	require.Len(t, texts, producers*perProducer)

	next := make([]int, producers)
	for _, text := range texts {
		var p, i int
		_, err := fmt.Sscanf(text, "p%d %d", &p, &i)
		require.NoError(t, err)
		require.Equal(t, next[p], i, "producer %d out of order", p)
		next[p]++
	}
}

// TestFlush verifies Flush returns once earlier records are on disk
func TestFlush(t *testing.T) {
	logger, base, _ := newTestLogger(t)
	assert.ErrorIs(t, logger.Flush(time.Second), ErrNotStarted)

	logger.Start()
	defer logger.Close()

	logger.AddMessage(LevelInfo, "before flush")
	require.NoError(t, logger.Flush(time.Second))

	assert.Equal(t, []string{"before flush"}, recordTexts(t, todayFile(base)))
	assert.Equal(t, uint64(1), logger.Stats().Enqueued, "flush markers are not counted")
}

// TestFlushTimeout verifies Flush gives up while the writer is blocked
func TestFlushTimeout(t *testing.T) {
	logger, _ := createTestLogger(t)
	defer logger.Close()

	logger.fileMu.Lock()
	err := logger.Flush(20 * time.Millisecond)
	logger.fileMu.Unlock()

	assert.ErrorIs(t, err, ErrFlushTimeout)
}

// TestSetFileName verifies the file switch takes effect for subsequent records
func TestSetFileName(t *testing.T) {
	logger, base := createTestLogger(t)
	newBase := filepath.Join(filepath.Dir(base), "renamed")

	logger.AddMessage(LevelInfo, "old")
	require.NoError(t, logger.Flush(time.Second))

	logger.SetFileName(newBase, "txt")
	assert.Equal(t, newBase, logger.GetFileName())
	assert.Equal(t, newBase+time.Now().Format(dateSuffixFormat)+".txt", logger.CurrentFile())

	logger.AddMessage(LevelInfo, "new")
	logger.Close()

	assert.Equal(t, []string{"old"}, recordTexts(t, todayFile(base)))
	assert.Equal(t, []string{"new"}, recordTexts(t, newBase+time.Now().Format(dateSuffixFormat)+".txt"))
}

// TestSetFileNameUnderLoad verifies switching files while producers run neither drops nor
// duplicates records, and that each record lands in the file open when it was written
func TestSetFileNameUnderLoad(t *testing.T) {
	const separator = "=== rename ==="
	const producers = 4
	const perProducer = 2500
	const renames = 20

	logger, base, _ := newTestLogger(t)
	otherBase := base + "_other"
	logger.SetSeparator(separator)
	logger.Start()

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				logger.Addf(LevelInfo, "p%d %d", p, i)
			}
		}(p)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < renames; i++ {
			if i%2 == 0 {
				logger.SetFileName(otherBase, "")
			} else {
				logger.SetFileName(base, "")
			}
			time.Sleep(time.Millisecond)
		}
	}()

	wg.Wait()
	<-done
	logger.Close()
	assert.Zero(t, logger.Stats().Dropped)

	// Opens alternate base, other, base, ... starting with Start
	baseSegments := recordSegments(t, todayFile(base), separator)
	otherSegments := recordSegments(t, todayFile(otherBase), separator)
	require.Len(t, baseSegments, renames/2+1)
	require.Len(t, otherSegments, renames/2)

	var ordered []string
	for i := range baseSegments {
		ordered = append(ordered, baseSegments[i]...)
		if i < len(otherSegments) {
			ordered = append(ordered, otherSegments[i]...)
		}
	}
	require.Len(t, ordered, producers*perProducer)

	// Each producer's sequence continues exactly where it left off across every file switch
	next := make([]int, producers)
	for _, text := range ordered {
		var p, i int
		_, err := fmt.Sscanf(text, "p%d %d", &p, &i)
		require.NoError(t, err)
		require.Equal(t, next[p], i, "producer %d out of order", p)
		next[p]++
	}
	for p := range next {
		assert.Equal(t, perProducer, next[p])
	}
}

// TestRotation verifies the day boundary with rotation enabled and disabled
func TestRotation(t *testing.T) {
	day1 := time.Date(2024, 3, 10, 23, 59, 59, 0, time.Local)
	day2 := time.Date(2024, 3, 11, 0, 0, 1, 0, time.Local)

	tests := []struct {
		name     string
		rotation bool
		day1     []string
		day2     []string
		opened   uint64
	}{
		{name: "rotation on", rotation: true, day1: []string{"one"}, day2: []string{"two"}, opened: 2},
		{name: "rotation off", rotation: false, day1: []string{"one", "two"}, opened: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, base, _ := newTestLogger(t)
			clock := newFakeClock(day1)
			logger.clock = clock.Now
			logger.SetOption(OptionFileRotation, tt.rotation)

			logger.Start()
			logger.AddMessage(LevelInfo, "one")
			require.NoError(t, logger.Flush(time.Second))

			clock.Set(day2)
			logger.AddMessage(LevelInfo, "two")
			logger.Close()

			assert.Equal(t, tt.day1, recordTexts(t, base+"_2024_03_10.log"))
			if tt.day2 != nil {
				assert.Equal(t, tt.day2, recordTexts(t, base+"_2024_03_11.log"))
			} else {
				assert.NoFileExists(t, base+"_2024_03_11.log")
			}
			assert.Equal(t, tt.opened, logger.Stats().FilesOpened)
		})
	}
}

// TestRotationRecordsQueuedBeforeStart verifies records captured on the previous day and
// written after midnight share the file opened by Start instead of reopening it each time
func TestRotationRecordsQueuedBeforeStart(t *testing.T) {
	day1 := time.Date(2024, 3, 10, 23, 59, 59, 0, time.Local)
	day2 := time.Date(2024, 3, 11, 0, 0, 1, 0, time.Local)

	logger, base, _ := newTestLogger(t)
	clock := newFakeClock(day1)
	logger.clock = clock.Now
	logger.SetOption(OptionFileRotation, true)

	for i := 0; i < 5; i++ {
		logger.AddMessage(LevelInfo, fmt.Sprintf("queued %d", i))
	}

	clock.Set(day2)
	logger.Start()
	logger.Close()

	path := base + "_2024_03_11.log"
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), DefaultSeparator))
	assert.Equal(t, []string{"queued 0", "queued 1", "queued 2", "queued 3", "queued 4"}, recordTexts(t, path))
	assert.NoFileExists(t, base+"_2024_03_10.log")
	assert.Equal(t, uint64(1), logger.Stats().FilesOpened)
}

// TestWriteFailureReopens verifies a failed flush drops the buffered records and the next
// batch writes to a freshly opened file
func TestWriteFailureReopens(t *testing.T) {
	logger, base, internal := newTestLogger(t)
	logger.Start()
	defer logger.Close()
	require.NoError(t, logger.Flush(time.Second))

	logger.fileMu.Lock()
	require.NoError(t, logger.sink.file.Close())
	logger.fileMu.Unlock()

	logger.AddMessage(LevelInfo, "lost")
	require.NoError(t, logger.Flush(time.Second))

	stats := logger.Stats()
	assert.Equal(t, uint64(1), stats.Dropped)
	assert.Zero(t, stats.Written)
	assert.Contains(t, internal.String(), "failed to flush log file")

	logger.AddMessage(LevelInfo, "kept")
	require.NoError(t, logger.Flush(time.Second))

	stats = logger.Stats()
	assert.Equal(t, uint64(1), stats.Written)
	assert.Equal(t, uint64(2), stats.FilesOpened)
	assert.Equal(t, []string{"kept"}, recordTexts(t, todayFile(base)))
}

// TestCloseWhileProducing verifies every record enqueued while Close runs is either written
// or still queued for the next Start, never lost
func TestCloseWhileProducing(t *testing.T) {
	logger, base := createTestLogger(t)

	const producers = 4
	const perProducer = 2000

	var wg sync.WaitGroup
	started := make(chan struct{})
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				if p == 0 && i == perProducer/4 {
					close(started)
				}
				logger.Addf(LevelInfo, "p%d %d", p, i)
			}
		}(p)
	}

	<-started
	logger.Close()
	wg.Wait()

	stats := logger.Stats()
	assert.Equal(t, uint64(producers*perProducer), stats.Enqueued)
	assert.Equal(t, stats.Enqueued, stats.Written+uint64(stats.Queued))
	assert.Zero(t, stats.Dropped)
	assert.Len(t, recordTexts(t, todayFile(base)), int(stats.Written))

	logger.Start()
	logger.Close()
	stats = logger.Stats()
	assert.Equal(t, stats.Enqueued, stats.Written)
	assert.Zero(t, stats.Queued)
}

// TestOpenFailure verifies records are dropped and reported once while the file cannot be
// opened, and that writing resumes once it can
func TestOpenFailure(t *testing.T) {
	logger, base, internal := newTestLogger(t)
	missingDir := filepath.Join(filepath.Dir(base), "missing")
	logger.SetFileName(filepath.Join(missingDir, "app"), "")

	logger.Start()
	defer logger.Close()
	assert.Empty(t, logger.CurrentFile())

	for i := 0; i < 3; i++ {
		logger.AddMessage(LevelError, "lost")
	}
	require.NoError(t, logger.Flush(time.Second))

	stats := logger.Stats()
	assert.Equal(t, uint64(3), stats.Dropped)
	assert.Zero(t, stats.Written)
	assert.Equal(t, 1, strings.Count(internal.String(), "failed to open log file"))
	assert.True(t, strings.HasPrefix(internal.String(), "slogger: "))

	require.NoError(t, os.Mkdir(missingDir, 0755))
	logger.AddMessage(LevelError, "kept")
	require.NoError(t, logger.Flush(time.Second))

	assert.Equal(t, uint64(1), logger.Stats().Written)
	assert.Equal(t, []string{"kept"}, recordTexts(t, todayFile(filepath.Join(missingDir, "app"))))
}

// TestInternalErrorsDisabled verifies diagnostics are suppressed when disabled
func TestInternalErrorsDisabled(t *testing.T) {
	logger, base, internal := newTestLogger(t)
	cfg := logger.GetConfig()
	cfg.InternalErrors = false
	cfg.FilePath = filepath.Join(filepath.Dir(base), "missing", "app")
	require.NoError(t, logger.ApplyConfig(cfg))

	logger.Start()
	logger.AddMessage(LevelInfo, "lost")
	logger.Close()

	assert.Empty(t, internal.String())
	assert.Equal(t, uint64(1), logger.Stats().Dropped)
}

// TestConsoleMirror verifies records are mirrored to the console writer
func TestConsoleMirror(t *testing.T) {
	logger, base, _ := newTestLogger(t)
	logger.setConsole(true, "stdout")
	console := &syncBuffer{}
	logger.state.ConsoleWriter.Store(&sink{w: console})

	logger.Start()
	logger.AddMessage(LevelWarning, "mirrored")
	logger.Close()

	assert.Contains(t, console.String(), "[WARNING] mirrored\n")
	assert.Equal(t, []string{"mirrored"}, recordTexts(t, todayFile(base)))
}

// TestApplyConfig verifies config changes and the reopen on file name change
func TestApplyConfig(t *testing.T) {
	logger, base := createTestLogger(t)
	defer logger.Close()

	cfg := logger.GetConfig()
	assert.Equal(t, base, cfg.FilePath)
	assert.Equal(t, "none", cfg.Level)

	newBase := base + "_cfg"
	cfg.FilePath = newBase
	cfg.Extension = "txt"
	cfg.Level = "error"
	cfg.Rotation = true
	require.NoError(t, logger.ApplyConfig(cfg))

	assert.Equal(t, newBase+time.Now().Format(dateSuffixFormat)+".txt", logger.CurrentFile())
	assert.Equal(t, LevelError, logger.GetMinimalLevel())
	assert.True(t, logger.IsOptionSet(OptionFileRotation))

	got := logger.GetConfig()
	assert.Equal(t, "error", got.Level)
	assert.Equal(t, "txt", got.Extension)

	assert.Error(t, logger.ApplyConfig(nil))
	cfg.ConsoleTarget = "printer"
	assert.Error(t, logger.ApplyConfig(cfg))
}

// TestSetSeparator verifies the banner of later opens uses the new separator
func TestSetSeparator(t *testing.T) {
	logger, base := createTestLogger(t)
	logger.SetSeparator("=== restart ===")
	logger.SetFileName(base, "log")
	logger.Close()

	data, err := os.ReadFile(todayFile(base))
	require.NoError(t, err)
	assert.Equal(t, "\n"+DefaultSeparator+"\n\n\n=== restart ===\n\n", string(data))
}

// TestSanitizePolicy verifies multi-line text is folded onto one record line
func TestSanitizePolicy(t *testing.T) {
	logger, base, _ := newTestLogger(t)
	require.NoError(t, logger.ApplyOverride("sanitize=escape"))
	assert.Equal(t, "escape", logger.GetConfig().Sanitize)

	logger.Start()
	logger.AddMessage(LevelInfo, "first\nsecond")
	logger.Close()

	assert.Equal(t, []string{`first\nsecond`}, recordTexts(t, todayFile(base)))
	assert.Error(t, logger.ApplyOverride("sanitize=json"))
}
