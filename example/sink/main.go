// FILE: main.go
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/slogger"
)

const (
	logDirectory = "./temp_logs"
	logInterval  = 200 * time.Millisecond
)

// main orchestrates the different console mirror scenarios.
func main() {
	// Ensure a clean state by removing the previous log directory.
	if err := os.RemoveAll(logDirectory); err != nil {
		fmt.Printf("Warning: could not remove old log directory: %v\n", err)
	}
	if err := os.MkdirAll(logDirectory, 0755); err != nil {
		fmt.Printf("Fatal: could not create log directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("--- Running Logger Sink Suite ---")
	fmt.Printf("! All file-based logs will be in the '%s' directory.\n\n", logDirectory)

	fmt.Println("--- SCENARIO 1: Testing configurations in isolation (new logger per test) ---")
	testFileOnly()
	testStdoutMirror()
	testStderrMirror()

	fmt.Println("\n--- SCENARIO 2: Testing reconfiguration on a single logger instance ---")
	testReconfigurationTransitions()

	fmt.Println("\n--- Logger Sink Suite Complete ---")
	fmt.Printf("Check the '%s' directory for log files.\n", logDirectory)
}

// testFileOnly tests the default behavior: writing only to a file.
func testFileOnly() {
	logger := slogger.NewLogger()
	runTestPhase(logger, "1.1: File-Only",
		"file_path="+logDirectory+"/file_only",
		"level=debug",
	)
	logger.Close()
}

// testStdoutMirror tests mirroring to the standard output.
func testStdoutMirror() {
	logger := slogger.NewLogger()
	runTestPhase(logger, "1.2: File+Stdout",
		"file_path="+logDirectory+"/stdout_mirror",
		"enable_console=true",
		"level=debug",
	)
	logger.Close()
}

// testStderrMirror tests mirroring to the standard error stream.
func testStderrMirror() {
	fmt.Fprintln(os.Stderr, "\n---")
	logger := slogger.NewLogger()
	runTestPhase(logger, "1.3: File+Stderr",
		"file_path="+logDirectory+"/stderr_mirror",
		"enable_console=true",
		"console_target=stderr",
		"level=debug",
	)
	fmt.Fprintln(os.Stderr, "---")
	logger.Close()
}

// testReconfigurationTransitions tests the logger's ability to handle state changes.
func testReconfigurationTransitions() {
	logger := slogger.NewLogger()

	runTestPhase(logger, "2.1: Reconfig - Initial (File+Stdout)",
		"file_path="+logDirectory+"/reconfig",
		"enable_console=true",
		"level=debug",
	)

	runTestPhase(logger, "2.2: Reconfig - Console off, new file",
		"file_path="+logDirectory+"/reconfig_quiet",
		"enable_console=false",
	)

	runTestPhase(logger, "2.3: Reconfig - Back to File+Stdout",
		"file_path="+logDirectory+"/reconfig",
		"enable_console=true",
	)

	fmt.Println("\n[Phase 2.4: Reconfig - Testing log levels on final state]")
	logger.SetMinimalLevel(slogger.LevelWarning)
	logger.Debug("final-state", "This debug message is filtered.")
	logger.Warning("final-state", "This is a warning message.")
	logger.Error("final-state", "This is an error message.")
	logger.Info("final-state", "This is an info message.")
	time.Sleep(logInterval)

	logger.Close()
}

// runTestPhase is a helper to configure, start and run a standard logging test.
func runTestPhase(logger *slogger.Logger, phaseName string, overrides ...string) {
	fmt.Printf("\n[Phase %s]\n", phaseName)
	fmt.Println("  Config:", overrides)

	if err := logger.ApplyOverride(overrides...); err != nil {
		fmt.Printf("  ERROR: Failed to configure logger: %v\n", err)
		os.Exit(1)
	}
	if !logger.IsWorking() {
		logger.Start()
	}

	logger.Info("event", "start_phase", "name", phaseName)
	time.Sleep(logInterval)
	logger.Info("event", "end_phase", "name", phaseName)
	if err := logger.Flush(time.Second); err != nil {
		fmt.Printf("  WARNING: Flush failed in phase '%s': %v\n", phaseName, err)
	}
}
