package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/lixenwraith/slogger"
	"github.com/urfave/cli/v3"
)

const configFile = "stress_config.toml"

// Example TOML content for stress test
var tomlContent = `
# Example stress_config.toml
[slogger]
  level = "debug"
  file_path = "./logs/multiThreadTest"
  extension = "log"
  rotation = true
  enable_console = false
  internal_errors = true
`

var logger *slogger.Logger

// worker writes msgCount records through the async logger
func worker(id, msgCount int, wait time.Duration, stopChan <-chan struct{}, wg *sync.WaitGroup, sent *atomic.Int64) {
	defer wg.Done()
	for i := 0; i < msgCount; i++ {
		select {
		case <-stopChan:
			return
		default:
		}
		if wait > 0 {
			time.Sleep(wait)
		}
		logger.Addf(slogger.LevelDebug, "thread %d iter %d", id, i)
		sent.Add(1)
	}
}

// lockedWorker writes msgCount lines directly to a shared file under a mutex, the baseline
// the async logger is compared against
func lockedWorker(id, msgCount int, wait time.Duration, mu *sync.Mutex, w *bufio.Writer, wg *sync.WaitGroup) {
	defer wg.Done()
	for i := 0; i < msgCount; i++ {
		if wait > 0 {
			time.Sleep(wait)
		}
		mu.Lock()
		fmt.Fprintf(w, "%s [DEBUG] thread %d iter %d\n", time.Now().Format("2006-01-02 15:04:05.000"), id, i)
		mu.Unlock()
	}
}

func runLocked(path string, threads, msgCount int, wait time.Duration) (time.Duration, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	var mu sync.Mutex
	var wg sync.WaitGroup

	start := time.Now()
	for i := 0; i < threads; i++ {
		wg.Add(1)
		go lockedWorker(i, msgCount, wait, &mu, w, &wg)
	}
	wg.Wait()
	err = w.Flush()
	return time.Since(start), err
}

func main() {
	cmd := &cli.Command{
		Name:  "stress",
		Usage: "compare the async logger against mutex guarded direct writes",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "threads",
				Aliases: []string{"t"},
				Usage:   "number of producer goroutines",
				Value:   100,
			},
			&cli.IntFlag{
				Name:    "messages",
				Aliases: []string{"m"},
				Usage:   "messages per producer",
				Value:   1000,
			},
			&cli.DurationFlag{
				Name:    "wait",
				Aliases: []string{"w"},
				Usage:   "sleep between messages of one producer",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	threads := cmd.Int("threads")
	msgCount := cmd.Int("messages")
	wait := cmd.Duration("wait")

	fmt.Println("--- Logger Stress Test ---")

	// --- Setup Config ---
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err := os.WriteFile(configFile, []byte(tomlContent), 0644); err != nil {
			return fmt.Errorf("failed to write dummy config: %w", err)
		}
		fmt.Printf("Created dummy config file: %s\n", configFile)
	}

	cfg, err := slogger.NewConfigFromFile(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logsDir := "./logs"
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	// --- Initialize Logger ---
	logger = slogger.NewLogger()
	if err := logger.ApplyConfig(cfg); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	fmt.Printf("Starting stress test: %d producers, %d messages each, %v wait.\n", threads, msgCount, wait)
	fmt.Println("Press Ctrl+C to stop early.")

	// --- Setup Workers and Signal Handling ---
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	stopChan := make(chan struct{})
	go func() {
		<-sigChan
		fmt.Println("\n[Signal Received] Stopping producers...")
		close(stopChan)
	}()

	// --- Run Test ---
	var wg sync.WaitGroup
	var sent atomic.Int64

	startTime := time.Now()
	logger.Start()
	for i := 0; i < threads; i++ {
		wg.Add(1)
		go worker(i, msgCount, wait, stopChan, &wg, &sent)
	}
	wg.Wait()
	produced := time.Since(startTime)

	fmt.Println("Producers finished, closing logger...")
	logger.Close()
	closed := time.Since(startTime) - produced
	stats := logger.Stats()

	fmt.Printf("\n--- Test Finished ---\n")
	fmt.Printf("Enqueued %d records in %v, drain on close took %v\n",
		sent.Load(), produced.Round(time.Millisecond), closed.Round(time.Millisecond))
	fmt.Printf("Written: %d, dropped: %d, files opened: %d\n", stats.Written, stats.Dropped, stats.FilesOpened)
	if n := sent.Load(); n > 0 {
		fmt.Printf("Producer cost per message: %v\n", produced/time.Duration(n))
	}

	// --- Baseline ---
	baseline, err := runLocked(logsDir+"/locked_baseline.log", threads, msgCount, wait)
	if err != nil {
		return fmt.Errorf("baseline run failed: %w", err)
	}
	fmt.Printf("Mutex guarded direct writes took %v\n", baseline.Round(time.Millisecond))
	if total := threads * msgCount; total > 0 {
		fmt.Printf("Baseline cost per message: %v\n", baseline/time.Duration(total))
	}
	fmt.Printf("Check log files in '%s'.\n", logsDir)
	return nil
}
