// FILE: example/reconfig/main.go
package main

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/slogger"
)

// Simulate rapid reconfiguration while a producer logs constantly
func main() {
	var count atomic.Int64
	dir := "./reconfig_logs"
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Printf("Failed to create log directory: %v\n", err)
		return
	}

	logger := slogger.NewLogger()
	if err := logger.ApplyOverride("file_path=" + dir + "/reconfig"); err != nil {
		fmt.Printf("Initial config error: %v\n", err)
		return
	}
	logger.Start()

	// Log something constantly
	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			logger.Info("Test log", i)
			count.Add(1)
			time.Sleep(time.Millisecond)
		}
	}()

	// Trigger multiple reconfigurations rapidly
	for i := 0; i < 10; i++ {
		switch i % 3 {
		case 0:
			logger.SetFileName(fmt.Sprintf("%s/reconfig_%d", dir, i), "")
		case 1:
			if err := logger.ApplyOverride(fmt.Sprintf("level=%d", i%2)); err != nil {
				fmt.Printf("Override error: %v\n", err)
			}
		case 2:
			// Restart joins the running writer before a new one begins
			logger.Start()
		}
		// Minimal delay between reconfigurations
		time.Sleep(10 * time.Millisecond)
	}

	close(stop)
	<-done
	logger.Close()

	stats := logger.Stats()
	fmt.Printf("Total logs attempted: %d\n", count.Load())
	fmt.Printf("Enqueued: %d, written: %d, dropped: %d, files opened: %d\n",
		stats.Enqueued, stats.Written, stats.Dropped, stats.FilesOpened)
	if stats.Enqueued != stats.Written+stats.Dropped {
		fmt.Println("Inconsistency detected: not every enqueued record was accounted for")
	}
}
