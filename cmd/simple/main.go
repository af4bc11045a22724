package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/lixenwraith/slogger"
)

const configFile = "simple_config.toml"

// Example TOML content
var tomlContent = `
# Example simple_config.toml
[slogger]
  level = "debug"
  file_path = "./simple_logs/simple"
  extension = "log"
  rotation = true
  enable_console = true
  console_target = "stdout"
  # Other settings use defaults
`

func main() {
	fmt.Println("--- Simple Logger Example ---")

	// --- Setup Config ---
	err := os.WriteFile(configFile, []byte(tomlContent), 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write dummy config: %v\n", err)
		// Continue, a missing file yields the defaults
	} else {
		fmt.Printf("Created dummy config file: %s\n", configFile)
	}

	cfg, err := slogger.NewConfigFromFile(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll("./simple_logs", 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		os.Exit(1)
	}

	// --- Initialize Logger ---
	if err := slogger.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Logger initialized.")

	// --- Logging ---
	slogger.Debug("This is a debug message.", "user_id", 123)
	slogger.Info("Application starting...")
	slogger.Warning("Potential issue detected.", "threshold", 0.95)
	slogger.Error("An error occurred!", "code", 500)
	slogger.Addf(slogger.LevelInfo, "Config loaded from %s", configFile)

	// Logging from goroutines
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			slogger.Info("Goroutine started", "id", id)
			time.Sleep(time.Duration(50+id*50) * time.Millisecond)
			slogger.Info("Goroutine finished", "id", id)
		}(i)
	}

	wg.Wait()
	fmt.Println("Goroutines finished.")

	// --- Shutdown Logger ---
	fmt.Println("Shutting down logger...")
	slogger.Shutdown()
	fmt.Println("Logger shutdown complete.")

	fmt.Println("--- Example Finished ---")
	fmt.Println("Check log files in './simple_logs'.")
}
