// FILE: example/raw/main.go
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/slogger"
)

// TestPayload defines a struct for testing complex type rendering.
type TestPayload struct {
	RequestID uint64
	User      string
	Metrics   map[string]float64
}

func main() {
	fmt.Println("--- Logger Value Rendering Test ---")

	// A byte slice with special characters is rendered as hex
	byteRecord := []byte("binary\ndata\twith\x00null")

	// Composite values are dumped onto the record line
	structRecord := TestPayload{
		RequestID: 9223372036854775807,
		User:      "test_user",
		Metrics: map[string]float64{
			"latency_ms":  15.7,
			"cpu_percent": 88.2,
		},
	}

	if err := os.MkdirAll("./raw_logs", 0755); err != nil {
		fmt.Printf("Failed to create log directory: %v\n", err)
		return
	}

	logger, err := slogger.NewBuilder().
		FilePath("./raw_logs/raw").
		EnableConsole(true).
		Build()
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		return
	}
	logger.Start()

	logger.Info("Byte Record ->", byteRecord)
	logger.Info("Struct Record ->", structRecord)
	logger.Message("Untagged Record ->", time.Now(), 3.25, nil)
	logger.Addf(slogger.LevelDebug, "Printf Record -> %+v", structRecord)

	if err := logger.Flush(time.Second); err != nil {
		fmt.Printf("Flush failed: %v\n", err)
	}
	logger.Close()

	fmt.Println("\n--- Test Complete ---")
}
