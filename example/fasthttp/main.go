// FILE: example/fasthttp/main.go
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/slogger"
	"github.com/lixenwraith/slogger/compat"
	"github.com/valyala/fasthttp"
)

func main() {
	// Create and configure logger
	logger, err := slogger.NewBuilder().
		FilePath("/var/log/fasthttp/server").
		LevelString("debug").
		EnableConsole(true).
		Build()
	if err != nil {
		panic(err)
	}
	logger.Start()
	defer logger.Close()

	// Create fasthttp adapter with custom level detection
	fasthttpAdapter := compat.NewFastHTTPAdapter(
		logger,
		compat.WithDefaultLevel(slogger.LevelInfo),
		compat.WithLevelDetector(customLevelDetector),
	)

	// Configure fasthttp server
	server := &fasthttp.Server{
		Handler: requestHandler(logger),
		Logger:  fasthttpAdapter,

		// Other server settings
		Name:              "MyServer",
		Concurrency:       fasthttp.DefaultConcurrency,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		TCPKeepalive:      true,
		ReduceMemoryUsage: true,
	}

	// Start server
	fmt.Println("Starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		logger.Error("server stopped:", err)
	}
}

func requestHandler(logger *slogger.Logger) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		logger.Addf(slogger.LevelInfo, "%s %s from %s", ctx.Method(), ctx.Path(), ctx.RemoteAddr())
		ctx.SetContentType("text/plain")
		fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
	}
}

func customLevelDetector(msg string) slogger.Level {
	// Specific fasthttp message patterns first
	if strings.Contains(msg, "connection cannot be served") {
		return slogger.LevelWarning
	}
	if strings.Contains(msg, "error when serving connection") {
		return slogger.LevelError
	}

	// Use default detection
	return compat.DetectLogLevel(msg)
}
