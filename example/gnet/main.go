// FILE: example/gnet/main.go
package main

import (
	"github.com/lixenwraith/slogger"
	"github.com/lixenwraith/slogger/compat"
	"github.com/panjf2000/gnet/v2"
)

// Example gnet event handler
type echoServer struct {
	gnet.BuiltinEventEngine
	logger *slogger.Logger
}

func (es *echoServer) OnBoot(eng gnet.Engine) gnet.Action {
	es.logger.Info("echo server booted")
	return gnet.None
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	es.logger.Debug("echo", len(buf), "bytes to", c.RemoteAddr().String())
	c.Write(buf)
	return gnet.None
}

func main() {
	logger := slogger.NewLogger()
	err := logger.ApplyOverride(
		"file_path=/var/log/gnet/server",
		"level=debug",
		"rotation=true",
	)
	if err != nil {
		panic(err)
	}
	logger.Start()
	defer logger.Close()

	gnetAdapter := compat.NewGnetAdapter(logger)

	// Configure gnet server with the logger
	err = gnet.Run(
		&echoServer{logger: logger},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(gnetAdapter),
		gnet.WithReusePort(true),
	)
	if err != nil {
		logger.Error("gnet stopped:", err)
	}
}
