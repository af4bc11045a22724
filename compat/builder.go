package compat

import (
	"fmt"

	"github.com/lixenwraith/slogger"
)

// Builder creates logger adapters for gnet, fasthttp and fiber over a shared *slogger.Logger.
// It can use an existing instance or create and start one from a *slogger.Config.
type Builder struct {
	logger *slogger.Logger
	logCfg *slogger.Config
	err    error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLogger specifies an existing logger to use for the adapters.
// If this is set WithConfig is ignored.
func (b *Builder) WithLogger(l *slogger.Logger) *Builder {
	if l == nil {
		b.err = fmt.Errorf("slogger/compat: provided logger cannot be nil")
		return b
	}
	b.logger = l
	return b
}

// WithConfig provides a configuration for a new logger instance, used only if no logger
// was provided via WithLogger. Without either, a default logger is created.
func (b *Builder) WithConfig(cfg *slogger.Config) *Builder {
	b.logCfg = cfg
	return b
}

// getLogger resolves the logger to be used, creating and starting one if necessary
func (b *Builder) getLogger() (*slogger.Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.logger != nil {
		return b.logger, nil
	}

	l := slogger.NewLogger()
	cfg := b.logCfg
	if cfg == nil {
		cfg = slogger.DefaultConfig()
	}

	if err := l.ApplyConfig(cfg); err != nil {
		return nil, err
	}
	l.Start()

	// Cache the newly created logger for subsequent builds with this builder
	b.logger = l
	return l, nil
}

// BuildGnet creates a gnet adapter
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(l, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(l, opts...), nil
}

// BuildFiber creates a fiber adapter
func (b *Builder) BuildFiber(opts ...FiberOption) (*FiberAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewFiberAdapter(l, opts...), nil
}

// GetLogger returns the underlying logger, creating it if needed
func (b *Builder) GetLogger() (*slogger.Logger, error) {
	return b.getLogger()
}
