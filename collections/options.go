package collections

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
)

// Option configures a Collection. Options are fixed at construction and
// carried over to every collection derived from it (Filter, Map, Chunk, …).
type Option func(*config)

type config struct {
	rand   *rand.Rand
	logger *slog.Logger
	out    io.Writer
}

var defaultConfig = &config{}

// WithRand sets the random source used by [Collection.Shuffle]. Pass a
// seeded generator to make shuffles reproducible:
//
//	c := collections.From(items, collections.WithRand(rand.New(rand.NewPCG(1, 2))))
func WithRand(r *rand.Rand) Option {
	return func(cfg *config) { cfg.rand = r }
}

// WithLogger sets the logger used by [Collection.Log]. The default is
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) { cfg.logger = l }
}

// WithWriter sets the destination of [Collection.Dump]. The default is
// os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(cfg *config) { cfg.out = w }
}

func newConfig(opts []Option) *config {
	if len(opts) == 0 {
		return defaultConfig
	}
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (cfg *config) loggerOrDefault() *slog.Logger {
	if cfg != nil && cfg.logger != nil {
		return cfg.logger
	}
	return slog.Default()
}

func (cfg *config) writerOrDefault() io.Writer {
	if cfg != nil && cfg.out != nil {
		return cfg.out
	}
	return os.Stdout
}

func (cfg *config) randOrNil() *rand.Rand {
	if cfg == nil {
		return nil
	}
	return cfg.rand
}
