package timeseries

import (
	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
)

// KeySource returns the nominal key for a new record.
type KeySource func() int64

// ClockKeySource derives keys from c in milliseconds since epoch.
func ClockKeySource(c clock.Clock) KeySource {
	return func() int64 {
		return c.Now().UnixMilli()
	}
}

type config struct {
	keySource KeySource
	logger    *zap.Logger
}

// Option configures a Map.
type Option func(cfg *config)

func defaultConfig() *config {
	return &config{
		keySource: ClockKeySource(clock.New()),
		logger:    zap.NewNop(),
	}
}

// WithKeySource sets the function used to derive keys.
func WithKeySource(fn KeySource) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.keySource = fn
		}
	}
}

// WithClock derives keys from the given clock.
func WithClock(c clock.Clock) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.keySource = ClockKeySource(c)
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
