package container

import (
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/samber/do"
	"github.com/serroba/tsmap/internal/ingest"
	"github.com/serroba/tsmap/internal/timeseries"
	"go.uber.org/zap"
)

const (
	ClockWall     = "wall"
	ClockSequence = "sequence"
)

type Options struct {
	LogFormat string `default:"console" help:"Log format: console or json"            short:"l"`
	Clock     string `default:"wall"    help:"Key source: wall or sequence"           short:"k"`
	Quiet     bool   `default:"false"   help:"Only print the summary, not each record" short:"q"`
}

// LoggerPackage provides a zap logger built from Options.LogFormat.
func LoggerPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*zap.Logger, error) {
		opts := do.MustInvoke[*Options](i)

		switch opts.LogFormat {
		case "json":
			return zap.NewProduction()
		case "console", "":
			return zap.NewDevelopment()
		default:
			return nil, fmt.Errorf("unknown log format %q", opts.LogFormat)
		}
	})
}

// ClockPackage provides the wall clock used for default keys.
func ClockPackage(injector *do.Injector) {
	do.Provide(injector, func(_ *do.Injector) (clock.Clock, error) {
		return clock.New(), nil
	})
}

// StorePackage provides the record map and its loader.
func StorePackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*timeseries.Map[string], error) {
		opts := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)

		keySource, err := newKeySource(i, opts.Clock)
		if err != nil {
			return nil, err
		}

		return timeseries.New[string](
			timeseries.WithKeySource(keySource),
			timeseries.WithLogger(logger.Named("timeseries")),
		), nil
	})

	do.Provide(injector, func(i *do.Injector) (*ingest.Loader, error) {
		records := do.MustInvoke[*timeseries.Map[string]](i)
		logger := do.MustInvoke[*zap.Logger](i)

		return ingest.NewLoader(records, logger.Named("ingest")), nil
	})
}

func newKeySource(i *do.Injector, name string) (timeseries.KeySource, error) {
	switch name {
	case ClockWall, "":
		return timeseries.ClockKeySource(do.MustInvoke[clock.Clock](i)), nil
	case ClockSequence:
		var next int64

		return func() int64 {
			next++

			return next
		}, nil
	default:
		return nil, fmt.Errorf("unknown key source %q", name)
	}
}
