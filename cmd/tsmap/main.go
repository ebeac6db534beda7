package main

import (
	"fmt"
	"os"

	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/samber/do"
	"github.com/serroba/tsmap/internal/container"
	"github.com/serroba/tsmap/internal/ingest"
	"github.com/serroba/tsmap/internal/timeseries"
	"go.uber.org/zap"
)

func registerPackages(injector *do.Injector, options *container.Options) {
	do.ProvideValue(injector, options)
	container.LoggerPackage(injector)
	container.ClockPackage(injector)
	container.StorePackage(injector)
}

func main() {
	cli := humacli.New(func(hooks humacli.Hooks, options *container.Options) {
		injector := do.New()
		registerPackages(injector, options)

		logger := do.MustInvoke[*zap.Logger](injector)

		hooks.OnStart(func() {
			defer func() {
				if err := injector.Shutdown(); err != nil {
					logger.Error("shutdown error", zap.Error(err))
				}

				_ = logger.Sync()
			}()

			loader := do.MustInvoke[*ingest.Loader](injector)
			records := do.MustInvoke[*timeseries.Map[string]](injector)

			count, err := loader.Load(os.Stdin)
			if err != nil {
				logger.Fatal("failed to load records", zap.Error(err))
			}

			summary, err := ingest.Summarize(records)
			if err != nil {
				logger.Fatal("failed to summarize records", zap.Error(err))
			}

			logger.Info("records loaded",
				zap.Int("inserted", count),
				zap.Int("count", summary.Count),
				zap.String("earliest", summary.Earliest),
				zap.String("latest", summary.Latest),
			)

			if options.Quiet {
				return
			}

			for _, record := range summary.Records {
				fmt.Println(record)
			}
		})
	})

	cli.Run()
}
