package container_test

import (
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/samber/do"
	"github.com/serroba/tsmap/internal/container"
	"github.com/serroba/tsmap/internal/ingest"
	"github.com/serroba/tsmap/internal/timeseries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newInjector(opts *container.Options) *do.Injector {
	injector := do.New()
	do.ProvideValue(injector, opts)
	container.LoggerPackage(injector)
	container.ClockPackage(injector)
	container.StorePackage(injector)

	return injector
}

func TestLoggerPackage(t *testing.T) {
	t.Run("builds console and json loggers", func(t *testing.T) {
		for _, format := range []string{"console", "json"} {
			injector := newInjector(&container.Options{LogFormat: format})

			logger, err := do.Invoke[*zap.Logger](injector)

			require.NoError(t, err, format)
			assert.NotNil(t, logger)
		}
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		injector := newInjector(&container.Options{LogFormat: "xml"})

		_, err := do.Invoke[*zap.Logger](injector)

		assert.Error(t, err)
	})
}

func TestStorePackage(t *testing.T) {
	t.Run("sequence clock yields consecutive keys", func(t *testing.T) {
		injector := newInjector(&container.Options{Clock: container.ClockSequence})

		records := do.MustInvoke[*timeseries.Map[string]](injector)

		assert.Equal(t, int64(1), records.Insert("a"))
		assert.Equal(t, int64(2), records.Insert("b"))
	})

	t.Run("wall clock reads the provided clock", func(t *testing.T) {
		injector := newInjector(&container.Options{Clock: container.ClockWall})
		mock := clock.NewMock()
		mock.Set(time.UnixMilli(1_000))
		do.OverrideValue[clock.Clock](injector, mock)

		records := do.MustInvoke[*timeseries.Map[string]](injector)

		assert.Equal(t, int64(1_000), records.Insert("a"))
	})

	t.Run("rejects unknown key source", func(t *testing.T) {
		injector := newInjector(&container.Options{Clock: "lunar"})

		_, err := do.Invoke[*timeseries.Map[string]](injector)

		assert.Error(t, err)
	})

	t.Run("loader writes into the provided map", func(t *testing.T) {
		injector := newInjector(&container.Options{Clock: container.ClockSequence})

		loader := do.MustInvoke[*ingest.Loader](injector)
		records := do.MustInvoke[*timeseries.Map[string]](injector)

		_, err := loader.Load(strings.NewReader("a\nb\n"))

		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2}, records.Keys())
	})
}
