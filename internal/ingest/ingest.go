package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/serroba/tsmap/internal/timeseries"
	"go.uber.org/zap"
)

// Loader reads newline-separated records into a map.
type Loader struct {
	records *timeseries.Map[string]
	logger  *zap.Logger
}

// NewLoader creates a loader writing into records.
func NewLoader(records *timeseries.Map[string], logger *zap.Logger) *Loader {
	return &Loader{
		records: records,
		logger:  logger,
	}
}

// Load inserts every non-blank line of r and returns how many were inserted.
func (l *Loader) Load(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	count := 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		key := l.records.Insert(line)
		count++

		l.logger.Debug("record inserted", zap.Int64("key", key))
	}

	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("failed to read records: %w", err)
	}

	return count, nil
}

// Summary describes the contents of a map.
type Summary struct {
	Count    int
	Earliest string
	Latest   string
	Records  []string
}

// Summarize reports the extremes and contents of records.
// An empty map yields a zero Summary with no error.
func Summarize(records *timeseries.Map[string]) (Summary, error) {
	summary := Summary{
		Count:   records.Len(),
		Records: records.All(),
	}

	earliest, err := records.Earliest()
	if errors.Is(err, timeseries.ErrNoRecords) {
		return summary, nil
	}

	if err != nil {
		return summary, err
	}

	latest, err := records.Latest()
	if err != nil {
		return summary, err
	}

	summary.Earliest = earliest
	summary.Latest = latest

	return summary, nil
}
