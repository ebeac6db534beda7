// Package timeseries provides an in-memory collection of records keyed by
// the time they were inserted.
package timeseries

import (
	"errors"
	"slices"

	"go.uber.org/zap"
)

// ErrNoRecords is returned by Latest and Earliest when the map is empty.
var ErrNoRecords = errors.New("map has no records")

// Map stores values under keys derived from a KeySource.
// Keys are unique and kept in ascending order.
// A Map is not safe for concurrent use.
type Map[T any] struct {
	records   map[int64]T
	keys      []int64 // ascending
	keySource KeySource
	logger    *zap.Logger
}

// New creates an empty Map. Keys default to wall-clock milliseconds.
func New[T any](opts ...Option) *Map[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &Map[T]{
		records:   make(map[int64]T),
		keySource: cfg.keySource,
		logger:    cfg.logger,
	}
}

// Insert stores value and returns the key it was stored under.
// If the derived key is taken, the next free key above it is used.
func (m *Map[T]) Insert(value T) int64 {
	nominal := m.keySource()

	key := nominal
	for m.Has(key) {
		key++
	}

	if key != nominal {
		m.logger.Debug("key collision resolved",
			zap.Int64("nominal", nominal),
			zap.Int64("key", key),
		)
	}

	m.records[key] = value
	m.index(key)

	return key
}

// index adds key to the ordered key list.
func (m *Map[T]) index(key int64) {
	if n := len(m.keys); n == 0 || m.keys[n-1] < key {
		m.keys = append(m.keys, key)

		return
	}

	pos, _ := slices.BinarySearch(m.keys, key)
	m.keys = slices.Insert(m.keys, pos, key)
}

// Get returns the value stored at key.
func (m *Map[T]) Get(key int64) (T, bool) {
	value, ok := m.records[key]

	return value, ok
}

func (m *Map[T]) Has(key int64) bool {
	_, ok := m.records[key]

	return ok
}

// Delete removes the record at key and reports whether it existed.
func (m *Map[T]) Delete(key int64) bool {
	if !m.Has(key) {
		return false
	}

	delete(m.records, key)

	if pos, found := slices.BinarySearch(m.keys, key); found {
		m.keys = slices.Delete(m.keys, pos, pos+1)
	}

	return true
}

// Latest returns the value with the highest key.
func (m *Map[T]) Latest() (T, error) {
	if len(m.keys) == 0 {
		var zero T

		return zero, ErrNoRecords
	}

	return m.records[m.keys[len(m.keys)-1]], nil
}

// Earliest returns the value with the lowest key.
func (m *Map[T]) Earliest() (T, error) {
	if len(m.keys) == 0 {
		var zero T

		return zero, ErrNoRecords
	}

	return m.records[m.keys[0]], nil
}

// All returns every value in ascending key order.
func (m *Map[T]) All() []T {
	values := make([]T, 0, len(m.keys))
	for _, key := range m.keys {
		values = append(values, m.records[key])
	}

	return values
}

// Keys returns every key in ascending order.
func (m *Map[T]) Keys() []int64 {
	return slices.Clone(m.keys)
}

// Clear removes all records.
func (m *Map[T]) Clear() {
	clear(m.records)
	m.keys = m.keys[:0]
}

func (m *Map[T]) Len() int {
	return len(m.records)
}
