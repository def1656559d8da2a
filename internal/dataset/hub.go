package dataset

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/sidvish/pitchweather/internal/merge"
	"github.com/sidvish/pitchweather/internal/metrics"
	"github.com/sidvish/pitchweather/internal/models"
)

// Source names the two input files.
type Source struct {
	WeatherPath string
	MatchesPath string
}

// Table is one prepared snapshot of the merged dataset. Once published it
// is never mutated; handlers share it read-only.
type Table struct {
	Rows        []models.MergedRow
	WeatherRows int
	MatchRows   int
	LoadedAt    time.Time
}

// Hub owns the current Table and swaps in a new one on each successful
// reload. A failed reload keeps the previous table current.
type Hub struct {
	src Source

	mu      sync.RWMutex
	table   Table
	lastErr error
}

func NewHub(src Source) *Hub {
	return &Hub{src: src}
}

// Source returns the file paths the hub loads from.
func (h *Hub) Source() Source { return h.src }

// Snapshot returns the current table.
func (h *Hub) Snapshot() Table {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.table
}

// LastError reports the most recent reload failure. It is nil after a
// successful reload.
func (h *Hub) LastError() error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.lastErr
}

// Reload parses both CSVs, joins them, and publishes the result.
func (h *Hub) Reload() (Table, error) {
	table, err := load(h.src)

	h.mu.Lock()
	defer h.mu.Unlock()
	if err != nil {
		h.lastErr = err
		metrics.DatasetReloads.WithLabelValues("error").Inc()
		return h.table, err
	}
	h.table = table
	h.lastErr = nil

	metrics.DatasetReloads.WithLabelValues("ok").Inc()
	metrics.DatasetRows.WithLabelValues(TableWeather).Set(float64(table.WeatherRows))
	metrics.DatasetRows.WithLabelValues(TableMatches).Set(float64(table.MatchRows))
	metrics.DatasetRows.WithLabelValues("merged").Set(float64(len(table.Rows)))

	log.Printf("dataset: loaded %d weather rows, %d matches, %d merged",
		table.WeatherRows, table.MatchRows, len(table.Rows))
	return table, nil
}

func load(src Source) (Table, error) {
	weather, err := LoadWeather(src.WeatherPath)
	if err != nil {
		return Table{}, fmt.Errorf("load %s: %w", src.WeatherPath, err)
	}
	matches, err := LoadMatches(src.MatchesPath)
	if err != nil {
		return Table{}, fmt.Errorf("load %s: %w", src.MatchesPath, err)
	}
	return Table{
		Rows:        merge.Prepare(weather, matches),
		WeatherRows: len(weather),
		MatchRows:   len(matches),
		LoadedAt:    time.Now().UTC(),
	}, nil
}
