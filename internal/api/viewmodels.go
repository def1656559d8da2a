package api

import (
	"time"

	"github.com/sidvish/pitchweather/internal/analysis"
	"github.com/sidvish/pitchweather/internal/models"
)

// IndexData contains everything the dashboard template renders before any
// script runs: dataset counts for the header, filter options for the form
// controls, and the unfiltered summary and insights as the initial state.
type IndexData struct {
	WeatherRows int
	MatchRows   int
	MergedRows  int
	LoadedAt    time.Time
	Options     analysis.Options
	Summary     analysis.Summary
	Insights    []string
}

// healthStatus is the /health payload.
type healthStatus struct {
	Status      string    `json:"status"`
	WeatherRows int       `json:"weather_rows"`
	MatchRows   int       `json:"match_rows"`
	MergedRows  int       `json:"merged_rows"`
	LoadedAt    time.Time `json:"loaded_at"`
	WeatherPath string    `json:"weather_path"`
	MatchesPath string    `json:"matches_path"`
	Error       string    `json:"error,omitempty"`
}

// reloadResult is the /api/reload success payload.
type reloadResult struct {
	WeatherRows int       `json:"weather_rows"`
	MatchRows   int       `json:"match_rows"`
	MergedRows  int       `json:"merged_rows"`
	LoadedAt    time.Time `json:"loaded_at"`
}

type insightsPayload struct {
	Insights []string `json:"insights"`
}

type matchesPayload struct {
	Count   int                `json:"count"`
	Matches []models.MergedRow `json:"matches"`
}
