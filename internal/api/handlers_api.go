package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/sidvish/pitchweather/internal/analysis"
	"github.com/sidvish/pitchweather/internal/metrics"
	"github.com/sidvish/pitchweather/internal/models"
	"github.com/sidvish/pitchweather/internal/sharecard"
)

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("api: write response: %v", err)
	}
}

// filteredRows binds the filter query and applies it to the current table.
// A bind or validation failure is the caller's 400.
func (s *Server) filteredRows(r *http.Request) ([]models.MergedRow, error) {
	fq, err := parseFilterQuery(r.URL.Query())
	if err != nil {
		return nil, err
	}
	f := fq.toFilter()
	if !f.IsZero() {
		metrics.FilterQueries.Inc()
	}
	return analysis.Apply(s.hub.Snapshot().Rows, f), nil
}

func (s *Server) handleAPISummary(w http.ResponseWriter, r *http.Request) {
	rows, err := s.filteredRows(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.writeJSON(w, analysis.Summarize(rows))
}

func (s *Server) handleAPICharts(w http.ResponseWriter, r *http.Request) {
	rows, err := s.filteredRows(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.writeJSON(w, analysis.BuildCharts(rows, analysis.Summarize(rows)))
}

func (s *Server) handleAPIInsights(w http.ResponseWriter, r *http.Request) {
	rows, err := s.filteredRows(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sum := analysis.Summarize(rows)
	s.writeJSON(w, insightsPayload{Insights: analysis.BuildInsights(sum, rows)})
}

func (s *Server) handleAPIMatches(w http.ResponseWriter, r *http.Request) {
	rows, err := s.filteredRows(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.writeJSON(w, matchesPayload{Count: len(rows), Matches: rows})
}

func (s *Server) handleAPIFilters(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, analysis.BuildOptions(s.hub.Snapshot().Rows))
}

func (s *Server) handleAPIReload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}

	table, err := s.hub.Reload()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.cards.Invalidate()
	s.writeJSON(w, reloadResult{
		WeatherRows: table.WeatherRows,
		MatchRows:   table.MatchRows,
		MergedRows:  len(table.Rows),
		LoadedAt:    table.LoadedAt,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	table := s.hub.Snapshot()
	src := s.hub.Source()

	health := healthStatus{
		Status:      "ok",
		WeatherRows: table.WeatherRows,
		MatchRows:   table.MatchRows,
		MergedRows:  len(table.Rows),
		LoadedAt:    table.LoadedAt,
		WeatherPath: src.WeatherPath,
		MatchesPath: src.MatchesPath,
	}
	if err := s.hub.LastError(); err != nil {
		health.Status = "error"
		health.Error = err.Error()
	} else if len(table.Rows) == 0 {
		health.Status = "empty"
	}

	w.Header().Set("Content-Type", "application/json")
	if health.Status != "ok" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	if err := json.NewEncoder(w).Encode(health); err != nil {
		log.Printf("api: write response: %v", err)
	}
}

// handleShareCard renders the headline numbers of the full table as a
// PNG. The card always reflects the unfiltered dataset.
func (s *Server) handleShareCard(w http.ResponseWriter, r *http.Request) {
	if data, ok := s.cards.Get(); ok {
		serveCard(w, data)
		return
	}

	table := s.hub.Snapshot()
	sum := analysis.Summarize(table.Rows)
	opts := analysis.BuildOptions(table.Rows)

	data, err := sharecard.Generate(sharecard.Data{
		MatchCount: sum.Count,
		Cities:     len(opts.Cities),
		MeanRuns:   sum.MeanRuns,
		MeanTempC:  sum.MeanTempC,
	})
	if err != nil {
		log.Printf("api: share card: %v", err)
		http.Error(w, "share card generation failed", http.StatusInternalServerError)
		return
	}

	s.cards.Set(data)
	serveCard(w, data)
}

func serveCard(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=600")
	w.Write(data)
}
