package api

import (
	"log"
	"net/http"

	"github.com/sidvish/pitchweather/internal/analysis"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	table := s.hub.Snapshot()
	sum := analysis.Summarize(table.Rows)
	data := IndexData{
		WeatherRows: table.WeatherRows,
		MatchRows:   table.MatchRows,
		MergedRows:  len(table.Rows),
		LoadedAt:    table.LoadedAt,
		Options:     analysis.BuildOptions(table.Rows),
		Summary:     sum,
		Insights:    analysis.BuildInsights(sum, table.Rows),
	}

	if err := s.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		log.Printf("api: render index: %v", err)
	}
}
