package api

import (
	"context"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sidvish/pitchweather/internal/dataset"
	"github.com/sidvish/pitchweather/internal/metrics"
	"github.com/sidvish/pitchweather/internal/sharecard"
)

// cardTTL bounds how stale the share card may be after a watcher reload;
// an explicit /api/reload invalidates it immediately.
const cardTTL = 10 * time.Minute

type Server struct {
	hub   *dataset.Hub
	port  string
	tmpl  *template.Template
	cards *sharecard.Cache
}

func NewServer(hub *dataset.Hub, port string) *Server {
	return &Server{
		hub:   hub,
		port:  port,
		tmpl:  newTemplates(),
		cards: sharecard.NewCache(cardTTL),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/summary", s.handleAPISummary)
	mux.HandleFunc("/api/charts", s.handleAPICharts)
	mux.HandleFunc("/api/insights", s.handleAPIInsights)
	mux.HandleFunc("/api/matches", s.handleAPIMatches)
	mux.HandleFunc("/api/filters", s.handleAPIFilters)
	mux.HandleFunc("/api/reload", s.handleAPIReload)
	mux.HandleFunc("/share-card.png", s.handleShareCard)
	mux.Handle("/metrics", promhttp.Handler())
	return s.withMetrics(mux)
}

func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    ":" + s.port,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		metrics.HTTPRequests.WithLabelValues(metricPath(r.URL.Path), strconv.Itoa(rec.status)).Inc()
	})
}

// metricPath collapses unknown paths so arbitrary URLs cannot grow the
// label set.
func metricPath(path string) string {
	switch path {
	case "/", "/health", "/metrics", "/share-card.png",
		"/api/summary", "/api/charts", "/api/insights",
		"/api/matches", "/api/filters", "/api/reload":
		return path
	}
	return "other"
}
