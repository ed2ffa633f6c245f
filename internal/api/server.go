package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/pbaille/blueprint/internal/domain"
	"github.com/pbaille/blueprint/internal/providers"
	"github.com/pbaille/blueprint/internal/render"
	"github.com/pbaille/blueprint/internal/store"
	"github.com/pbaille/blueprint/internal/structures"
	"github.com/pbaille/blueprint/internal/submission"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server handles HTTP requests for the birth form and the charts API
type Server struct {
	conf      *structures.Config
	service   *submission.Service
	store     store.Reader
	cache     providers.CacheProviderInterface
	metrics   providers.MetricsProviderInterface
	logger    providers.Logger
	startTime time.Time
}

// New creates a new API server
func New(conf *structures.Config, service *submission.Service, st store.Store, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface, logger providers.Logger) *Server {
	return &Server{
		conf:      conf,
		service:   service,
		store:     st,
		cache:     cache,
		metrics:   metrics,
		logger:    logger,
		startTime: time.Now(),
	}
}

// Handler builds the full route tree
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Birth form
	mux.HandleFunc("GET /{$}", s.form)
	mux.HandleFunc("POST /reveal", s.reveal)

	// Charts
	mux.HandleFunc("POST /api/charts", s.createChart)
	mux.HandleFunc("GET /api/charts", s.listCharts)
	mux.HandleFunc("GET /api/charts/{id}", s.getChart)

	// Search
	mux.HandleFunc("GET /api/search", s.searchCharts)

	// Compute-only preview
	mux.HandleFunc("GET /api/signs", s.previewSign)

	root := http.NewServeMux()
	root.HandleFunc("GET /health", s.health)
	if s.conf.Metrics.Enabled {
		root.Handle("GET /metrics", promhttp.Handler())
	}
	root.Handle("/", providers.MetricsMiddleware(s.metrics, mux))

	return withCORS(root)
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.conf.WebServer.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		s.logger.Infof(providers.TypeApp, "Starting server on %s", s.conf.WebServer.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Infof(providers.TypeApp, "Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Infof(providers.TypeApp, "gracefully stopped")
	return nil
}

// withCORS adds CORS headers for frontend development
func withCORS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		h.ServeHTTP(w, r)
	})
}

type healthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status: "ok",
		Uptime: time.Since(s.startTime).Truncate(time.Second).String(),
	})
}

func (s *Server) form(w http.ResponseWriter, r *http.Request) {
	writePage(w, http.StatusOK, func(b *strings.Builder) error {
		return render.Form(b, render.FormData{})
	})
}

func (s *Server) reveal(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writePage(w, http.StatusBadRequest, func(b *strings.Builder) error {
			return render.Form(b, render.FormData{Error: "invalid form"})
		})
		return
	}

	input := domain.BirthInput{
		FullName:   r.PostForm.Get("full_name"),
		BirthDate:  r.PostForm.Get("birth_date"),
		BirthTime:  r.PostForm.Get("birth_time"),
		BirthPlace: r.PostForm.Get("birth_place"),
	}

	reading, err := s.service.Submit(r.Context(), input)
	if err != nil {
		// the form keeps what the user typed
		writePage(w, submitStatus(err), func(b *strings.Builder) error {
			return render.Form(b, render.FormData{Input: input, Error: submission.UserMessage(err)})
		})
		return
	}

	writePage(w, http.StatusOK, func(b *strings.Builder) error {
		return render.Result(b, reading)
	})
}

func (s *Server) createChart(w http.ResponseWriter, r *http.Request) {
	var input domain.BirthInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reading, err := s.service.Submit(r.Context(), input)
	if err != nil {
		writeError(w, submitStatus(err), submission.UserMessage(err))
		return
	}

	writeJSON(w, http.StatusCreated, reading)
}

func (s *Server) getChart(w http.ResponseWriter, r *http.Request) {
	// Support prefix matching
	fullID, err := s.store.FindChartID(r.Context(), r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "chart not found")
		return
	}
	if err != nil {
		s.logger.Errorf(providers.TypeHTTP, "find chart: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	key := "reading:" + fullID
	if body, ok := s.cache.Get(key); ok {
		s.metrics.IncCacheHits()
		writeRaw(w, http.StatusOK, body)
		return
	}
	s.metrics.IncCacheMisses()

	reading, err := s.store.GetReading(r.Context(), fullID)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "chart not found")
		return
	}
	if err != nil {
		s.logger.Errorf(providers.TypeHTTP, "get reading %s: %v", fullID, err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	body, err := json.Marshal(reading)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := s.cache.Set(key, body); err != nil {
		s.logger.Warnf(providers.TypeHTTP, "cache reading %s (%d bytes): %v", fullID, len(body), err)
	}
	writeRaw(w, http.StatusOK, body)
}

func (s *Server) listCharts(w http.ResponseWriter, r *http.Request) {
	limit := 20
	offset := 0

	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 {
			limit = n
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if n, err := strconv.Atoi(o); err == nil && n >= 0 {
			offset = n
		}
	}

	charts, err := s.store.ListCharts(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"charts": nonNil(charts),
		"limit":  limit,
		"offset": offset,
	})
}

func (s *Server) searchCharts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "query parameter 'q' is required")
		return
	}

	charts, err := s.store.SearchCharts(r.Context(), query)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"charts": nonNil(charts),
		"query":  query,
	})
}

// SignPreview is the response for a compute-only lookup
type SignPreview struct {
	ZodiacSign     string          `json:"zodiac_sign"`
	LifePathNumber int             `json:"life_path_number"`
	Insights       domain.Insights `json:"insights"`
}

func (s *Server) previewSign(w http.ResponseWriter, r *http.Request) {
	result, in, err := submission.Preview(r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, submission.UserMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, SignPreview{
		ZodiacSign:     result.Sign.String(),
		LifePathNumber: result.LifePath,
		Insights:       in,
	})
}

func submitStatus(err error) int {
	var verr *submission.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func nonNil(charts []domain.Chart) []domain.Chart {
	if charts == nil {
		return []domain.Chart{}
	}
	return charts
}

func writePage(w http.ResponseWriter, status int, fill func(b *strings.Builder) error) {
	var b strings.Builder
	if err := fill(&b); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(b.String()))
}

func writeRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
