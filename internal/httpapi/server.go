package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/hamed0406/deephealth/internal/domain"
)

const banner = "Deep Health Checker Service v1.0"

// Aggregator produces a deep health report for a set of targets.
type Aggregator interface {
	Aggregate(ctx context.Context, targets []domain.Target) domain.Report
}

type Server struct {
	Logger     *zap.Logger
	Targets    []domain.Target
	Aggregator Aggregator
}

func NewServer(l *zap.Logger, targets []domain.Target, agg Aggregator) *Server {
	return &Server{Logger: l, Targets: targets, Aggregator: agg}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.AllowAll().Handler)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(banner))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/health/deep", s.handleDeepHealth)

	return r
}

// handleDeepHealth always answers 200; callers read overall_status from the body.
func (s *Server) handleDeepHealth(w http.ResponseWriter, r *http.Request) {
	report := s.Aggregator.Aggregate(r.Context(), s.Targets)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(report); err != nil {
		s.Logger.Warn("deep_health_encode_error", zap.Error(err))
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.Logger.Info("http_request",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("took", time.Since(start)),
		)
	})
}
