package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"solarcast/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	PredictYear(ctx context.Context, req types.YearRequest) (types.YearResponse, error)
	PredictDate(ctx context.Context, req types.DateRequest) (types.DateResponse, error)
	Ready() bool
}

const rootMessage = "API is working! Use /predict_year or /predict_date endpoints."

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(MetricsMiddleware)
	r.Use(AccessLog)
	r.Use(middleware.Recoverer)
	if c := corsMiddleware(corsOpts); c != nil {
		r.Use(c)
	}
	// Compression for JSON endpoints; a full-year response is ~40 KB
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	h := &handlers{svc: svc}
	r.Get("/", h.root)
	r.Post("/predict_year", h.predictYear)
	r.Post("/predict_date", h.predictDate)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("loading"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)
	return r
}
