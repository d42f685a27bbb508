// internal/api/server.go
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/FairForge/stemcell/internal/runtimes"
)

// Server exposes a read-only view of the resolved runtime manifest. It never
// mutates the model; manifest updates require a restart.
type Server struct {
	runtimes *runtimes.Runtimes
	logger   *zap.Logger
}

// NewServer creates the info API over a resolved model.
func NewServer(rt *runtimes.Runtimes, logger *zap.Logger) *Server {
	return &Server{
		runtimes: rt,
		logger:   logger,
	}
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger(s.logger))

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/runtimes", s.handleRuntimes)
		r.Get("/runtimes/{kind}", s.handleRuntimeByKind)
		r.Get("/blackboxes", s.handleBlackboxes)
	})

	return r
}
