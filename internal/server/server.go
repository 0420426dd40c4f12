package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/scriptwatch/exporter.git/internal/logger"
	"github.com/scriptwatch/exporter.git/internal/model"
)

// Metrics is the read-only view of the current generation used by the
// index page. The collector owns the writes.
type Metrics interface {
	Snapshot() []model.Sample
}

type Server struct {
	Srv     *http.Server
	metrics Metrics
}

// NewServer builds the HTTP surface: the Prometheus exposition on /metrics,
// a health probe, and an HTML listing of the current samples on /.
func NewServer(addr string, metrics Metrics, gatherer prometheus.Gatherer) *Server {
	r := chi.NewRouter()
	s := &Server{
		Srv:     &http.Server{Addr: addr, Handler: r},
		metrics: metrics,
	}

	r.Use(logger.Middleware)

	r.Route("/", func(r chi.Router) {
		r.Get("/", s.indexHandler)
		r.Get("/healthz", s.healthHandler)
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	})

	r.NotFound(s.notFoundHandler)

	return s
}

func (s *Server) Run(ctx context.Context, runner *errgroup.Group) {
	logger.Log.Info().Str("addr", s.Srv.Addr).Msg("Http server started.")

	runner.Go(func() error {
		if err := s.Srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
}

func (s *Server) Shutdown(ctx context.Context) error {
	logger.Log.Info().Msg("Http server stopped.")

	nctx, stop := context.WithTimeout(ctx, time.Second*10)
	defer stop()

	return s.Srv.Shutdown(nctx)
}

func (s *Server) GetRouter() *chi.Mux {
	return s.Srv.Handler.(*chi.Mux)
}
