package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/sllt/fql/pkg/fql/config"
	"github.com/sllt/fql/pkg/fql/http/middleware"
	"github.com/sllt/fql/pkg/fql/logging"
	"github.com/sllt/fql/pkg/fql/metrics"
	"github.com/sllt/fql/pkg/fql/qb"
)

const (
	defaultHTTPPort    = 8000
	defaultMetricsPort = 2121
	defaultBurst       = 10

	readHeaderTimeout = 5 * time.Second
	shutDownTimeout   = 30 * time.Second
)

var errInvalidConfig = errors.New("invalid config")

// Server runs the render API and the prometheus metrics endpoint.
type Server struct {
	router      *Router
	port        int
	metricsPort int
	logger      logging.Logger
	metrics     metrics.Manager
}

// NewServer wires the routes and middlewares of the render API. It reads
// HTTP_PORT, METRICS_PORT, RATE_LIMIT_RPS and RATE_LIMIT_BURST from cfg.
func NewServer(cfg config.Config, builder *qb.Builder, logger logging.Logger, m metrics.Manager) (*Server, error) {
	port, err := intConfig(cfg, "HTTP_PORT", defaultHTTPPort)
	if err != nil {
		return nil, err
	}

	metricsPort, err := intConfig(cfg, "METRICS_PORT", defaultMetricsPort)
	if err != nil {
		return nil, err
	}

	rps, err := strconv.ParseFloat(cfg.GetOrDefault("RATE_LIMIT_RPS", "0"), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: RATE_LIMIT_RPS: %v", errInvalidConfig, err)
	}

	burst, err := intConfig(cfg, "RATE_LIMIT_BURST", defaultBurst)
	if err != nil {
		return nil, err
	}

	registerMetrics(m)

	r := NewRouter()

	r.UseMiddleware(
		middleware.Tracer,
		middleware.RequestID,
		middleware.Logging(logger),
		middleware.Metrics(m),
	)

	if rps > 0 {
		r.UseMiddleware(middleware.RateLimit(rate.NewLimiter(rate.Limit(rps), burst), handler(func(*http.Request) (any, error) {
			return nil, ErrorTooManyRequests{}
		})))
	}

	svc := NewService(builder, logger, m)

	r.Add(http.MethodPost, "/render", handler(svc.Render))
	r.Add(http.MethodGet, "/tables", handler(svc.Tables))
	r.Add(http.MethodGet, "/tables/{table}", handler(svc.Columns))

	r.NotFound(handler(func(*http.Request) (any, error) {
		return nil, ErrorRouteNotFound{}
	}))

	return &Server{
		router:      r,
		port:        port,
		metricsPort: metricsPort,
		logger:      logger,
		metrics:     m,
	}, nil
}

func registerMetrics(m metrics.Manager) {
	m.NewCounter(renderCounter, "number of rendered queries", "table", "status")
	m.NewHistogram("app_http_response", "response time of HTTP requests in seconds",
		[]float64{.001, .003, .005, .01, .02, .03, .05, .1, .2, .3, .5, .75, 1, 2, 3, 5}, "path", "method", "status")
}

// Handler returns the router serving the render API.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves the render API and the metrics endpoint until ctx is cancelled
// or one of the listeners fails, then shuts both servers down.
func (s *Server) Run(ctx context.Context) error {
	apiSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	metricSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.metricsPort),
		Handler:           s.metrics.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Logf("Starting server on port: %d", s.port)
		return listen(apiSrv)
	})

	g.Go(func() error {
		s.logger.Logf("Starting metrics server on port: %d", s.metricsPort)
		return listen(metricSrv)
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutDownTimeout)
		defer cancel()

		s.logger.Log("Shutting down servers")

		return errors.Join(shutdown(shutdownCtx, apiSrv), shutdown(shutdownCtx, metricSrv))
	})

	return g.Wait()
}

func listen(srv *http.Server) error {
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen on %s: %w", srv.Addr, err)
	}

	return nil
}

// shutdown stops srv gracefully, closing it outright once ctx expires.
func shutdown(ctx context.Context, srv *http.Server) error {
	err := srv.Shutdown(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		return srv.Close()
	}

	return err
}

func intConfig(cfg config.Config, key string, def int) (int, error) {
	v, err := strconv.Atoi(cfg.GetOrDefault(key, strconv.Itoa(def)))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", errInvalidConfig, key, err)
	}

	return v, nil
}
