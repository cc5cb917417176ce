package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

type metrics interface {
	RecordHistogram(ctx context.Context, name string, value float64, labels ...string)
}

// Metrics is a middleware that records request response time metrics using the provided metrics interface.
func Metrics(metrics metrics) func(inner http.Handler) http.Handler {
	return func(inner http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			srw := &StatusResponseWriter{ResponseWriter: w}

			inner.ServeHTTP(srw, r)

			// chi fills the route pattern while routing, so read it afterwards
			var path string

			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				path = rctx.RoutePattern()
			}

			if path == "" || path == "/" {
				path = r.URL.Path
			}

			path = strings.TrimSuffix(path, "/")

			metrics.RecordHistogram(context.Background(), "app_http_response", time.Since(start).Seconds(),
				"path", path, "method", r.Method, "status", strconv.Itoa(srw.Status()))
		})
	}
}
