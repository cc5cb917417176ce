package http

import (
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Router is responsible for routing HTTP request.
type Router struct {
	mux *chi.Mux
}

type Middleware func(handler http.Handler) http.Handler

// NewRouter creates a new Router instance.
func NewRouter() *Router {
	return &Router{mux: chi.NewRouter()}
}

// ServeHTTP implements [http.Handler] interface with path normalization.
func (rou *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	originalPath := r.URL.Path
	normalizedPath := path.Clean(originalPath)

	// path.Clean returns "." for empty paths
	if normalizedPath == "." {
		normalizedPath = "/"
	}

	normalizedPath = "/" + strings.TrimLeft(normalizedPath, "/")

	if originalPath != normalizedPath {
		r.URL.Path = normalizedPath
		if r.URL.RawPath != "" {
			r.URL.RawPath = normalizedPath
		}
	}

	rou.mux.ServeHTTP(w, r)
}

// Add adds a new route with the given HTTP method, pattern, and handler.
// Request spans come from the Tracer middleware, not from the route.
func (rou *Router) Add(method, pattern string, handler http.Handler) {
	rou.mux.Method(method, pattern, handler)
}

// UseMiddleware registers middlewares to the router. chi requires them to be
// registered before the first route.
func (rou *Router) UseMiddleware(mws ...Middleware) {
	for _, m := range mws {
		rou.mux.Use(m)
	}
}

// NotFound sets the handler for requests that don't match any route.
func (rou *Router) NotFound(handler http.Handler) {
	rou.mux.NotFound(handler.ServeHTTP)
}

// Walk traverses all registered routes calling the given function for each route.
func (rou *Router) Walk(fn func(method, route string) error) error {
	return chi.Walk(rou.mux, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		return fn(method, route)
	})
}
