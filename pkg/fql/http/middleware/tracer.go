package middleware

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const tracerName = "fql-http-server"

// Tracer starts one server span per request, continuing any trace propagated
// in the request headers. Spans are named "<method> <path>".
func Tracer(inner http.Handler) http.Handler {
	return otelhttp.NewHandler(inner, tracerName, otelhttp.WithSpanNameFormatter(spanName))
}

func spanName(_ string, r *http.Request) string {
	return r.Method + " " + r.URL.Path
}
