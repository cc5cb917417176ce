package middleware

import (
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimit rejects requests with 429 once the token bucket of limiter is
// empty. onLimit writes the rejection response.
func RateLimit(limiter *rate.Limiter, onLimit http.Handler) func(inner http.Handler) http.Handler {
	return func(inner http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				onLimit.ServeHTTP(w, r)
				return
			}

			inner.ServeHTTP(w, r)
		})
	}
}
