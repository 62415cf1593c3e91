package middleware

import "net/http"

// Stack composes middleware so the first listed runs outermost.
//
// Usage:
//
//	wrapped := middleware.Stack(logging.Handler, security.Handler)(mux)
func Stack(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(final http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}
