// Package middleware holds the HTTP middleware shared by every route:
// request ids, request logging, panic recovery, CORS and rate limiting.
package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines mws into one Middleware. The first one is outermost:
// Chain(a, b)(h) is a(b(h)). Nil entries are skipped so optional
// middleware can be passed unconditionally.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] == nil {
				continue
			}
			final = mws[i](final)
		}
		return final
	}
}
