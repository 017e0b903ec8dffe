package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines multiple middleware into a single Middleware.
// Chain(mw1, mw2)(handler) is mw1(mw2(handler)): mw1 runs first.
// Nil entries are skipped.
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

// When returns mw if enabled is true and a pass-through otherwise.
func When(enabled bool, mw Middleware) Middleware {
	if enabled && mw != nil {
		return mw
	}
	return func(next http.Handler) http.Handler { return next }
}
