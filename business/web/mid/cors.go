package mid

import (
	"context"
	"net/http"

	"github.com/ardanlabs/ledger/foundation/web"
)

// Cors lets browser clients served from origin call the public api. The
// preflight OPTIONS route must be registered for POST calls with a JSON body
// to get through.
func Cors(origin string) web.Middleware {
	if origin == "" {
		origin = "*"
	}

	// This is the actual middleware function to be executed.
	m := func(handler web.Handler) web.Handler {

		// Create the handler that will be attached in the middleware chain.
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			if origin != "*" {
				w.Header().Add("Vary", "Origin")
			}

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length")
				w.Header().Set("Access-Control-Max-Age", "86400")
			}

			return handler(ctx, w, r)
		}

		return h
	}

	return m
}
