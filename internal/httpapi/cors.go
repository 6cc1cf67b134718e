package httpapi

import (
	"net/http"

	"github.com/go-chi/cors"
)

// corsMiddleware returns the configured CORS handler, or nil when disabled.
// A wildcard origin combined with credentials reflects the request Origin,
// since browsers reject "*" on credentialed responses.
func corsMiddleware(o CORSOptions) func(http.Handler) http.Handler {
	if !o.Enabled {
		return nil
	}
	opts := cors.Options{
		AllowedOrigins:   o.AllowedOrigins,
		AllowedMethods:   o.AllowedMethods,
		AllowedHeaders:   o.AllowedHeaders,
		AllowCredentials: o.AllowCredentials,
		MaxAge:           o.MaxAge,
	}
	if o.AllowCredentials && anyOrigin(o.AllowedOrigins) {
		opts.AllowedOrigins = nil
		opts.AllowOriginFunc = func(_ *http.Request, origin string) bool { return true }
	}
	return cors.Handler(opts)
}

func anyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
