package httpapi

import "net/http"

const defaultMaxBodyBytes int64 = 1 << 20

// maxBodyBytes controls the maximum allowed request body size for JSON endpoints.
var maxBodyBytes = defaultMaxBodyBytes

// SetMaxBodyBytes configures the maximum request body size (<= 0 restores the 1 MiB default).
func SetMaxBodyBytes(n int64) {
	if n <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
		return
	}
	maxBodyBytes = n
}

// CORSOptions configures the CORS middleware. When Enabled is false no CORS
// headers are added.
type CORSOptions struct {
	Enabled          bool
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// DefaultCORSOptions allows any origin, method and header, with credentials.
func DefaultCORSOptions() CORSOptions {
	return CORSOptions{
		Enabled:        true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodHead, http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           600,
	}
}

var corsOpts = DefaultCORSOptions()

// SetCORSOptions configures CORS behavior for muxes built afterwards.
func SetCORSOptions(o CORSOptions) {
	o.AllowedOrigins = append([]string(nil), o.AllowedOrigins...)
	o.AllowedMethods = append([]string(nil), o.AllowedMethods...)
	o.AllowedHeaders = append([]string(nil), o.AllowedHeaders...)
	corsOpts = o
}
