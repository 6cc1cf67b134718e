package config

import (
	"solarcast/internal/httpapi"
	"solarcast/internal/registry"
)

// CORSOptions merges the file settings over the permissive defaults.
func (c Config) CORSOptions() httpapi.CORSOptions {
	o := httpapi.DefaultCORSOptions()
	if c.CORS.Enabled != nil {
		o.Enabled = *c.CORS.Enabled
	}
	if len(c.CORS.AllowedOrigins) > 0 {
		o.AllowedOrigins = c.CORS.AllowedOrigins
	}
	if len(c.CORS.AllowedMethods) > 0 {
		o.AllowedMethods = c.CORS.AllowedMethods
	}
	if len(c.CORS.AllowedHeaders) > 0 {
		o.AllowedHeaders = c.CORS.AllowedHeaders
	}
	if c.CORS.AllowCredentials != nil {
		o.AllowCredentials = *c.CORS.AllowCredentials
	}
	return o
}

// ObjectStoreConfig converts the file settings for the registry opener.
func (c Config) ObjectStoreConfig() registry.ObjectStoreConfig {
	return registry.ObjectStoreConfig{
		Endpoint:  c.ObjectStore.Endpoint,
		AccessKey: c.ObjectStore.AccessKey,
		SecretKey: c.ObjectStore.SecretKey,
		UseSSL:    c.ObjectStore.UseSSL,
	}
}
