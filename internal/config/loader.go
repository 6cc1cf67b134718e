package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"solarcast/internal/registry"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "SOLARCAST_"

// Config holds runtime parameters for the service.
type Config struct {
	Addr                   string      `json:"addr" yaml:"addr" toml:"addr"`
	GlobalModel            string      `json:"global_model" yaml:"global_model" toml:"global_model"`
	DiffusionModel         string      `json:"diffusion_model" yaml:"diffusion_model" toml:"diffusion_model"`
	LogLevel               string      `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat              string      `json:"log_format" yaml:"log_format" toml:"log_format"`
	MaxBodyBytes           int64       `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes"`
	ShutdownTimeoutSeconds int         `json:"shutdown_timeout_seconds" yaml:"shutdown_timeout_seconds" toml:"shutdown_timeout_seconds"`
	CORS                   CORS        `json:"cors" yaml:"cors" toml:"cors"`
	ObjectStore            ObjectStore `json:"object_store" yaml:"object_store" toml:"object_store"`
}

// CORS mirrors httpapi.CORSOptions in file form. Enabled is a pointer so an
// omitted key keeps the default.
type CORS struct {
	Enabled          *bool    `json:"enabled,omitempty" yaml:"enabled,omitempty" toml:"enabled,omitempty"`
	AllowedOrigins   []string `json:"allowed_origins,omitempty" yaml:"allowed_origins,omitempty" toml:"allowed_origins,omitempty"`
	AllowedMethods   []string `json:"allowed_methods,omitempty" yaml:"allowed_methods,omitempty" toml:"allowed_methods,omitempty"`
	AllowedHeaders   []string `json:"allowed_headers,omitempty" yaml:"allowed_headers,omitempty" toml:"allowed_headers,omitempty"`
	AllowCredentials *bool    `json:"allow_credentials,omitempty" yaml:"allow_credentials,omitempty" toml:"allow_credentials,omitempty"`
}

// ObjectStore configures the S3-compatible source for s3:// model locations.
type ObjectStore struct {
	Endpoint  string `json:"endpoint" yaml:"endpoint" toml:"endpoint"`
	AccessKey string `json:"access_key" yaml:"access_key" toml:"access_key"`
	SecretKey string `json:"secret_key" yaml:"secret_key" toml:"secret_key"`
	UseSSL    bool   `json:"use_ssl" yaml:"use_ssl" toml:"use_ssl"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:                   ":8000",
		GlobalModel:            registry.DefaultGlobalPath,
		DiffusionModel:         registry.DefaultDiffusionPath,
		LogLevel:               "info",
		LogFormat:              "json",
		MaxBodyBytes:           1 << 20,
		ShutdownTimeoutSeconds: 5,
	}
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
// Keys absent from the file keep their Default values.
func Load(path string) (Config, error) {
	base := Default()
	cfg := base
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return base, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return base, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return base, err
		}
	default:
		return base, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

// LoadDotEnv loads KEY=VALUE pairs from files into the process environment
// without overriding variables that are already set. Missing files are skipped.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// ApplyEnv overlays SOLARCAST_* environment variables onto cfg.
func ApplyEnv(cfg Config) (Config, error) {
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok && v != "" {
			*dst = v
		}
	}
	str("ADDR", &cfg.Addr)
	str("GLOBAL_MODEL", &cfg.GlobalModel)
	str("DIFFUSION_MODEL", &cfg.DiffusionModel)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("LOG_FORMAT", &cfg.LogFormat)
	str("S3_ENDPOINT", &cfg.ObjectStore.Endpoint)
	str("S3_ACCESS_KEY", &cfg.ObjectStore.AccessKey)
	str("S3_SECRET_KEY", &cfg.ObjectStore.SecretKey)
	if v := os.Getenv(EnvPrefix + "S3_USE_SSL"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%sS3_USE_SSL: %w", EnvPrefix, err)
		}
		cfg.ObjectStore.UseSSL = b
	}
	if v := os.Getenv(EnvPrefix + "MAX_BODY_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%sMAX_BODY_BYTES: %w", EnvPrefix, err)
		}
		cfg.MaxBodyBytes = n
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail late at runtime.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if c.GlobalModel == "" || c.DiffusionModel == "" {
		return fmt.Errorf("both global_model and diffusion_model are required")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error", "off":
	default:
		return fmt.Errorf("unsupported log_level: %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("unsupported log_format: %q", c.LogFormat)
	}
	if c.ShutdownTimeoutSeconds < 0 {
		return fmt.Errorf("shutdown_timeout_seconds must be >= 0")
	}
	if c.Sources().RequiresObjectStore() && c.ObjectStore.Endpoint == "" {
		return fmt.Errorf("object_store.endpoint is required for s3:// model locations")
	}
	return nil
}

// Sources returns the model artifact locations.
func (c Config) Sources() registry.Sources {
	return registry.Sources{registry.Global: c.GlobalModel, registry.Diffusion: c.DiffusionModel}
}
