package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadYAML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.yaml", "addr: :9999\nglobal_model: /m/g.json\ndiffusion_model: /m/d.json\nlog_level: debug\ncors:\n  enabled: false\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9999" || cfg.GlobalModel != "/m/g.json" || cfg.DiffusionModel != "/m/d.json" || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if cfg.CORS.Enabled == nil || *cfg.CORS.Enabled {
		t.Fatalf("expected cors.enabled=false, got %+v", cfg.CORS)
	}
	// untouched keys keep defaults
	if cfg.LogFormat != "json" || cfg.MaxBodyBytes != 1<<20 {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadJSON(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.json", `{"addr":":7070","max_body_bytes":2048,"object_store":{"endpoint":"minio:9000","use_ssl":true}}`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":7070" || cfg.MaxBodyBytes != 2048 || cfg.ObjectStore.Endpoint != "minio:9000" || !cfg.ObjectStore.UseSSL {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadTOML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.toml", "addr=\":8081\"\nlog_format=\"console\"\nshutdown_timeout_seconds=9\n[cors]\nallowed_origins=[\"https://a.example\"]\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8081" || cfg.LogFormat != "console" || cfg.ShutdownTimeoutSeconds != 9 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "https://a.example" {
		t.Fatalf("unexpected cors: %+v", cfg.CORS)
	}
}

func TestLoadErrors(t *testing.T) {
	d := t.TempDir()
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
	if _, err := Load(filepath.Join(d, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	p := writeTempFile(t, d, "cfg.ini", "addr=:1\n")
	if _, err := Load(p); err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Fatalf("expected unsupported extension error, got %v", err)
	}
	bad := writeTempFile(t, d, "bad.json", "{")
	cfg, err := Load(bad)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if cfg.Addr != Default().Addr {
		t.Fatalf("expected defaults on decode error, got %+v", cfg)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SOLARCAST_ADDR", ":1234")
	t.Setenv("SOLARCAST_GLOBAL_MODEL", "s3://models/g.json")
	t.Setenv("SOLARCAST_LOG_LEVEL", "warn")
	t.Setenv("SOLARCAST_S3_ENDPOINT", "localhost:9000")
	t.Setenv("SOLARCAST_S3_USE_SSL", "true")
	t.Setenv("SOLARCAST_MAX_BODY_BYTES", "4096")
	cfg, err := ApplyEnv(Default())
	if err != nil {
		t.Fatalf("apply env: %v", err)
	}
	if cfg.Addr != ":1234" || cfg.GlobalModel != "s3://models/g.json" || cfg.LogLevel != "warn" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if cfg.ObjectStore.Endpoint != "localhost:9000" || !cfg.ObjectStore.UseSSL || cfg.MaxBodyBytes != 4096 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if cfg.DiffusionModel != Default().DiffusionModel {
		t.Fatalf("unset env var changed diffusion_model: %q", cfg.DiffusionModel)
	}
}

func TestApplyEnvInvalid(t *testing.T) {
	t.Setenv("SOLARCAST_S3_USE_SSL", "maybe")
	if _, err := ApplyEnv(Default()); err == nil {
		t.Fatalf("expected error for bad bool")
	}
	t.Setenv("SOLARCAST_S3_USE_SSL", "")
	t.Setenv("SOLARCAST_MAX_BODY_BYTES", "lots")
	if _, err := ApplyEnv(Default()); err == nil {
		t.Fatalf("expected error for bad int")
	}
}

func TestLoadDotEnv(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, ".env", "SOLARCAST_LOG_FORMAT=console\nSOLARCAST_ADDR=:5555\n")
	t.Setenv("SOLARCAST_ADDR", ":1111")
	t.Setenv("SOLARCAST_LOG_FORMAT", "")
	os.Unsetenv("SOLARCAST_LOG_FORMAT")
	if err := LoadDotEnv(p, filepath.Join(d, "absent.env")); err != nil {
		t.Fatalf("load dotenv: %v", err)
	}
	if got := os.Getenv("SOLARCAST_LOG_FORMAT"); got != "console" {
		t.Fatalf("expected console from .env, got %q", got)
	}
	if got := os.Getenv("SOLARCAST_ADDR"); got != ":1111" {
		t.Fatalf("existing env must win over .env, got %q", got)
	}
	if err := LoadDotEnv(filepath.Join(d, "nope.env")); err != nil {
		t.Fatalf("missing files should be skipped: %v", err)
	}
}

func TestValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	cases := map[string]func(*Config){
		"empty addr":       func(c *Config) { c.Addr = "" },
		"missing model":    func(c *Config) { c.DiffusionModel = "" },
		"bad level":        func(c *Config) { c.LogLevel = "loud" },
		"bad format":       func(c *Config) { c.LogFormat = "xml" },
		"negative grace":   func(c *Config) { c.ShutdownTimeoutSeconds = -1 },
		"s3 sans endpoint": func(c *Config) { c.GlobalModel = "s3://b/k.json" },
	}
	for name, mut := range cases {
		c := Default()
		mut(&c)
		if err := c.Validate(); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestCORSOptionsOverlay(t *testing.T) {
	off := false
	c := Default()
	o := c.CORSOptions()
	if !o.Enabled || len(o.AllowedOrigins) != 1 || o.AllowedOrigins[0] != "*" || !o.AllowCredentials {
		t.Fatalf("unexpected default cors: %+v", o)
	}
	c.CORS.Enabled = &off
	c.CORS.AllowCredentials = &off
	c.CORS.AllowedOrigins = []string{"https://x.example"}
	o = c.CORSOptions()
	if o.Enabled || o.AllowCredentials || o.AllowedOrigins[0] != "https://x.example" {
		t.Fatalf("overlay not applied: %+v", o)
	}
	if len(o.AllowedMethods) == 0 {
		t.Fatalf("unset methods should keep defaults")
	}
}

func TestSourcesAndObjectStore(t *testing.T) {
	c := Default()
	c.ObjectStore = ObjectStore{Endpoint: "e:9000", AccessKey: "a", SecretKey: "s", UseSSL: true}
	src := c.Sources()
	if len(src) != 2 || src["global"] != c.GlobalModel || src["diffusion"] != c.DiffusionModel {
		t.Fatalf("unexpected sources: %v", src)
	}
	oc := c.ObjectStoreConfig()
	if oc.Endpoint != "e:9000" || oc.AccessKey != "a" || oc.SecretKey != "s" || !oc.UseSSL {
		t.Fatalf("unexpected object store config: %+v", oc)
	}
}
