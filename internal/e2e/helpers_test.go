package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"solarcast/internal/httpapi"
	"solarcast/internal/manager"
	"solarcast/internal/registry"
)

// repoModels points at the artifacts shipped in models/.
func repoModels() registry.Sources {
	dir := filepath.Join("..", "..", "models")
	return registry.Sources{
		registry.Global:    filepath.Join(dir, "radiation_model.json"),
		registry.Diffusion: filepath.Join(dir, "Diff_radiation_model.json"),
	}
}

func newServer(t *testing.T, src registry.Sources) *httptest.Server {
	t.Helper()
	store, err := registry.Load(context.Background(), src, nil)
	if err != nil {
		t.Fatalf("load models: %v", err)
	}
	srv := httptest.NewServer(httpapi.NewMux(manager.New(store)))
	t.Cleanup(srv.Close)
	return srv
}

func httpGet(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp, b
}

func httpPostJSON(t *testing.T, url string, body any) (*http.Response, []byte) {
	t.Helper()
	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp, b
}

func decode[T any](t *testing.T, b []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		t.Fatalf("decode %T: %v\n%s", v, err, b)
	}
	return v
}
