package registry

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"solarcast/internal/forecast"
)

const artifact = `{"start":"2015-01-01","t_scale_days":3652,"trend":{"k":0.1,"m":4.5},"interval":{"width":0.8,"sigma":0.5}}`

func writeArtifact(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoad_BothModels(t *testing.T) {
	dir := t.TempDir()
	src := Sources{
		Global:    writeArtifact(t, dir, "radiation_model.json", artifact),
		Diffusion: writeArtifact(t, dir, "Diff_radiation_model.json", artifact),
	}
	s, err := Load(context.Background(), src, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := s.Names(); len(got) != 2 || got[0] != Diffusion || got[1] != Global {
		t.Fatalf("names=%v", got)
	}
	p, ok := s.Lookup(Global)
	if !ok {
		t.Fatal("global missing")
	}
	rows, err := p.Predict(context.Background(), []time.Time{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})
	if err != nil || len(rows) != 1 {
		t.Fatalf("predict: %v %v", rows, err)
	}
	if s.Location(Diffusion) != src[Diffusion] {
		t.Fatalf("location=%q", s.Location(Diffusion))
	}
	if _, ok := s.Lookup("bogus"); ok {
		t.Fatal("unexpected model for bogus")
	}
}

func TestLoad_MissingArtifactFails(t *testing.T) {
	dir := t.TempDir()
	src := Sources{
		Global:    writeArtifact(t, dir, "g.json", artifact),
		Diffusion: filepath.Join(dir, "absent.json"),
	}
	_, err := Load(context.Background(), src, nil)
	if err == nil || !strings.Contains(err.Error(), "diffusion") {
		t.Fatalf("expected diffusion load error, got %v", err)
	}
}

func TestLoad_MalformedArtifactFails(t *testing.T) {
	dir := t.TempDir()
	src := Sources{
		Global:    writeArtifact(t, dir, "g.json", "{"),
		Diffusion: writeArtifact(t, dir, "d.json", artifact),
	}
	if _, err := Load(context.Background(), src, nil); err == nil {
		t.Fatal("expected error for malformed artifact")
	}
}

func TestLoad_SourceNotConfigured(t *testing.T) {
	dir := t.TempDir()
	src := Sources{Global: writeArtifact(t, dir, "g.json", artifact)}
	if _, err := Load(context.Background(), src, nil); err == nil {
		t.Fatal("expected error for missing diffusion source")
	}
}

type mapOpener map[string]string

func (m mapOpener) Open(_ context.Context, loc string) (io.ReadCloser, error) {
	body, ok := m[loc]
	if !ok {
		return nil, errors.New("not found: " + loc)
	}
	return io.NopCloser(strings.NewReader(body)), nil
}

func TestLoad_CustomOpener(t *testing.T) {
	op := mapOpener{"s3://models/g.json": artifact, "s3://models/d.yaml": "start: \"2015-01-01\"\nt_scale_days: 1\ninterval:\n  width: 0.5\n"}
	s, err := Load(context.Background(), Sources{Global: "s3://models/g.json", Diffusion: "s3://models/d.yaml"}, op)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := s.Lookup(Diffusion); !ok {
		t.Fatal("diffusion missing")
	}
}

func TestNew_CopiesMap(t *testing.T) {
	m := map[string]forecast.Predictor{Global: &forecast.AdditiveModel{}}
	s := New(m)
	delete(m, Global)
	if _, ok := s.Lookup(Global); !ok {
		t.Fatal("store should not alias the input map")
	}
}

func TestDefaultSources(t *testing.T) {
	src := DefaultSources()
	if src[Global] != DefaultGlobalPath || src[Diffusion] != DefaultDiffusionPath {
		t.Fatalf("unexpected defaults: %v", src)
	}
	if src.RequiresObjectStore() {
		t.Fatal("defaults are local files")
	}
}
