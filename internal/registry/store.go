package registry

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"solarcast/internal/forecast"
)

// Selector names of the two models the service serves.
const (
	Global    = "global"
	Diffusion = "diffusion"
)

// Default artifact locations, relative to the working directory.
const (
	DefaultGlobalPath    = "models/radiation_model.json"
	DefaultDiffusionPath = "models/Diff_radiation_model.json"
)

// Sources maps a selector name to an artifact location.
type Sources map[string]string

// DefaultSources returns the built-in artifact locations.
func DefaultSources() Sources {
	return Sources{Global: DefaultGlobalPath, Diffusion: DefaultDiffusionPath}
}

// Store holds the loaded model handles. It is populated once by Load and
// read-only afterwards, so lookups need no locking.
type Store struct {
	models map[string]forecast.Predictor
	paths  map[string]string
}

// Load opens and decodes every required artifact concurrently. Both Global
// and Diffusion must be present in src; any missing or malformed artifact
// fails the load.
func Load(ctx context.Context, src Sources, opener Opener) (*Store, error) {
	if opener == nil {
		opener = FileOpener{}
	}
	names := []string{Global, Diffusion}
	for _, name := range names {
		if src[name] == "" {
			return nil, fmt.Errorf("model %s: no artifact location configured", name)
		}
	}

	loaded := make([]*forecast.AdditiveModel, len(names))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			m, err := loadOne(ctx, opener, src[name])
			if err != nil {
				return fmt.Errorf("model %s: %w", name, err)
			}
			loaded[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s := &Store{models: make(map[string]forecast.Predictor, len(names)), paths: make(map[string]string, len(names))}
	for i, name := range names {
		s.models[name] = loaded[i]
		s.paths[name] = src[name]
	}
	return s, nil
}

func loadOne(ctx context.Context, opener Opener, loc string) (*forecast.AdditiveModel, error) {
	rc, err := opener.Open(ctx, loc)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return forecast.Decode(loc, rc)
}

// New builds a Store from already-constructed predictors. Intended for tests
// and embedding; the caller must not mutate the predictors afterwards.
func New(models map[string]forecast.Predictor) *Store {
	s := &Store{models: make(map[string]forecast.Predictor, len(models)), paths: map[string]string{}}
	for k, v := range models {
		s.models[k] = v
	}
	return s
}

// Lookup returns the model registered under name.
func (s *Store) Lookup(name string) (forecast.Predictor, bool) {
	p, ok := s.models[name]
	return p, ok
}

// Names returns the registered selector names, sorted.
func (s *Store) Names() []string {
	out := make([]string, 0, len(s.models))
	for k := range s.models {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Location returns the artifact location a model was loaded from, if any.
func (s *Store) Location(name string) string { return s.paths[name] }
