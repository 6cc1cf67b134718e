package manager

import (
	"time"

	"solarcast/internal/forecast"
	"solarcast/internal/registry"
)

// Lookup is the read-only view of the model store the manager needs.
type Lookup interface {
	Lookup(name string) (forecast.Predictor, bool)
}

// Manager dispatches forecast requests to the model named by model_type.
type Manager struct {
	store     Lookup
	startTime time.Time
}

// New returns a Manager over store and records the start time for Uptime.
func New(store Lookup) *Manager {
	return &Manager{store: store, startTime: time.Now()}
}

// Ready reports whether both selectors resolve to a loaded model.
func (m *Manager) Ready() bool {
	if m == nil || m.store == nil {
		return false
	}
	for _, name := range []string{registry.Global, registry.Diffusion} {
		if _, ok := m.store.Lookup(name); !ok {
			return false
		}
	}
	return true
}

// Uptime returns the time since the manager was constructed.
func (m *Manager) Uptime() time.Duration { return time.Since(m.startTime) }
