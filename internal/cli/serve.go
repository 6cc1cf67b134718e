package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"solarcast/internal/config"
	"solarcast/internal/httpapi"
	"solarcast/internal/manager"
	"solarcast/internal/registry"
)

// loadStore loads both models, through the object store when any location is s3://.
func loadStore(ctx context.Context, cfg config.Config) (*registry.Store, error) {
	src := cfg.Sources()
	var opener registry.Opener
	if src.RequiresObjectStore() {
		oo, err := registry.NewObjectOpener(cfg.ObjectStoreConfig())
		if err != nil {
			return nil, err
		}
		opener = oo
	}
	return registry.Load(ctx, src, opener)
}

// serve runs the HTTP server until ctx is canceled, then drains in-flight
// requests for up to ShutdownTimeoutSeconds. Forecasts still running after
// that are aborted and the remaining connections closed.
func serve(ctx context.Context, cfg config.Config, log zerolog.Logger) error {
	store, err := loadStore(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to load models")
		return fmt.Errorf("failed to load models: %w", err)
	}
	for _, name := range store.Names() {
		log.Info().Str("model_type", name).Str("location", store.Location(name)).Msg("model loaded")
	}

	httpapi.SetLogger(log)
	httpapi.SetDefaultLogLevel(cfg.LogLevel)
	httpapi.SetCORSOptions(cfg.CORSOptions())
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	// Handlers outlive the signal: the base context is canceled only once the
	// drain window expires.
	base, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()
	httpapi.SetBaseContext(base)

	mgr := manager.New(store)
	srv := &http.Server{
		Handler:           httpapi.NewMux(mgr),
		ReadHeaderTimeout: 10 * time.Second,
	}
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr, err)
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", ln.Addr().String()).Msg("solarcast listening")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	grace := time.Duration(cfg.ShutdownTimeoutSeconds) * time.Second
	sctx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	log.Info().Dur("grace", grace).Dur("uptime", mgr.Uptime()).Msg("shutting down")
	err = srv.Shutdown(sctx)
	cancelBase()
	if err != nil {
		log.Error().Err(err).Msg("graceful shutdown error")
		_ = srv.Close()
		return err
	}
	return nil
}
