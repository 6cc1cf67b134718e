package httpapi

import (
	"context"
	"errors"
	"net/http"
)

// serverBaseCtx is a process-level context canceled once the shutdown drain
// window has expired. Defaults to Background if not set.
var serverBaseCtx = context.Background()

// SetBaseContext sets the process-level base context used by handlers.
func SetBaseContext(ctx context.Context) {
	if ctx == nil {
		serverBaseCtx = context.Background()
		return
	}
	serverBaseCtx = ctx
}

// joinContexts returns a child of req that is also canceled when base is done.
// The returned cancel func must be called when the handler ends.
func joinContexts(base, req context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(req)
	if base.Err() != nil {
		cancel()
		return ctx, cancel
	}
	stop := context.AfterFunc(base, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

// clientGone reports whether the client canceled the request or disconnected.
func clientGone(r *http.Request) bool { return r.Context().Err() != nil }

// abortedByShutdown reports whether err comes from the base context being
// canceled after the drain window closed.
func abortedByShutdown(err error) bool {
	if serverBaseCtx.Err() == nil {
		return false
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
