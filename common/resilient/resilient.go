// Package resilient implements the remote-call-with-local-fallback shape
// shared by the intent classifier and the chat responder: attempt a remote
// operation under a deadline, and on any failure substitute a deterministic
// local result. Callers always get a value.
package resilient

import (
	"context"
	"log/slog"
	"time"
)

// Call runs remote with a timeout-bound context and returns its result.
// Any error (nil remote, network failure, malformed response, timeout)
// degrades to fallback. Fallback must be pure and total.
func Call[T any](ctx context.Context, timeout time.Duration, remote func(ctx context.Context) (T, error), fallback func() T) T {
	if remote == nil {
		return fallback()
	}

	callCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	result, err := remote(callCtx)
	if err != nil {
		slog.WarnContext(ctx, "remote call failed, using local fallback", "error", err)
		return fallback()
	}
	return result
}
