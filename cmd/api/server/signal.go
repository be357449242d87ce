package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// WithSignal derives a context that is canceled on SIGINT or SIGTERM,
// which is what triggers the API's graceful shutdown path. The returned
// stop function detaches the signal handler.
func WithSignal(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(signals)
		cancel()
	}
}
