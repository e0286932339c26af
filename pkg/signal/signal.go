// Package signal cancels a command's context on SIGINT or SIGTERM, so an
// interrupted edit still returns the repository to its main branch.
package signal

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/xrsl/rsm/pkg/log"
)

// WithInterrupt returns a context canceled when an interrupt arrives.
// The second interrupt is left to the default handler.
func WithInterrupt(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigCh:
			log.Debug("interrupted", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}
