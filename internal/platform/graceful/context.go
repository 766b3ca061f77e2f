package graceful

import (
	"context"
	"log"
	"os/signal"
	"syscall"
)

// Context returns a context cancelled on SIGINT or SIGTERM.
func Context(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-ctx.Done()
		if sigErr := context.Cause(ctx); sigErr != nil {
			log.Printf("shutdown requested: %v", sigErr)
		}
	}()

	return ctx, stop
}
