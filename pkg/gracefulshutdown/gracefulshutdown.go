// Package gracefulshutdown coordinates signal handling, the server base
// context, and readiness reporting during shutdown.
package gracefulshutdown

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"
)

const drainTimeout = 30 * time.Second

var (
	baseCtx    context.Context
	cancelBase context.CancelFunc
	inShutdown atomic.Bool
)

func init() {
	baseCtx, cancelBase = context.WithCancel(context.Background())
}

// SubscribeForShutdown installs the signal handler. Call once at startup,
// before the server starts.
func SubscribeForShutdown() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-ch
		slog.Info("shutdown signal received", "signal", sig.String())
		inShutdown.Store(true)
	}()
}

// GetServerBaseContext returns the context used as the base for all
// requests and background workers. It is cancelled once draining starts.
func GetServerBaseContext() context.Context {
	return baseCtx
}

// WaitForShutdown blocks until a shutdown signal arrives, flips readiness,
// waits for load balancers to notice, then drains the server.
func WaitForShutdown(srv *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	inShutdown.Store(true)

	// give upstream probes a chance to see the failing healthcheck
	time.Sleep(2 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
	cancelBase()
	slog.Info("server stopped")
}

// HealthCheckMiddleware fails the healthcheck once shutdown has started
// so that traffic is routed away before connections are drained.
func HealthCheckMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if inShutdown.Load() {
			http.Error(w, "shutting down", http.StatusServiceUnavailable)
			return
		}
		if next != nil {
			next.ServeHTTP(w, r)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}
