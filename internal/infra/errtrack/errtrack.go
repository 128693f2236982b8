// Package errtrack wraps the Sentry SDK behind a small reporting interface
// so that unexpected failures can be asserted on in tests.
package errtrack

import (
	"context"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// Reporter receives failures that must never be silently swallowed.
type Reporter interface {
	CaptureException(ctx context.Context, err error)
}

// Init configures the Sentry client. With an empty DSN nothing is sent and
// the returned flush is a no-op.
func Init(dsn, env, release string) (func(), error) {
	if dsn == "" {
		return func() {}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: env,
		Release:     release,
	})
	if err != nil {
		return nil, fmt.Errorf("errtrack: failed to init sentry: %w", err)
	}

	return func() { sentry.Flush(2 * time.Second) }, nil
}

// SentryReporter reports through the hub bound to the request context when
// present, the global hub otherwise.
type SentryReporter struct{}

func NewSentryReporter() *SentryReporter {
	return &SentryReporter{}
}

func (*SentryReporter) CaptureException(ctx context.Context, err error) {
	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		hub.CaptureException(err)
		return
	}
	sentry.CurrentHub().CaptureException(err)
}
