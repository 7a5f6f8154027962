// Package identity contains adapters that tell the application who is
// calling and what time it is.
package identity

import (
	"context"
	"time"

	"github.com/example/electa/internal/ctxutil"
	"github.com/example/electa/internal/ports/secondary"
)

// CallerProviderAdapter resolves the caller from the context actor,
// falling back to a configured default identity.
type CallerProviderAdapter struct {
	fallback string
}

// NewCallerProvider creates a CallerProviderAdapter. fallback may be empty.
func NewCallerProvider(fallback string) *CallerProviderAdapter {
	return &CallerProviderAdapter{fallback: fallback}
}

// CurrentCaller returns the context actor or the fallback. An empty result
// is not an error here; guards reject blank callers.
func (p *CallerProviderAdapter) CurrentCaller(ctx context.Context) (string, error) {
	if actor := ctxutil.ActorFromContext(ctx); actor != "" {
		return actor, nil
	}
	return p.fallback, nil
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant. Used for --at and tests.
type FixedClock struct {
	At time.Time
}

// Now returns the pinned instant.
func (c FixedClock) Now() time.Time {
	return c.At
}

var (
	_ secondary.CallerProvider = (*CallerProviderAdapter)(nil)
	_ secondary.Clock          = SystemClock{}
	_ secondary.Clock          = FixedClock{}
)
