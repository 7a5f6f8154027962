// Package ctxutil carries the calling identity through a context.
// It imports nothing from the module so any layer can use it.
package ctxutil

import "context"

// ActorKey is the context key for the calling identity.
type ActorKey struct{}

// WithActorID returns a context that carries actorID as the caller.
func WithActorID(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, ActorKey{}, actorID)
}

// ActorFromContext returns the caller carried by ctx, or "" if none was set.
func ActorFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ActorKey{}).(string); ok {
		return v
	}
	return ""
}
