package secondary

import (
	"context"
	"time"
)

// CallerProvider defines the secondary port for resolving who is calling.
type CallerProvider interface {
	// CurrentCaller returns the identity of the caller of the current operation.
	CurrentCaller(ctx context.Context) (string, error)
}

// Clock defines the secondary port for reading the current time.
type Clock interface {
	Now() time.Time
}
