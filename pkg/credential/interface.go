package credential

import "context"

// Store holds provider credentials by name.
// Implementations are safe for concurrent use.
type Store interface {
	// Get returns ErrNotFound when name has no value.
	Get(ctx context.Context, name string) (string, error)
	Set(ctx context.Context, name, value string) error
	Delete(ctx context.Context, name string) error
}
