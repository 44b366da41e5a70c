package credential

import "errors"

var (
	ErrNotFound  = errors.New("credential: not found")
	ErrReadOnly  = errors.New("credential: store is read-only")
	ErrEmptyName = errors.New("credential: name is required")

	// ErrStillProvided means writable copies were removed but a read-only
	// store such as the environment still supplies the credential.
	ErrStillProvided = errors.New("credential: still provided by a read-only store")
)
