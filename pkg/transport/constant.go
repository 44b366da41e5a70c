package transport

import "time"

const (
	// DefaultTimeout bounds a single request including reading the body.
	DefaultTimeout = 60 * time.Second

	// DefaultMaxBodyBytes caps how much of a response body is read.
	DefaultMaxBodyBytes int64 = 4 << 20
)
