package decode

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPayload means the response body was empty or is not a chat-completion envelope.
	ErrEmptyPayload = errors.New("decode: empty or undecodable response payload")

	// ErrNoContent means the envelope decoded but carries no message content.
	ErrNoContent = errors.New("decode: response carries no message content")
)

// UnrecognizedShapeError is returned when no strategy yields a record.
// Raw holds the content exactly as received.
type UnrecognizedShapeError struct {
	Kind Kind
	Raw  string
}

func (e *UnrecognizedShapeError) Error() string {
	return fmt.Sprintf("decode: no %s found in content (%d bytes)", e.Kind, len(e.Raw))
}
