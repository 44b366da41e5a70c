package plan

import (
	"context"
	"errors"

	"ai-tasker/internal/decode"
	"ai-tasker/pkg/llmprovider"
	"ai-tasker/pkg/transport"
)

// Domain-specific errors for the plan package.
var (
	ErrEmptyGoal    = errors.New("goal is empty")
	ErrEmptyContent = errors.New("content is empty")
	ErrInvalidKind  = errors.New("kind must be questions or tasks")
	ErrCancelled    = errors.New("operation cancelled")
	ErrPlanNotFound = errors.New("plan not found")
)

// ErrorKind classifies a planning failure for callers.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindInvalidInput
	KindMissingCredential
	KindTransport
	KindUpstream
	KindEmptyPayload
	KindNoContent
	KindUnrecognizedShape
	KindCancelled
	KindNotFound
)

var kindNames = map[ErrorKind]string{
	KindInternal:          "internal",
	KindInvalidInput:      "invalid_input",
	KindMissingCredential: "missing_credential",
	KindTransport:         "transport_error",
	KindUpstream:          "upstream_error",
	KindEmptyPayload:      "empty_payload",
	KindNoContent:         "no_content",
	KindUnrecognizedShape: "unrecognized_shape",
	KindCancelled:         "cancelled",
	KindNotFound:          "not_found",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "internal"
}

// KindOf classifies err. Transport failures are checked before context
// errors because a provider-chain timeout wraps context.DeadlineExceeded
// inside a *transport.Error.
func KindOf(err error) ErrorKind {
	var (
		terr     *transport.Error
		uerr     *llmprovider.UpstreamError
		shapeErr *decode.UnrecognizedShapeError
	)

	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, ErrEmptyGoal), errors.Is(err, ErrEmptyContent), errors.Is(err, ErrInvalidKind):
		return KindInvalidInput
	case errors.Is(err, llmprovider.ErrMissingCredential):
		return KindMissingCredential
	case errors.As(err, &terr):
		return KindTransport
	case errors.As(err, &uerr):
		return KindUpstream
	case errors.Is(err, decode.ErrEmptyPayload):
		return KindEmptyPayload
	case errors.Is(err, decode.ErrNoContent):
		return KindNoContent
	case errors.As(err, &shapeErr):
		return KindUnrecognizedShape
	case errors.Is(err, ErrCancelled), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCancelled
	case errors.Is(err, ErrPlanNotFound):
		return KindNotFound
	default:
		return KindInternal
	}
}

// Message returns a user-facing description of kind.
func Message(kind ErrorKind) string {
	switch kind {
	case KindInvalidInput:
		return "The request is missing a goal or content."
	case KindMissingCredential:
		return "No API key is configured for any enabled provider. Add one and try again."
	case KindTransport:
		return "Could not reach the AI provider. Check your connection and try again."
	case KindUpstream:
		return "The AI provider returned an error. Try again later."
	case KindEmptyPayload:
		return "The AI provider returned an empty response."
	case KindNoContent:
		return "The AI provider's response contained no content."
	case KindUnrecognizedShape:
		return "The AI response could not be understood. Try again."
	case KindCancelled:
		return "The request was cancelled."
	case KindNotFound:
		return "The plan was not found."
	default:
		return "Something went wrong. Try again."
	}
}
