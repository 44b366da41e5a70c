package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-tasker/internal/plan"
	"ai-tasker/pkg/response"
)

// statusClientClosedRequest is the nginx convention for a request the client abandoned.
const statusClientClosedRequest = 499

var kindStatus = map[plan.ErrorKind]int{
	plan.KindInvalidInput:      http.StatusBadRequest,
	plan.KindMissingCredential: http.StatusPreconditionFailed,
	plan.KindTransport:         http.StatusBadGateway,
	plan.KindUpstream:          http.StatusBadGateway,
	plan.KindEmptyPayload:      http.StatusBadGateway,
	plan.KindNoContent:         http.StatusBadGateway,
	plan.KindUnrecognizedShape: http.StatusBadGateway,
	plan.KindCancelled:         statusClientClosedRequest,
	plan.KindNotFound:          http.StatusNotFound,
}

// mapError writes the response for a use-case error.
// Offline decoding failures are the caller's input, so they map to 422.
func (h *handler) mapError(c *gin.Context, err error, offline bool) {
	kind := plan.KindOf(err)

	status, ok := kindStatus[kind]
	if !ok {
		h.l.Errorf(c.Request.Context(), "unclassified error: %v", err)
		response.InternalError(c, err)
		return
	}
	if offline && status == http.StatusBadGateway {
		status = http.StatusUnprocessableEntity
	}
	response.ErrorWithStatus(c, status, kind.String(), plan.Message(kind))
}
