package middleware

import (
	"ai-tasker/pkg/log"
)

type Middleware struct {
	l        log.Logger
	adminKey string
	limiter  *rateLimiter
}

// New builds the middleware set. A non-positive requestsPerMin disables rate limiting.
func New(l log.Logger, adminKey string, requestsPerMin int) Middleware {
	mw := Middleware{
		l:        l,
		adminKey: adminKey,
	}
	if requestsPerMin > 0 {
		mw.limiter = newRateLimiter(requestsPerMin)
	}
	return mw
}
