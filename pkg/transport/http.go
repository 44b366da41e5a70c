package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/time/rate"
)

func newHTTPTransport(cfg Config) *httpTransport {
	t := &httpTransport{
		client:       cfg.HTTPClient,
		maxBodyBytes: cfg.MaxBodyBytes,
	}
	if cfg.RequestsPerMinute > 0 {
		t.limiter = rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60.0), cfg.Burst)
	}
	return t
}

// Post sends body to url. Cancellation of ctx is returned as a context error.
func (t *httpTransport) Post(ctx context.Context, url string, headers map[string]string, body []byte) (*Response, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, &Error{URL: url, Err: fmt.Errorf("rate limit: %w", err)}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &Error{URL: url, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, t.maxBodyBytes))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &Error{URL: url, Err: fmt.Errorf("read body: %w", err)}
	}

	return &Response{StatusCode: resp.StatusCode, Body: data}, nil
}
