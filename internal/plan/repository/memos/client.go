package memos

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const (
	defaultClientTimeout = 15 * time.Second
	errorBodyLimit       = 512
)

// StatusError is a non-2xx reply from Memos. Body is truncated.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("memos API create error %d: %s", e.StatusCode, e.Body)
}

// Client writes exported plans to a Memos instance. Only memo creation is
// needed: plans are exported once and never read back.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a client for the instance at baseURL. An empty token sends no Authorization header.
func NewClient(baseURL, accessToken string) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: defaultClientTimeout},
	}
}

// CreateMemo posts one memo. Memos answers 200 or 201 depending on version; any 2xx is success.
func (c *Client) CreateMemo(ctx context.Context, req CreateMemoRequest) (*Memo, error) {
	url := fmt.Sprintf("%s/api/v1/memos", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal create memo request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build create memo request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.accessToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call memos create API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	var memo Memo
	if err := json.NewDecoder(resp.Body).Decode(&memo); err != nil {
		return nil, fmt.Errorf("failed to decode memos create response: %w", err)
	}
	return &memo, nil
}

// CreateMemoRequest is the body for POST /api/v1/memos.
type CreateMemoRequest struct {
	Content    string `json:"content"`
	Visibility string `json:"visibility"`
}

// Memo is the subset of the Memos memo object used to link exported tasks.
type Memo struct {
	Name       string `json:"name"`
	UID        string `json:"uid"`
	Content    string `json:"content"`
	Visibility string `json:"visibility"`
	CreateTime string `json:"createTime"`
}

// uid returns the memo uid, falling back to the "memos/{uid}" resource name.
func (m *Memo) uid() string {
	if m.UID != "" {
		return m.UID
	}
	if _, uid, ok := strings.Cut(m.Name, "/"); ok {
		return uid
	}
	return ""
}
