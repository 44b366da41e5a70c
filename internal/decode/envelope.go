package decode

import (
	"bytes"
	"strings"

	json "github.com/goccy/go-json"
)

type chatEnvelope struct {
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Message struct {
		Content *string `json:"content"`
	} `json:"message"`
}

// UnwrapEnvelope returns the first choice's message content from a
// chat-completion response body.
func UnwrapEnvelope(body []byte) (string, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return "", ErrEmptyPayload
	}

	var env chatEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return "", ErrEmptyPayload
	}

	if len(env.Choices) == 0 {
		return "", ErrNoContent
	}

	content := env.Choices[0].Message.Content
	if content == nil || strings.TrimSpace(*content) == "" {
		return "", ErrNoContent
	}
	return *content, nil
}
