package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/goccy/go-json"

	"ai-tasker/internal/plan/repository"
	"ai-tasker/pkg/llmprovider"
)

// mockLogger records error lines so tests can assert on raw-content logging.
type mockLogger struct {
	mu     sync.Mutex
	errors []string
	warns  []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) Error(ctx context.Context, arg ...any) {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockCompleter replies with a chat-completion envelope around content.
type mockCompleter struct {
	content string
	body    []byte // overrides content when set
	err     error
	block   bool // wait for ctx cancellation

	lastReq *llmprovider.Request
}

func (m *mockCompleter) Complete(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.lastReq = req
	if m.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if m.err != nil {
		return nil, m.err
	}
	body := m.body
	if body == nil {
		body = envelope(m.content)
	}
	return &llmprovider.Response{Body: body, ProviderName: "openai", ModelName: "gpt-4o-mini"}, nil
}

func envelope(content string) []byte {
	body, _ := json.Marshal(map[string]any{
		"choices": []any{map[string]any{"message": map[string]any{"role": "assistant", "content": content}}},
	})
	return body
}

// mockSink records exported plans.
type mockSink struct {
	err   error
	tasks []repository.SaveTasksOptions
}

func (s *mockSink) SaveQuestions(ctx context.Context, opt repository.SaveQuestionsOptions) (repository.SaveResult, error) {
	return repository.SaveResult{}, s.err
}

func (s *mockSink) SaveTasks(ctx context.Context, opt repository.SaveTasksOptions) (repository.SaveResult, error) {
	if s.err != nil {
		return repository.SaveResult{}, s.err
	}
	s.tasks = append(s.tasks, opt)
	return repository.SaveResult{URLs: []string{"http://memos.local/m/1"}}, nil
}
