package memos

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"ai-tasker/internal/model"
	"ai-tasker/internal/plan/repository"
	pkgLog "ai-tasker/pkg/log"
)

const (
	defaultVisibility = "PRIVATE"
	maxConcurrentMemo = 4
	planTag           = "#ai-plan"
)

type implSink struct {
	client      *Client
	memoBaseURL string // e.g. "http://localhost:5230" for deep links
	visibility  string
	l           pkgLog.Logger
}

// New creates a sink that writes one memo per generated task.
func New(client *Client, memoBaseURL, visibility string, l pkgLog.Logger) repository.Sink {
	if visibility == "" {
		visibility = defaultVisibility
	}
	return &implSink{
		client:      client,
		memoBaseURL: strings.TrimRight(memoBaseURL, "/"),
		visibility:  visibility,
		l:           l,
	}
}

func (s *implSink) SaveQuestions(ctx context.Context, opt repository.SaveQuestionsOptions) (repository.SaveResult, error) {
	if len(opt.Questions) == 0 {
		return repository.SaveResult{}, nil
	}

	memo, err := s.client.CreateMemo(ctx, CreateMemoRequest{
		Content:    questionsMarkdown(opt),
		Visibility: s.visibility,
	})
	if err != nil {
		s.l.Errorf(ctx, "memos sink: failed to store questions: %v", err)
		return repository.SaveResult{}, err
	}

	res := repository.SaveResult{PlanID: memo.Name}
	if u := s.memoURL(memo); u != "" {
		res.URLs = []string{u}
	}
	return res, nil
}

// SaveTasks stores each task as its own memo. Failed items are skipped;
// an error is returned only when nothing could be stored.
func (s *implSink) SaveTasks(ctx context.Context, opt repository.SaveTasksOptions) (repository.SaveResult, error) {
	if len(opt.Tasks) == 0 {
		return repository.SaveResult{}, nil
	}

	urls := make([]string, len(opt.Tasks))
	errs := make([]error, len(opt.Tasks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentMemo)
	for i, t := range opt.Tasks {
		g.Go(func() error {
			memo, err := s.client.CreateMemo(gctx, CreateMemoRequest{
				Content:    taskMarkdown(opt, t),
				Visibility: s.visibility,
			})
			if err != nil {
				s.l.Warnf(gctx, "memos sink: task %d %q failed: %v", i, t.Title, err)
				errs[i] = err
				return nil // partial success
			}
			urls[i] = s.memoURL(memo)
			return nil
		})
	}
	_ = g.Wait()

	res := repository.SaveResult{URLs: make([]string, 0, len(urls))}
	var firstErr error
	for i, u := range urls {
		if errs[i] != nil {
			if firstErr == nil {
				firstErr = errs[i]
			}
			continue
		}
		if u != "" {
			res.URLs = append(res.URLs, u)
		}
	}

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}
	if failed == len(opt.Tasks) {
		return repository.SaveResult{}, fmt.Errorf("memos sink: all %d tasks failed: %w", failed, firstErr)
	}

	s.l.Infof(ctx, "memos sink: stored %d/%d tasks", len(opt.Tasks)-failed, len(opt.Tasks))
	return res, nil
}

func (s *implSink) memoURL(m *Memo) string {
	uid := m.uid()
	if uid == "" || s.memoBaseURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/m/%s", s.memoBaseURL, uid)
}

// taskMarkdown builds the Markdown body for one task memo.
func taskMarkdown(opt repository.SaveTasksOptions, t model.GeneratedTask) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("## %s\n\n", t.Title))
	if t.Description != nil {
		sb.WriteString(*t.Description)
		sb.WriteString("\n\n")
	}

	if opt.ProjectTitle != "" {
		sb.WriteString(fmt.Sprintf("- **Project:** %s\n", opt.ProjectTitle))
	}
	sb.WriteString(fmt.Sprintf("- **Priority:** #priority/%s\n", t.Priority))
	sb.WriteString(fmt.Sprintf("- **Estimated:** %d min\n", t.EstimatedMinutes))

	if len(t.Fields) > 0 {
		sb.WriteString("\n")
		for _, f := range t.Fields {
			req := ""
			if f.Required {
				req = " (required)"
			}
			sb.WriteString(fmt.Sprintf("- [ ] %s `%s`%s\n", f.Label, f.Type, req))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(planTag)
	return sb.String()
}

func questionsMarkdown(opt repository.SaveQuestionsOptions) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("## Questions: %s\n\n", opt.Goal))
	for i, q := range opt.Questions {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, q.Question))
		for _, o := range q.Options {
			sb.WriteString(fmt.Sprintf("   - %s\n", o))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(planTag)
	return sb.String()
}
