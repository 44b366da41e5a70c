package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"ai-tasker/internal/model"
	"ai-tasker/internal/plan/repository"
	pkgLog "ai-tasker/pkg/log"
)

const defaultListLimit = 20

type implRepository struct {
	mu    sync.RWMutex
	plans map[string]model.Plan
	now   func() time.Time
	l     pkgLog.Logger
}

// New creates an in-process plan repository.
func New(l pkgLog.Logger) repository.Repository {
	return &implRepository{
		plans: make(map[string]model.Plan),
		now:   time.Now,
		l:     l,
	}
}

func (r *implRepository) SaveQuestions(ctx context.Context, opt repository.SaveQuestionsOptions) (repository.SaveResult, error) {
	p := model.Plan{
		ID:        uuid.NewString(),
		UserID:    opt.UserID,
		Kind:      model.PlanKindQuestions,
		Goal:      opt.Goal,
		Provider:  opt.Provider,
		Questions: cloneQuestions(opt.Questions),
		CreatedAt: r.now(),
	}
	r.store(p)
	r.l.Debugf(ctx, "memory repository: stored question plan %s (%d questions)", p.ID, len(p.Questions))
	return repository.SaveResult{PlanID: p.ID}, nil
}

func (r *implRepository) SaveTasks(ctx context.Context, opt repository.SaveTasksOptions) (repository.SaveResult, error) {
	p := model.Plan{
		ID:                 uuid.NewString(),
		UserID:             opt.UserID,
		Kind:               model.PlanKindTasks,
		Goal:               opt.Goal,
		Provider:           opt.Provider,
		ProjectTitle:       opt.ProjectTitle,
		ProjectDescription: opt.ProjectDescription,
		Tasks:              cloneTasks(opt.Tasks),
		CreatedAt:          r.now(),
	}
	r.store(p)
	r.l.Debugf(ctx, "memory repository: stored task plan %s (%d tasks)", p.ID, len(p.Tasks))
	return repository.SaveResult{PlanID: p.ID}, nil
}

func (r *implRepository) GetPlan(ctx context.Context, userID, id string) (model.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.plans[id]
	if !ok || p.UserID != userID {
		return model.Plan{}, repository.ErrNotFound
	}
	return p, nil
}

func (r *implRepository) ListPlans(ctx context.Context, opt repository.ListPlansOptions) ([]model.Plan, error) {
	limit := opt.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	r.mu.RLock()
	matched := make([]model.Plan, 0, len(r.plans))
	for _, p := range r.plans {
		if p.UserID != opt.UserID {
			continue
		}
		if opt.Kind != "" && p.Kind != opt.Kind {
			continue
		}
		matched = append(matched, p)
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID < matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if opt.Offset >= len(matched) {
		return []model.Plan{}, nil
	}
	matched = matched[opt.Offset:]
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *implRepository) store(p model.Plan) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plans[p.ID] = p
}

// cloneQuestions copies the slices so callers cannot alias stored plans.
func cloneQuestions(in []model.ClarifyingQuestion) []model.ClarifyingQuestion {
	out := make([]model.ClarifyingQuestion, len(in))
	for i, q := range in {
		if q.Options != nil {
			q.Options = append([]string(nil), q.Options...)
		}
		out[i] = q
	}
	return out
}

func cloneTasks(in []model.GeneratedTask) []model.GeneratedTask {
	out := make([]model.GeneratedTask, len(in))
	for i, t := range in {
		t.Fields = append([]model.InputFieldDefinition{}, t.Fields...)
		if t.Description != nil {
			d := *t.Description
			t.Description = &d
		}
		out[i] = t
	}
	return out
}
