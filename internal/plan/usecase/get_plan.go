package usecase

import (
	"context"
	"errors"

	"ai-tasker/internal/model"
	"ai-tasker/internal/plan"
	"ai-tasker/internal/plan/repository"
)

func (uc *implUseCase) GetPlan(ctx context.Context, sc model.Scope, id string) (model.Plan, error) {
	p, err := uc.repo.GetPlan(ctx, sc.UserID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Plan{}, plan.ErrPlanNotFound
		}
		return model.Plan{}, err
	}
	return p, nil
}

func (uc *implUseCase) ListPlans(ctx context.Context, sc model.Scope, input plan.ListInput) ([]model.Plan, error) {
	if input.Kind != "" && input.Kind != model.PlanKindQuestions && input.Kind != model.PlanKindTasks {
		return nil, plan.ErrInvalidKind
	}
	return uc.repo.ListPlans(ctx, repository.ListPlansOptions{
		UserID: sc.UserID,
		Kind:   input.Kind,
		Limit:  input.Limit,
		Offset: max(input.Offset, 0),
	})
}
