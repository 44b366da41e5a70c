package usecase

import (
	"context"
	"fmt"
	"strings"

	"ai-tasker/internal/decode"
	"ai-tasker/internal/model"
	"ai-tasker/internal/plan"
	"ai-tasker/internal/plan/repository"
)

// GenerateTasks asks the model for a task plan, stores it and exports it
// to the external sink when one is configured.
func (uc *implUseCase) GenerateTasks(ctx context.Context, sc model.Scope, input plan.TasksInput) (plan.TasksOutput, error) {
	input.Goal = strings.TrimSpace(input.Goal)
	if input.Goal == "" {
		return plan.TasksOutput{}, plan.ErrEmptyGoal
	}

	uc.l.Infof(ctx, "GenerateTasks: user=%s goal_length=%d answers=%d", sc.UserID, len(input.Goal), len(input.Answers))

	content, resp, err := uc.complete(ctx, uc.tasksRequest(input))
	if err != nil {
		return plan.TasksOutput{}, err
	}

	res, err := uc.decoder.Decode(content, decode.KindTasks)
	if err != nil {
		uc.logDecodeFailure(ctx, "GenerateTasks", err)
		return plan.TasksOutput{}, err
	}

	opt := repository.SaveTasksOptions{
		UserID:             sc.UserID,
		Goal:               input.Goal,
		Provider:           resp.ProviderName,
		ProjectTitle:       res.ProjectTitle,
		ProjectDescription: res.ProjectDescription,
		Tasks:              res.Tasks,
	}
	saved, err := uc.repo.SaveTasks(ctx, opt)
	if err != nil {
		return plan.TasksOutput{}, fmt.Errorf("failed to store tasks: %w", err)
	}

	out := plan.TasksOutput{
		PlanID:             saved.PlanID,
		ProjectTitle:       res.ProjectTitle,
		ProjectDescription: res.ProjectDescription,
		Tasks:              res.Tasks,
		Provider:           resp.ProviderName,
		Model:              resp.ModelName,
		Strategy:           res.Strategy,
	}
	for _, t := range res.Tasks {
		out.TotalMinutes += int(t.EstimatedMinutes)
	}

	// Export failures degrade gracefully; the plan is already stored.
	if uc.exporter != nil {
		exported, err := uc.exporter.SaveTasks(ctx, opt)
		if err != nil {
			uc.l.Warnf(ctx, "GenerateTasks: export of plan %s failed: %v", saved.PlanID, err)
		} else {
			out.ExportedURLs = exported.URLs
		}
	}

	uc.l.Infof(ctx, "GenerateTasks: plan=%s tasks=%d minutes=%d strategy=%s provider=%s",
		saved.PlanID, len(out.Tasks), out.TotalMinutes, res.Strategy, resp.ProviderName)

	return out, nil
}
