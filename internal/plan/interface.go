package plan

import (
	"context"

	"ai-tasker/internal/model"
)

// UseCase defines the business logic interface for the planning domain.
type UseCase interface {
	// GenerateQuestions asks the model for clarifying questions about a goal.
	GenerateQuestions(ctx context.Context, sc model.Scope, input QuestionsInput) (QuestionsOutput, error)

	// GenerateTasks asks the model for a task plan, using any answers to earlier questions.
	GenerateTasks(ctx context.Context, sc model.Scope, input TasksInput) (TasksOutput, error)

	// Decode runs raw model output through the decode pipeline without calling a provider.
	Decode(ctx context.Context, sc model.Scope, input DecodeInput) (DecodeOutput, error)

	// GetPlan returns a stored plan owned by the scope's user.
	GetPlan(ctx context.Context, sc model.Scope, id string) (model.Plan, error)

	// ListPlans returns the scope user's stored plans, newest first.
	ListPlans(ctx context.Context, sc model.Scope, input ListInput) ([]model.Plan, error)
}
