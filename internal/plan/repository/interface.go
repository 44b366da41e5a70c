package repository

import (
	"context"

	"ai-tasker/internal/model"
)

// Sink receives decoded records after a successful generation.
// Records are passed by value; a Sink never mutates them.
type Sink interface {
	SaveQuestions(ctx context.Context, opt SaveQuestionsOptions) (SaveResult, error)
	SaveTasks(ctx context.Context, opt SaveTasksOptions) (SaveResult, error)
}

// Repository is a Sink that can also read plans back.
type Repository interface {
	Sink
	GetPlan(ctx context.Context, userID, id string) (model.Plan, error)
	ListPlans(ctx context.Context, opt ListPlansOptions) ([]model.Plan, error)
}
