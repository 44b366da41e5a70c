package repository

import (
	"errors"

	"ai-tasker/internal/model"
)

// ErrNotFound is returned by GetPlan for unknown IDs or another user's plan.
var ErrNotFound = errors.New("plan not found")

// SaveQuestionsOptions holds the parameters for storing clarifying questions.
type SaveQuestionsOptions struct {
	UserID    string
	Goal      string
	Provider  string
	Questions []model.ClarifyingQuestion
}

// SaveTasksOptions holds the parameters for storing a task plan.
type SaveTasksOptions struct {
	UserID             string
	Goal               string
	Provider           string
	ProjectTitle       string
	ProjectDescription string
	Tasks              []model.GeneratedTask
}

// SaveResult identifies what a sink stored.
type SaveResult struct {
	PlanID string
	// URLs holds one user-facing link per stored task, when the sink has them.
	URLs []string
}

// ListPlansOptions holds the parameters for listing plans.
type ListPlansOptions struct {
	UserID string
	Kind   model.PlanKind // Empty lists every kind
	Limit  int            // Max number of results (default 20)
	Offset int            // Pagination offset
}
