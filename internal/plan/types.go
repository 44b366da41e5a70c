package plan

import (
	"ai-tasker/internal/decode"
	"ai-tasker/internal/model"
)

// QuestionsInput is the input for clarifying question generation.
type QuestionsInput struct {
	Goal string
	// Count of zero uses the configured default.
	Count int
}

// QuestionsOutput is the result of clarifying question generation.
type QuestionsOutput struct {
	PlanID    string
	Questions []model.ClarifyingQuestion
	Provider  string
	Model     string
	Strategy  string
}

// Answer pairs a clarifying question with the user's reply.
type Answer struct {
	Question string
	Answer   string
}

// TasksInput is the input for task generation. Everything but Goal is optional.
type TasksInput struct {
	Goal               string
	Answers            []Answer
	TimeAvailableHours float64
	Category           string
	PriorityHint       string
	// Style overrides the configured task style.
	Style string
}

// TasksOutput is the result of task generation.
type TasksOutput struct {
	PlanID             string
	ProjectTitle       string
	ProjectDescription string
	Tasks              []model.GeneratedTask
	TotalMinutes       int
	Provider           string
	Model              string
	Strategy           string
	// ExportedURLs links to the tasks in the external sink, when one is configured.
	ExportedURLs []string
}

// DecodeInput is the input for offline decoding.
type DecodeInput struct {
	Content string
	Kind    decode.Kind
	// Envelope marks Content as a full chat-completion response body.
	Envelope bool
}

// DecodeOutput is the result of offline decoding.
type DecodeOutput struct {
	Strategy           string
	Questions          []model.ClarifyingQuestion
	Tasks              []model.GeneratedTask
	ProjectTitle       string
	ProjectDescription string
}

// ListInput pages through stored plans.
type ListInput struct {
	Kind   model.PlanKind
	Limit  int
	Offset int
}
