package model

// Priority is the canonical task priority.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

const (
	// DefaultPriority is used when the model gives no recognizable priority.
	DefaultPriority = PriorityMedium

	// DefaultEstimatedMinutes is used when the model gives no usable duration.
	DefaultEstimatedMinutes int16 = 30
)

// GeneratedTask is an actionable task produced for a goal.
type GeneratedTask struct {
	Title            string                 `json:"title"`
	Description      *string                `json:"description,omitempty"`
	EstimatedMinutes int16                  `json:"estimatedMinutes"`
	Priority         Priority               `json:"priority"`
	Fields           []InputFieldDefinition `json:"fields"`
}

// TaskPlan is a decoded batch of tasks plus the optional project metadata
// some replies carry next to the task list.
type TaskPlan struct {
	ProjectTitle       string          `json:"projectTitle,omitempty"`
	ProjectDescription string          `json:"projectDescription,omitempty"`
	Tasks              []GeneratedTask `json:"tasks"`
}
