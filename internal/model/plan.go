package model

import "time"

// PlanKind says which stage of planning a stored plan records.
type PlanKind string

const (
	PlanKindQuestions PlanKind = "questions"
	PlanKindTasks     PlanKind = "tasks"
)

// Plan is one stored planning result.
type Plan struct {
	ID                 string               `json:"id"`
	UserID             string               `json:"userId,omitempty"`
	Kind               PlanKind             `json:"kind"`
	Goal               string               `json:"goal"`
	ProjectTitle       string               `json:"projectTitle,omitempty"`
	ProjectDescription string               `json:"projectDescription,omitempty"`
	Questions          []ClarifyingQuestion `json:"questions,omitempty"`
	Tasks              []GeneratedTask      `json:"tasks,omitempty"`
	Provider           string               `json:"provider,omitempty"`
	CreatedAt          time.Time            `json:"createdAt"`
}

// TotalMinutes sums the estimated minutes of the plan's tasks.
func (p Plan) TotalMinutes() int {
	total := 0
	for _, t := range p.Tasks {
		total += int(t.EstimatedMinutes)
	}
	return total
}
