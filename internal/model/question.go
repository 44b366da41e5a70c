package model

// QuestionKind is the answer format a clarifying question expects.
type QuestionKind string

const (
	QuestionFreeText       QuestionKind = "freeText"
	QuestionMultipleChoice QuestionKind = "multipleChoice"
	QuestionDate           QuestionKind = "date"
	QuestionNumber         QuestionKind = "number"
)

// ClarifyingQuestion is asked before tasks are generated.
// Options is nil unless Kind is QuestionMultipleChoice.
type ClarifyingQuestion struct {
	Question string       `json:"question"`
	Kind     QuestionKind `json:"type"`
	Options  []string     `json:"options,omitempty"`
}
