package decode

import (
	"strings"

	"ai-tasker/internal/model"
	"ai-tasker/pkg/jsonvalue"
)

type questionDTO struct {
	Question *string  `json:"question"`
	Type     *string  `json:"type"`
	Options  []string `json:"options"`
}

func questionSpec() recordSpec[model.ClarifyingQuestion] {
	return recordSpec[model.ClarifyingQuestion]{
		kind:          KindQuestions,
		containerKeys: []string{"questions", "items", "prompts", "data"},
		plausible:     []field{fieldQuestionText},
		strict:        strictQuestions,
		build:         buildQuestion,
	}
}

func strictQuestions(raw []byte) ([]model.ClarifyingQuestion, bool) {
	var dtos []questionDTO
	if err := strictUnmarshal(raw, &dtos); err != nil {
		return nil, false
	}

	out := make([]model.ClarifyingQuestion, 0, len(dtos))
	for _, dto := range dtos {
		if dto.Question == nil || strings.TrimSpace(*dto.Question) == "" {
			return nil, false
		}
		kind := model.QuestionFreeText
		if dto.Type != nil {
			kind = CanonicalQuestionKind(*dto.Type)
		}
		out = append(out, newQuestion(*dto.Question, kind, dto.Options))
	}
	return out, true
}

func buildQuestion(obj jsonvalue.Members) (model.ClarifyingQuestion, bool) {
	v, ok := lookup(obj, fieldQuestionText)
	if !ok {
		return model.ClarifyingQuestion{}, false
	}
	text, ok := textOf(v)
	if !ok {
		return model.ClarifyingQuestion{}, false
	}

	kind := model.QuestionFreeText
	if v, ok := lookup(obj, fieldQuestionKind); ok {
		if s, ok := v.AsString(); ok {
			kind = CanonicalQuestionKind(s)
		}
	}

	var options []string
	if v, ok := lookup(obj, fieldOptions); ok {
		options = optionsOf(v)
	}
	return newQuestion(text, kind, options), true
}

func newQuestion(text string, kind model.QuestionKind, options []string) model.ClarifyingQuestion {
	q := model.ClarifyingQuestion{
		Question: strings.TrimSpace(text),
		Kind:     kind,
	}
	if kind == model.QuestionMultipleChoice {
		q.Options = NormalizeOptions(options)
	}
	return q
}
