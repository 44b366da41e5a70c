package decode

import (
	"strings"

	"ai-tasker/internal/model"
	"ai-tasker/pkg/jsonvalue"
)

type taskDTO struct {
	Title            *string    `json:"title"`
	Description      *string    `json:"description"`
	EstimatedMinutes *float64   `json:"estimatedMinutes"`
	Priority         *string    `json:"priority"`
	Fields           []fieldDTO `json:"fields"`
}

func taskSpec() recordSpec[model.GeneratedTask] {
	return recordSpec[model.GeneratedTask]{
		kind:          KindTasks,
		containerKeys: []string{"tasks", "items", "data", "results", "taskList"},
		plausible:     []field{fieldTitle},
		strict:        strictTasks,
		build:         buildTask,
	}
}

func strictTasks(raw []byte) ([]model.GeneratedTask, bool) {
	var dtos []taskDTO
	if err := strictUnmarshal(raw, &dtos); err != nil {
		return nil, false
	}

	out := make([]model.GeneratedTask, 0, len(dtos))
	for _, dto := range dtos {
		if dto.Title == nil || strings.TrimSpace(*dto.Title) == "" {
			return nil, false
		}
		t := model.GeneratedTask{
			Title:            strings.TrimSpace(*dto.Title),
			Description:      optionalText(dto.Description),
			EstimatedMinutes: model.DefaultEstimatedMinutes,
			Priority:         model.DefaultPriority,
			Fields:           make([]model.InputFieldDefinition, 0, len(dto.Fields)),
		}
		if dto.EstimatedMinutes != nil {
			t.EstimatedMinutes = MinutesFromNumber(*dto.EstimatedMinutes)
		}
		if dto.Priority != nil {
			t.Priority = CanonicalPriority(*dto.Priority)
		}
		for i, fd := range dto.Fields {
			f, ok := fd.toField(i)
			if !ok {
				return nil, false
			}
			t.Fields = append(t.Fields, f)
		}
		out = append(out, t)
	}
	return out, true
}

func buildTask(obj jsonvalue.Members) (model.GeneratedTask, bool) {
	v, ok := lookup(obj, fieldTitle)
	if !ok {
		return model.GeneratedTask{}, false
	}
	title, ok := textOf(v)
	if !ok {
		return model.GeneratedTask{}, false
	}

	t := model.GeneratedTask{
		Title:            title,
		EstimatedMinutes: model.DefaultEstimatedMinutes,
		Priority:         model.DefaultPriority,
		Fields:           []model.InputFieldDefinition{},
	}
	if v, ok := lookup(obj, fieldDescription); ok {
		if s, ok := textOf(v); ok {
			t.Description = &s
		}
	}
	if v, ok := lookup(obj, fieldMinutes); ok {
		t.EstimatedMinutes = CoerceMinutes(v)
	}
	if v, ok := lookup(obj, fieldPriority); ok {
		if s, ok := v.AsString(); ok {
			t.Priority = CanonicalPriority(s)
		}
	}
	if v, ok := lookup(obj, fieldFields); ok {
		t.Fields = buildFields(v)
	}
	return t, true
}

// projectMeta reads the optional project title and description that sit
// next to a task list in some replies.
func projectMeta(in *input) (title, description string) {
	obj, ok := in.root.AsObject()
	if !in.valid || !ok {
		return "", ""
	}
	if v, ok := lookup(obj, fieldProjectTitle); ok {
		title, _ = textOf(v)
	}
	if v, ok := lookup(obj, fieldProjectDescription); ok {
		description, _ = textOf(v)
	}
	return title, description
}

func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
