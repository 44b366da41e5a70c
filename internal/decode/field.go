package decode

import (
	"fmt"
	"strings"

	"ai-tasker/internal/model"
	"ai-tasker/pkg/jsonvalue"
)

type fieldDTO struct {
	Name     *string `json:"name"`
	Label    *string `json:"label"`
	Type     *string `json:"type"`
	Required *bool   `json:"required"`
	Order    *int    `json:"order"`
}

func (dto fieldDTO) toField(index int) (model.InputFieldDefinition, bool) {
	if dto.Name == nil || dto.Label == nil {
		return model.InputFieldDefinition{}, false
	}
	name, label := strings.TrimSpace(*dto.Name), strings.TrimSpace(*dto.Label)
	if name == "" || label == "" {
		return model.InputFieldDefinition{}, false
	}

	f := model.InputFieldDefinition{
		Name:  name,
		Label: label,
		Type:  model.FieldText,
		Order: index,
	}
	if dto.Type != nil {
		f.Type = CanonicalFieldType(*dto.Type)
	}
	if dto.Required != nil {
		f.Required = *dto.Required
	}
	if dto.Order != nil && *dto.Order >= 0 {
		f.Order = *dto.Order
	}
	return f, true
}

// buildField maps one untyped field object. index is the field's position
// among the fields kept so far and is the default order.
func buildField(obj jsonvalue.Members, index int) (model.InputFieldDefinition, bool) {
	var label, name string
	if v, ok := lookup(obj, fieldLabel); ok {
		label, _ = textOf(v)
	}
	if v, ok := lookup(obj, fieldName); ok {
		name, _ = textOf(v)
	}

	switch {
	case label == "" && name == "":
		return model.InputFieldDefinition{}, false
	case label == "":
		label = name
	case name == "":
		if name = slug(label); name == "" {
			name = fmt.Sprintf("field_%d", index+1)
		}
	}

	f := model.InputFieldDefinition{
		Name:  name,
		Label: label,
		Type:  model.FieldText,
		Order: index,
	}
	if v, ok := lookup(obj, fieldType); ok {
		if s, ok := v.AsString(); ok {
			f.Type = CanonicalFieldType(s)
		}
	}
	if v, ok := lookup(obj, fieldRequired); ok {
		f.Required = boolOf(v)
	}
	if v, ok := lookup(obj, fieldOrder); ok {
		f.Order = orderOf(v, index)
	}
	return f, true
}

func buildFields(v jsonvalue.Value) []model.InputFieldDefinition {
	fields := []model.InputFieldDefinition{}
	items, ok := v.ObjectItems()
	if !ok {
		return fields
	}
	for _, item := range items {
		if f, ok := buildField(item, len(fields)); ok {
			fields = append(fields, f)
		}
	}
	return fields
}
