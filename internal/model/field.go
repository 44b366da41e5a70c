package model

// FieldType is the input widget a task field needs.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldNumber   FieldType = "number"
	FieldCurrency FieldType = "currency"
	FieldDate     FieldType = "date"
	FieldCheckbox FieldType = "checkbox"
	FieldList     FieldType = "list"
)

// InputFieldDefinition describes one input the user fills in for a task.
// Names are not unique across a task's fields.
type InputFieldDefinition struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
	Order    int       `json:"order"`
}
