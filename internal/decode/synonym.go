package decode

import (
	"strings"

	"ai-tasker/pkg/jsonvalue"
)

// field is a logical record field resolved from one of several source keys.
type field int

const (
	fieldQuestionText field = iota
	fieldQuestionKind
	fieldOptions

	fieldTitle
	fieldDescription
	fieldMinutes
	fieldPriority
	fieldFields

	fieldLabel
	fieldName
	fieldType
	fieldRequired
	fieldOrder

	fieldProjectTitle
	fieldProjectDescription
)

// synonyms lists source keys per logical field, highest priority first.
var synonyms = map[field][]string{
	fieldQuestionText: {"question", "text", "prompt"},
	fieldQuestionKind: {"type", "questionType", "kind"},
	fieldOptions:      {"options", "choices"},

	fieldTitle:       {"title", "name"},
	fieldDescription: {"description", "details", "summary"},
	fieldMinutes:     {"estimatedTime", "duration", "time", "minutes", "estimatedMinutes"},
	fieldPriority:    {"priority", "importance"},
	fieldFields:      {"fields", "inputFields"},

	fieldLabel:    {"label", "fieldName", "title"},
	fieldName:     {"name", "key", "id"},
	fieldType:     {"type", "fieldType", "inputType"},
	fieldRequired: {"required", "isRequired"},
	fieldOrder:    {"order", "fieldOrder"},

	fieldProjectTitle:       {"projectTitle", "projectName", "project"},
	fieldProjectDescription: {"projectDescription", "projectSummary"},
}

// lookup returns the value of the first synonym present with a usable value.
// Null and blank strings count as absent, so {"title":"","name":"x"} resolves to "x".
// An exact key match anywhere in the list beats a loose one, so "estimatedTime"
// wins over "Duration" but "estimated_time" still resolves when no exact key exists.
func lookup(obj jsonvalue.Members, f field) (jsonvalue.Value, bool) {
	keys := synonyms[f]
	for _, key := range keys {
		if v, ok := obj.Get(key); ok && usable(v) {
			return v, true
		}
	}

	for _, key := range keys {
		want := looseKey(key)
		for _, m := range obj {
			if looseKey(m.Key) == want && usable(m.Value) {
				return m.Value, true
			}
		}
	}
	return jsonvalue.Value{}, false
}

func usable(v jsonvalue.Value) bool {
	if v.IsNull() {
		return false
	}
	if s, ok := v.AsString(); ok {
		return strings.TrimSpace(s) != ""
	}
	return true
}

// hasAny reports whether any of the fields resolve in obj.
func hasAny(obj jsonvalue.Members, fields []field) bool {
	for _, f := range fields {
		if _, ok := lookup(obj, f); ok {
			return true
		}
	}
	return false
}

// looseKey folds case and drops '_', '-' and spaces so snake, kebab and
// camel spellings of a key compare equal.
func looseKey(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch r {
		case '_', '-', ' ':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
