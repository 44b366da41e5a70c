package decode

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"ai-tasker/internal/model"
	"ai-tasker/pkg/jsonvalue"
)

var questionKinds = map[string]model.QuestionKind{
	"freetext":       model.QuestionFreeText,
	"text":           model.QuestionFreeText,
	"string":         model.QuestionFreeText,
	"open":           model.QuestionFreeText,
	"openended":      model.QuestionFreeText,
	"multiplechoice": model.QuestionMultipleChoice,
	"choice":         model.QuestionMultipleChoice,
	"select":         model.QuestionMultipleChoice,
	"singlechoice":   model.QuestionMultipleChoice,
	"singleselect":   model.QuestionMultipleChoice,
	"dropdown":       model.QuestionMultipleChoice,
	"date":           model.QuestionDate,
	"datetime":       model.QuestionDate,
	"number":         model.QuestionNumber,
	"numeric":        model.QuestionNumber,
	"integer":        model.QuestionNumber,
}

var priorities = map[string]model.Priority{
	"high":     model.PriorityHigh,
	"urgent":   model.PriorityHigh,
	"critical": model.PriorityHigh,
	"medium":   model.PriorityMedium,
	"normal":   model.PriorityMedium,
	"moderate": model.PriorityMedium,
	"low":      model.PriorityLow,
	"minor":    model.PriorityLow,
}

var fieldTypes = map[string]model.FieldType{
	"text":     model.FieldText,
	"string":   model.FieldText,
	"textarea": model.FieldText,
	"number":   model.FieldNumber,
	"numeric":  model.FieldNumber,
	"integer":  model.FieldNumber,
	"currency": model.FieldCurrency,
	"money":    model.FieldCurrency,
	"price":    model.FieldCurrency,
	"date":     model.FieldDate,
	"datetime": model.FieldDate,
	"checkbox": model.FieldCheckbox,
	"toggle":   model.FieldCheckbox,
	"bool":     model.FieldCheckbox,
	"boolean":  model.FieldCheckbox,
	"list":     model.FieldList,
	"array":    model.FieldList,
}

// CanonicalQuestionKind maps a free-form kind label to a QuestionKind.
// Unknown labels become QuestionFreeText.
func CanonicalQuestionKind(raw string) model.QuestionKind {
	if k, ok := questionKinds[looseKey(raw)]; ok {
		return k
	}
	return model.QuestionFreeText
}

// CanonicalPriority maps a free-form priority label to a Priority.
// Unknown labels become model.DefaultPriority.
func CanonicalPriority(raw string) model.Priority {
	if p, ok := priorities[looseKey(raw)]; ok {
		return p
	}
	return model.DefaultPriority
}

// CanonicalFieldType maps a free-form input type to a FieldType.
// Unknown types become FieldText.
func CanonicalFieldType(raw string) model.FieldType {
	if t, ok := fieldTypes[looseKey(raw)]; ok {
		return t
	}
	return model.FieldText
}

// CoerceMinutes converts any JSON value to a duration in minutes.
// Numbers are rounded and clamped to the int16 range. Strings are parsed as
// a number first and otherwise reduced to their digits, so "45 minutes" is 45.
// Anything else is model.DefaultEstimatedMinutes.
func CoerceMinutes(v jsonvalue.Value) int16 {
	switch v.Kind() {
	case jsonvalue.Number:
		n, _ := v.AsNumber()
		return MinutesFromNumber(n)
	case jsonvalue.String:
		s, _ := v.AsString()
		return MinutesFromString(s)
	default:
		return model.DefaultEstimatedMinutes
	}
}

// MinutesFromNumber rounds n to the nearest whole minute and clamps it to int16.
func MinutesFromNumber(n float64) int16 {
	switch {
	case math.IsNaN(n):
		return model.DefaultEstimatedMinutes
	case n >= math.MaxInt16:
		return math.MaxInt16
	case n <= math.MinInt16:
		return math.MinInt16
	}
	return int16(math.Round(n))
}

// MinutesFromString parses a duration string such as "45", "12.5" or "45 minutes".
func MinutesFromString(s string) int16 {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseFloat(s, 64)
	switch {
	case err == nil:
		// "inf" and "nan" parse but are not durations.
		if math.IsInf(n, 0) || math.IsNaN(n) {
			return model.DefaultEstimatedMinutes
		}
		return MinutesFromNumber(n)
	case errors.Is(err, strconv.ErrRange):
		// Overflow yields ±Inf and underflow ±0; both keep their sign.
		return MinutesFromNumber(n)
	}

	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return model.DefaultEstimatedMinutes
	}

	text := digits.String()
	if strings.HasPrefix(s, "-") {
		text = "-" + text
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		// Only overflow can fail here; keep the sign.
		if text[0] == '-' {
			return math.MinInt16
		}
		return math.MaxInt16
	}
	return MinutesFromNumber(float64(i))
}

// NormalizeOptions trims each option and drops blanks.
// An empty result is nil.
func NormalizeOptions(options []string) []string {
	var out []string
	for _, o := range options {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// textOf returns v as trimmed text. Numbers keep their literal form.
func textOf(v jsonvalue.Value) (string, bool) {
	var s string
	switch v.Kind() {
	case jsonvalue.String:
		s, _ = v.AsString()
	case jsonvalue.Number:
		s, _ = v.NumberText()
	default:
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

func optionsOf(v jsonvalue.Value) []string {
	items, ok := v.AsArray()
	if !ok {
		return nil
	}
	raw := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := textOf(item); ok {
			raw = append(raw, s)
		}
	}
	return NormalizeOptions(raw)
}

func boolOf(v jsonvalue.Value) bool {
	switch v.Kind() {
	case jsonvalue.Bool:
		b, _ := v.AsBool()
		return b
	case jsonvalue.Number:
		n, _ := v.AsNumber()
		return n != 0
	case jsonvalue.String:
		s, _ := v.AsString()
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true", "yes", "1":
			return true
		}
	}
	return false
}

// orderOf returns a non-negative integer order, or fallback.
func orderOf(v jsonvalue.Value, fallback int) int {
	var n float64
	switch v.Kind() {
	case jsonvalue.Number:
		n, _ = v.AsNumber()
	case jsonvalue.String:
		s, _ := v.AsString()
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fallback
		}
		n = parsed
	default:
		return fallback
	}
	if math.IsNaN(n) || n < 0 || n > math.MaxInt32 {
		return fallback
	}
	return int(math.Round(n))
}

// slug turns a label into a snake_case field name.
func slug(label string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(label) {
		isWord := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isWord {
			pendingSep = b.Len() > 0
			continue
		}
		if pendingSep {
			b.WriteByte('_')
			pendingSep = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
