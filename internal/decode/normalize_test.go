package decode_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"ai-tasker/internal/decode"
	"ai-tasker/internal/model"
	"ai-tasker/pkg/jsonvalue"
)

func TestCanonicalQuestionKind(t *testing.T) {
	tests := map[string]model.QuestionKind{
		"freeText":        model.QuestionFreeText,
		"free_text":       model.QuestionFreeText,
		"TEXT":            model.QuestionFreeText,
		"multiple-choice": model.QuestionMultipleChoice,
		"Multiple Choice": model.QuestionMultipleChoice,
		"select":          model.QuestionMultipleChoice,
		"date":            model.QuestionDate,
		"DateTime":        model.QuestionDate,
		"number":          model.QuestionNumber,
		"integer":         model.QuestionNumber,
		"slider":          model.QuestionFreeText,
		"":                model.QuestionFreeText,
	}
	for in, want := range tests {
		if got := decode.CanonicalQuestionKind(in); got != want {
			t.Errorf("CanonicalQuestionKind(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCanonicalPriority(t *testing.T) {
	tests := map[string]model.Priority{
		"HIGH":    model.PriorityHigh,
		"urgent":  model.PriorityHigh,
		"Medium":  model.PriorityMedium,
		"normal":  model.PriorityMedium,
		" low ":   model.PriorityLow,
		"someday": model.PriorityMedium,
		"":        model.PriorityMedium,
	}
	for in, want := range tests {
		if got := decode.CanonicalPriority(in); got != want {
			t.Errorf("CanonicalPriority(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCanonicalFieldType(t *testing.T) {
	tests := map[string]model.FieldType{
		"text":     model.FieldText,
		"String":   model.FieldText,
		"numeric":  model.FieldNumber,
		"money":    model.FieldCurrency,
		"price":    model.FieldCurrency,
		"date":     model.FieldDate,
		"boolean":  model.FieldCheckbox,
		"toggle":   model.FieldCheckbox,
		"list":     model.FieldList,
		"rich-doc": model.FieldText,
	}
	for in, want := range tests {
		if got := decode.CanonicalFieldType(in); got != want {
			t.Errorf("CanonicalFieldType(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMinutesFromString(t *testing.T) {
	tests := []struct {
		in   string
		want int16
	}{
		{"45", 45},
		{"  20  ", 20},
		{"12.6", 13},
		{"1e3", 1000},
		{"45 minutes", 45},
		{"about 90 min", 90},
		{"-5 min", -5},
		{"40000", 32767},
		{"-40000", -32768},
		{"99999999999999999999999 minutes", 32767},
		{"soon", 30},
		{"", 30},
		{"1e400", 32767},
		{"-1e400", -32768},
		{"1e-400", 0},
		{"inf", 30},
		{"-Infinity", 30},
		{"NaN", 30},
	}
	for _, tt := range tests {
		if got := decode.MinutesFromString(tt.in); got != tt.want {
			t.Errorf("MinutesFromString(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestCoerceMinutes(t *testing.T) {
	tests := []struct {
		name string
		in   jsonvalue.Value
		want int16
	}{
		{"integer", jsonvalue.NumberValue(60), 60},
		{"rounds half away from zero", jsonvalue.NumberValue(2.5), 3},
		{"string overflow clamps", jsonvalue.StringValue("1e400"), 32767},
		{"string infinity is unparseable", jsonvalue.StringValue("inf"), 30},
		{"string", jsonvalue.StringValue("15 mins"), 15},
		{"bool", jsonvalue.BoolValue(true), 30},
		{"null", jsonvalue.NullValue(), 30},
		{"array", jsonvalue.ArrayValue(jsonvalue.NumberValue(5)), 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decode.CoerceMinutes(tt.in); got != tt.want {
				t.Errorf("CoerceMinutes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNormalizeOptions(t *testing.T) {
	if diff := cmp.Diff([]string{"a", "b c"}, decode.NormalizeOptions([]string{" a ", "", "b c", "   "})); diff != "" {
		t.Errorf("NormalizeOptions() mismatch (-want +got):\n%s", diff)
	}
	if got := decode.NormalizeOptions([]string{"", " "}); got != nil {
		t.Errorf("NormalizeOptions(blank) = %#v, want nil", got)
	}
	if got := decode.NormalizeOptions(nil); got != nil {
		t.Errorf("NormalizeOptions(nil) = %#v, want nil", got)
	}
}
