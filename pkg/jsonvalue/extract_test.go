package jsonvalue_test

import (
	"testing"

	"ai-tasker/pkg/jsonvalue"
)

func TestExtractPayload(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "clean array", input: ` [{"a":1}] `, want: `[{"a":1}]`},
		{name: "json fence", input: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", input: "```\n[1,2]\n```", want: `[1,2]`},
		{name: "prefix prose", input: `Here you go: {"a":1}`, want: `{"a":1}`},
		{name: "surrounding prose", input: `Sure! [{"a":1}] Hope it helps.`, want: `[{"a":1}]`},
		{name: "no json", input: "not json", want: "not json"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := jsonvalue.ExtractPayload(tt.input); got != tt.want {
				t.Errorf("ExtractPayload(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
