package jsonvalue_test

import (
	"errors"
	"testing"

	"ai-tasker/pkg/jsonvalue"
)

func TestParse_Kinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  jsonvalue.Kind
	}{
		{name: "null", input: "null", want: jsonvalue.Null},
		{name: "true", input: "true", want: jsonvalue.Bool},
		{name: "number", input: " 42.5 ", want: jsonvalue.Number},
		{name: "string", input: `"hi"`, want: jsonvalue.String},
		{name: "array", input: `[1, "a"]`, want: jsonvalue.Array},
		{name: "object", input: `{"a": 1}`, want: jsonvalue.Object},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := jsonvalue.Parse(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.Kind() != tt.want {
				t.Errorf("Kind() = %s, want %s", v.Kind(), tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, input := range []string{"", "   ", "not json", `{"a":`, `[1,]`} {
		if _, err := jsonvalue.Parse(input); !errors.Is(err, jsonvalue.ErrInvalid) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalid", input, err)
		}
	}
}

func TestParse_ObjectKeepsDocumentOrder(t *testing.T) {
	v, err := jsonvalue.Parse(`{"z": 1, "a": {"nested": [true, null]}, "m": "x"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	obj, ok := v.AsObject()
	if !ok {
		t.Fatalf("expected object, got %s", v.Kind())
	}

	keys := make([]string, 0, len(obj))
	for _, m := range obj {
		keys = append(keys, m.Key)
	}
	if len(keys) != 3 || keys[0] != "z" || keys[1] != "a" || keys[2] != "m" {
		t.Errorf("unexpected key order: %v", keys)
	}

	nested, _ := obj.Get("a")
	inner, _ := nested.AsObject()
	arr, _ := inner.Get("nested")
	items, ok := arr.AsArray()
	if !ok || len(items) != 2 {
		t.Fatalf("expected nested array of 2, got %+v", arr)
	}
	if b, ok := items[0].AsBool(); !ok || !b {
		t.Errorf("expected true, got %+v", items[0])
	}
	if !items[1].IsNull() {
		t.Errorf("expected null, got %s", items[1].Kind())
	}
	if obj.Has("missing") {
		t.Errorf("Has(missing) should be false")
	}
}

func TestParse_NumberKeepsLiteral(t *testing.T) {
	v, err := jsonvalue.Parse(`1e2`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n, _ := v.AsNumber()
	text, _ := v.NumberText()
	if n != 100 || text != "1e2" {
		t.Errorf("got n=%v text=%q", n, text)
	}
}

func TestObjectItems(t *testing.T) {
	v, _ := jsonvalue.Parse(`[{"a":1}, 2, "x", {"b":2}]`)
	items, ok := v.ObjectItems()
	if !ok || len(items) != 2 {
		t.Fatalf("expected 2 objects, got %d (ok=%v)", len(items), ok)
	}

	empty, _ := jsonvalue.Parse(`[1, 2]`)
	if _, ok := empty.ObjectItems(); ok {
		t.Errorf("array without objects should report false")
	}
}
