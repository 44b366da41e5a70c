package decode

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"

	"ai-tasker/internal/model"
	"ai-tasker/pkg/jsonvalue"
)

// maxNestedDepth bounds how far the nested-array scan descends into objects.
const maxNestedDepth = 2

// pipeline returns the strategies in the order they are attempted.
// The first one that yields at least one record wins.
func pipeline[T any]() []strategy[T] {
	return []strategy[T]{
		{name: StrategyStrictArray, run: strictArray[T]},
		{name: StrategyContainer, run: namedContainer[T]},
		{name: StrategyGenericTree, run: genericTree[T]},
		{name: StrategyNestedArrays, run: nestedArrays[T]},
		{name: StrategySingleObject, run: singleObject[T]},
	}
}

func run[T any](spec *recordSpec[T], content string) ([]T, string, *input, error) {
	in := newInput(content)
	for _, s := range pipeline[T]() {
		if records := s.run(spec, in); len(records) > 0 {
			return records, s.name, in, nil
		}
	}
	return nil, "", in, &UnrecognizedShapeError{Kind: spec.kind, Raw: content}
}

// strictArray decodes a top-level array of canonical records.
func strictArray[T any](spec *recordSpec[T], in *input) []T {
	if !in.valid || in.root.Kind() != jsonvalue.Array {
		return nil
	}
	records, ok := spec.strict([]byte(in.payload))
	if !ok {
		return nil
	}
	return records
}

// namedContainer decodes the first container key holding an array of canonical records.
func namedContainer[T any](spec *recordSpec[T], in *input) []T {
	if !in.valid || in.root.Kind() != jsonvalue.Object {
		return nil
	}
	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(in.payload), &top); err != nil {
		return nil
	}
	for _, key := range spec.containerKeys {
		raw, ok := top[key]
		if !ok || !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("[")) {
			continue
		}
		if records, ok := spec.strict(raw); ok && len(records) > 0 {
			return records
		}
	}
	return nil
}

// genericTree maps every object of a top-level array, skipping those the builder rejects.
func genericTree[T any](spec *recordSpec[T], in *input) []T {
	if !in.valid {
		return nil
	}
	items, ok := in.root.ObjectItems()
	if !ok {
		return nil
	}
	return buildAll(spec, items)
}

// nestedArrays looks for arrays of objects inside a top-level object.
// Container keys are tried first in priority order, then the remaining
// keys in document order, then nested objects.
func nestedArrays[T any](spec *recordSpec[T], in *input) []T {
	if !in.valid {
		return nil
	}
	obj, ok := in.root.AsObject()
	if !ok {
		return nil
	}
	return scanObject(spec, obj, 1)
}

func scanObject[T any](spec *recordSpec[T], obj jsonvalue.Members, depth int) []T {
	for _, key := range spec.containerKeys {
		if v, ok := obj.Get(key); ok {
			if records := buildArray(spec, v); len(records) > 0 {
				return records
			}
		}
	}
	for _, m := range obj {
		if isContainerKey(spec, m.Key) {
			continue
		}
		if records := buildArray(spec, m.Value); len(records) > 0 {
			return records
		}
	}

	if depth >= maxNestedDepth {
		return nil
	}
	for _, m := range obj {
		if child, ok := m.Value.AsObject(); ok {
			if records := scanObject(spec, child, depth+1); len(records) > 0 {
				return records
			}
		}
	}
	return nil
}

// singleObject treats a lone top-level object as one record when it carries a plausible field.
func singleObject[T any](spec *recordSpec[T], in *input) []T {
	if !in.valid {
		return nil
	}
	obj, ok := in.root.AsObject()
	if !ok || !hasAny(obj, spec.plausible) {
		return nil
	}
	record, ok := spec.build(obj)
	if !ok {
		return nil
	}
	return []T{record}
}

func buildArray[T any](spec *recordSpec[T], v jsonvalue.Value) []T {
	items, ok := v.ObjectItems()
	if !ok {
		return nil
	}
	return buildAll(spec, items)
}

func buildAll[T any](spec *recordSpec[T], items []jsonvalue.Members) []T {
	var out []T
	for _, item := range items {
		if record, ok := spec.build(item); ok {
			out = append(out, record)
		}
	}
	return out
}

func isContainerKey[T any](spec *recordSpec[T], key string) bool {
	for _, k := range spec.containerKeys {
		if k == key {
			return true
		}
	}
	return false
}

func strictUnmarshal(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// Decoder turns model reply content into typed records.
// It holds no mutable state and is safe for concurrent use.
type Decoder struct {
	questions recordSpec[model.ClarifyingQuestion]
	tasks     recordSpec[model.GeneratedTask]
}

// New returns a Decoder with the built-in question and task configurations.
func New() *Decoder {
	return &Decoder{
		questions: questionSpec(),
		tasks:     taskSpec(),
	}
}

// Questions decodes clarifying questions from content.
func (d *Decoder) Questions(content string) ([]model.ClarifyingQuestion, error) {
	records, _, _, err := run(&d.questions, content)
	return records, err
}

// Tasks decodes generated tasks from content.
func (d *Decoder) Tasks(content string) ([]model.GeneratedTask, error) {
	records, _, _, err := run(&d.tasks, content)
	return records, err
}

// TaskPlan decodes tasks plus any project title and description found beside them.
func (d *Decoder) TaskPlan(content string) (model.TaskPlan, error) {
	records, _, in, err := run(&d.tasks, content)
	if err != nil {
		return model.TaskPlan{}, err
	}
	title, description := projectMeta(in)
	return model.TaskPlan{
		ProjectTitle:       title,
		ProjectDescription: description,
		Tasks:              records,
	}, nil
}

// Decode decodes content as kind and reports which strategy matched.
func (d *Decoder) Decode(content string, kind Kind) (Result, error) {
	res := Result{Kind: kind}
	switch kind {
	case KindQuestions:
		records, name, _, err := run(&d.questions, content)
		if err != nil {
			return res, err
		}
		res.Questions, res.Strategy = records, name
	case KindTasks:
		records, name, in, err := run(&d.tasks, content)
		if err != nil {
			return res, err
		}
		res.Tasks, res.Strategy = records, name
		res.ProjectTitle, res.ProjectDescription = projectMeta(in)
	default:
		return res, fmt.Errorf("decode: unsupported kind %s", kind)
	}
	return res, nil
}
