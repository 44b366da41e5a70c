package decode

import (
	"fmt"
	"strings"

	"ai-tasker/internal/model"
	"ai-tasker/pkg/jsonvalue"
)

// Kind selects which record type the pipeline extracts.
type Kind int

const (
	KindQuestions Kind = iota + 1
	KindTasks
)

func (k Kind) String() string {
	switch k {
	case KindQuestions:
		return "questions"
	case KindTasks:
		return "tasks"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps "questions"/"tasks" (any case) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "questions", "question":
		return KindQuestions, nil
	case "tasks", "task":
		return KindTasks, nil
	default:
		return 0, fmt.Errorf("decode: unknown kind %q", s)
	}
}

// Strategy names, in the order the pipeline attempts them.
const (
	StrategyStrictArray  = "strict_array"
	StrategyContainer    = "named_container"
	StrategyGenericTree  = "generic_tree"
	StrategyNestedArrays = "nested_arrays"
	StrategySingleObject = "single_object"
)

// Result is the outcome of Decode.
type Result struct {
	Kind      Kind
	Strategy  string
	Questions []model.ClarifyingQuestion
	Tasks     []model.GeneratedTask

	// Set for KindTasks when the reply carries project metadata.
	ProjectTitle       string
	ProjectDescription string
}

// recordSpec is the per-kind configuration the pipeline is parameterized by.
type recordSpec[T any] struct {
	kind Kind

	// containerKeys are tried in order by the named-container strategy.
	containerKeys []string

	// plausible fields mark a lone top-level object as a record.
	plausible []field

	// strict decodes an array of canonical records; ok is false if any entry is incomplete.
	strict func(raw []byte) (records []T, ok bool)

	// build maps one untyped object to a record; ok is false to skip it.
	build func(obj jsonvalue.Members) (record T, ok bool)
}

// input is the content under decode, parsed once and shared by every strategy.
type input struct {
	raw     string
	payload string
	root    jsonvalue.Value
	valid   bool
}

func newInput(content string) *input {
	in := &input{raw: content, payload: jsonvalue.ExtractPayload(content)}
	if root, err := jsonvalue.Parse(in.payload); err == nil {
		in.root = root
		in.valid = true
	}
	return in
}

type strategy[T any] struct {
	name string
	run  func(spec *recordSpec[T], in *input) []T
}
