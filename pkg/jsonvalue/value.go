// Package jsonvalue models untyped JSON as a tagged union so callers can
// pattern-match on the shape of loosely structured documents.
package jsonvalue

import "strconv"

// Kind tags the variant held by a Value.
type Kind uint8

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is one JSON value. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string // string payload, or the raw literal of a number
	arr  []Value
	obj  Members
}

// Member is one key/value pair of an object, in document order.
type Member struct {
	Key   string
	Value Value
}

// Members is an object body. Lookups return the first matching key.
type Members []Member

// Get returns the value stored under key.
func (m Members) Get(key string) (Value, bool) {
	for _, member := range m {
		if member.Key == key {
			return member.Value, true
		}
	}
	return Value{}, false
}

// Has reports whether key is present with a non-null value.
func (m Members) Has(key string) bool {
	v, ok := m.Get(key)
	return ok && !v.IsNull()
}

func NullValue() Value           { return Value{} }
func BoolValue(b bool) Value     { return Value{kind: Bool, b: b} }
func StringValue(s string) Value { return Value{kind: String, s: s} }

func NumberValue(f float64) Value {
	return Value{kind: Number, n: f, s: strconv.FormatFloat(f, 'f', -1, 64)}
}

func ArrayValue(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: Array, arr: items}
}

func ObjectValue(members ...Member) Value {
	if members == nil {
		members = Members{}
	}
	return Value{kind: Object, obj: members}
}

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == Null }

func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == Bool
}

func (v Value) AsNumber() (float64, bool) {
	return v.n, v.kind == Number
}

// NumberText returns the literal text of a number as it appeared in the document.
func (v Value) NumberText() (string, bool) {
	return v.s, v.kind == Number
}

func (v Value) AsString() (string, bool) {
	return v.s, v.kind == String
}

func (v Value) AsArray() ([]Value, bool) {
	return v.arr, v.kind == Array
}

func (v Value) AsObject() (Members, bool) {
	return v.obj, v.kind == Object
}

// ObjectItems returns the objects of an array value, skipping non-object elements.
// The second result is false when v is not an array or holds no objects.
func (v Value) ObjectItems() ([]Members, bool) {
	if v.kind != Array {
		return nil, false
	}
	items := make([]Members, 0, len(v.arr))
	for _, item := range v.arr {
		if obj, ok := item.AsObject(); ok {
			items = append(items, obj)
		}
	}
	return items, len(items) > 0
}
