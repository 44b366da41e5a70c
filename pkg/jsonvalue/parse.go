package jsonvalue

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrInvalid is returned when the input is not a single well-formed JSON document.
var ErrInvalid = errors.New("jsonvalue: invalid json")

// Parse decodes text into a Value.
func Parse(text string) (Value, error) {
	text = strings.TrimSpace(text)
	if text == "" || !gjson.Valid(text) {
		return Value{}, ErrInvalid
	}
	return fromResult(gjson.Parse(text)), nil
}

func fromResult(r gjson.Result) Value {
	switch r.Type {
	case gjson.False:
		return BoolValue(false)
	case gjson.True:
		return BoolValue(true)
	case gjson.Number:
		return Value{kind: Number, n: r.Num, s: r.Raw}
	case gjson.String:
		return StringValue(r.Str)
	case gjson.JSON:
		if r.IsArray() {
			items := make([]Value, 0)
			r.ForEach(func(_, item gjson.Result) bool {
				items = append(items, fromResult(item))
				return true
			})
			return ArrayValue(items...)
		}
		if r.IsObject() {
			members := make(Members, 0)
			r.ForEach(func(key, item gjson.Result) bool {
				members = append(members, Member{Key: key.Str, Value: fromResult(item)})
				return true
			})
			return ObjectValue(members...)
		}
	}
	return NullValue()
}
