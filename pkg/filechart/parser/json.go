package parser

import (
	"errors"

	"github.com/tidwall/gjson"
)

// ParseJSON parses a JSON document, keeping object keys in document order.
func ParseJSON(data []byte) (any, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}
	return fromJSON(gjson.ParseBytes(data)), nil
}

func fromJSON(r gjson.Result) any {
	switch {
	case r.IsArray():
		var items []any
		r.ForEach(func(_, v gjson.Result) bool {
			items = append(items, fromJSON(v))
			return true
		})
		return items
	case r.IsObject():
		obj := NewObject()
		r.ForEach(func(k, v gjson.Result) bool {
			obj.Set(k.String(), fromJSON(v))
			return true
		})
		return obj
	}

	switch r.Type {
	case gjson.Number:
		return r.Num
	case gjson.String:
		return r.Str
	case gjson.True:
		return true
	case gjson.False:
		return false
	}
	return nil
}
