package filechart

import (
	"fmt"
	"maps"
	"slices"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cast"

	"github.com/ukaji3/filechart-go/pkg/filechart/models"
	"github.com/ukaji3/filechart-go/pkg/filechart/parser"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Normalize turns a parsed value into a dataset.
//
// An array yields one row per element. A bare object is handled per format:
// JSON uses the object's values as rows (unwrapping a single-key wrapper
// around an array), every other format wraps it as a one-row dataset.
func Normalize(value any, format models.Format, opts Options) (*models.Dataset, error) {
	items, err := recordItems(value, format)
	if err != nil {
		return nil, err
	}

	rows := make([]models.Row, 0, len(items))
	var columns []string
	for i, item := range items {
		row, keys, err := normalizeRecord(item)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		if i == 0 {
			columns = keys
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: first record has no fields", ErrEmptyDataset)
	}

	ds := &models.Dataset{
		Format:    format,
		Columns:   columns,
		Rows:      rows,
		TotalRows: len(rows),
	}
	if opts.ShouldTruncate(len(rows)) {
		ds.Rows = rows[:opts.PreviewRows]
		ds.Truncated = true
	}
	return ds, nil
}

// recordItems returns the record sequence of a parsed value.
func recordItems(value any, format models.Format) ([]any, error) {
	switch v := value.(type) {
	case []any:
		return v, nil
	case *parser.Object:
		if format != models.FormatJSON {
			return []any{v}, nil
		}
		vals := v.Values()
		if len(vals) == 1 {
			if inner, ok := vals[0].([]any); ok {
				return inner, nil
			}
		}
		return vals, nil
	case map[string]any:
		return recordItems(objectFromMap(v), format)
	case nil:
		return nil, ErrEmptyDataset
	}
	return nil, fmt.Errorf("%w: top-level %T is not a record collection", ErrEmptyDataset, value)
}

// normalizeRecord converts one record to a row and returns its keys in order.
// Keys holding null are listed but left out of the row.
func normalizeRecord(item any) (models.Row, []string, error) {
	var obj *parser.Object
	switch v := item.(type) {
	case *parser.Object:
		obj = v
	case map[string]any:
		obj = objectFromMap(v)
	default:
		return nil, nil, fmt.Errorf("expected an object, got %T", item)
	}

	row := make(models.Row, obj.Len())
	keys := make([]string, 0, obj.Len())
	for _, k := range obj.Keys() {
		keys = append(keys, k)
		raw, _ := obj.Get(k)
		if v, ok := scalar(raw); ok {
			row[k] = v
		}
	}
	return row, keys, nil
}

// scalar narrows a parsed value to string or float64.
// Nil is reported as absent; nested values become compact JSON.
func scalar(v any) (any, bool) {
	switch x := v.(type) {
	case nil:
		return nil, false
	case string:
		return x, true
	case float64:
		return x, true
	case bool:
		if x {
			return "true", true
		}
		return "false", true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32:
		return cast.ToFloat64(x), true
	}
	return stringify(v), true
}

// stringify writes v as compact JSON, keeping object key order.
func stringify(v any) string {
	stream := json.BorrowStream(nil)
	defer json.ReturnStream(stream)

	writeValue(stream, v)
	if stream.Error != nil {
		return cast.ToString(v)
	}
	return string(stream.Buffer())
}

func writeValue(stream *jsoniter.Stream, v any) {
	switch x := v.(type) {
	case *parser.Object:
		stream.WriteObjectStart()
		for i, k := range x.Keys() {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(k)
			val, _ := x.Get(k)
			writeValue(stream, val)
		}
		stream.WriteObjectEnd()
	case []any:
		stream.WriteArrayStart()
		for i, item := range x {
			if i > 0 {
				stream.WriteMore()
			}
			writeValue(stream, item)
		}
		stream.WriteArrayEnd()
	case map[string]any:
		writeValue(stream, objectFromMap(x))
	default:
		stream.WriteVal(x)
	}
}

// objectFromMap orders a plain map by key.
func objectFromMap(m map[string]any) *parser.Object {
	obj := parser.NewObject()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		obj.Set(k, m[k])
	}
	return obj
}
