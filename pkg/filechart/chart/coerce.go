package chart

import (
	"math"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/spf13/cast"
)

// Number converts a cell value to a finite number.
// Strings are trimmed first; empty strings, NaN and infinities do not convert.
func Number(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case nil:
		return 0, false
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}
		n, err := cast.ToFloat64E(s)
		if err != nil {
			return 0, false
		}
		f = n
	case bool:
		return 0, false
	default:
		n, err := cast.ToFloat64E(x)
		if err != nil {
			return 0, false
		}
		f = n
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// NumberOr0 converts a cell value to a number, falling back to 0.
func NumberOr0(v any) float64 {
	f, _ := Number(v)
	return f
}

// Text converts a cell value to its display string. Absent values are empty.
func Text(v any) string {
	if v == nil {
		return ""
	}
	return cast.ToString(v)
}

// IsNumericColumn reports whether every non-empty value converts to a number
// and at least one value is present.
func IsNumericColumn(vals []any) bool {
	seen := false
	for _, v := range vals {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			continue
		}
		if _, ok := Number(v); !ok {
			return false
		}
		seen = true
	}
	return seen
}

// DateValue parses a cell as a calendar date. Numbers are never dates.
func DateValue(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if _, isNum := Number(s); isNum {
		return time.Time{}, false
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
