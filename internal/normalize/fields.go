package normalize

import (
	"fmt"
	"math"
	"strings"
)

func getString(src map[string]any, key string) string {
	if src == nil {
		return ""
	}
	value, ok := src[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}

func getInt(src map[string]any, key string) int {
	v, ok := number(src, key)
	if !ok {
		return 0
	}
	return int(v)
}

func getInt64(src map[string]any, key string) int64 {
	v, ok := number(src, key)
	if !ok {
		return 0
	}
	return int64(v)
}

func getFloat(src map[string]any, key string) float64 {
	v, _ := number(src, key)
	return v
}

// optionalInt returns nil when the field is missing, null or not a finite number.
func optionalInt(src map[string]any, key string) *int {
	v, ok := number(src, key)
	if !ok {
		return nil
	}
	out := int(v)
	return &out
}

func optionalInt64(src map[string]any, key string) *int64 {
	v, ok := number(src, key)
	if !ok {
		return nil
	}
	out := int64(v)
	return &out
}

func optionalFloat(src map[string]any, key string) *float64 {
	v, ok := number(src, key)
	if !ok {
		return nil
	}
	return &v
}

func number(src map[string]any, key string) (float64, bool) {
	if src == nil {
		return 0, false
	}
	var out float64
	switch typed := src[key].(type) {
	case float64:
		out = typed
	case float32:
		out = float64(typed)
	case int:
		out = float64(typed)
	case int64:
		out = float64(typed)
	case int32:
		out = float64(typed)
	default:
		return 0, false
	}
	if math.IsNaN(out) || math.IsInf(out, 0) {
		return 0, false
	}
	return out, true
}

func getMap(src map[string]any, key string) map[string]any {
	if src == nil {
		return nil
	}
	obj, _ := src[key].(map[string]any)
	return obj
}

// getObjects returns the objects stored under key. Missing or null yields nil.
func getObjects(src map[string]any, key string) ([]map[string]any, error) {
	if src == nil || src[key] == nil {
		return nil, nil
	}
	items, ok := src[key].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a list", ErrMalformedData, key)
	}
	out := make([]map[string]any, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] is not an object", ErrMalformedData, key, i)
		}
		out = append(out, obj)
	}
	return out, nil
}
