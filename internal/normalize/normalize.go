// Package normalize maps raw provider payloads into typed domain records.
// Functions here never perform I/O.
package normalize

import (
	"errors"
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
)

var ErrMalformedData = errors.New("malformed data")

var validate = validator.New()

// Object decodes a JSON object payload.
func Object(raw []byte) (map[string]any, error) {
	var out map[string]any
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: decode object: %v", ErrMalformedData, err)
	}
	if out == nil {
		return nil, fmt.Errorf("%w: payload is not a JSON object", ErrMalformedData)
	}
	return out, nil
}

// List decodes a JSON array payload whose entries are objects.
func List(raw []byte) ([]map[string]any, error) {
	var items []any
	if err := sonic.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: decode list: %v", ErrMalformedData, err)
	}
	out := make([]map[string]any, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: list entry %d is not an object", ErrMalformedData, i)
		}
		out = append(out, obj)
	}
	return out, nil
}

func check(kind string, key any, record any) error {
	if err := validate.Struct(record); err != nil {
		return fmt.Errorf("%w: %s %v: %v", ErrMalformedData, kind, key, err)
	}
	return nil
}
