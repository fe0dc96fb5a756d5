package icontact

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Result is a schema-less view over a decoded JSON object. The API's
// responses have no fixed shape, so Result mirrors whatever was returned:
// nested objects are reachable through Object, lists of objects through
// Objects, and scalars through the typed accessors. Numbers are kept as
// json.Number so integer identifiers survive undamaged.
type Result struct {
	data map[string]any
}

// DecodeResult decodes a JSON object body into a Result.
func DecodeResult(data []byte) (*Result, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return &Result{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode response body: %w", err)
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("decode response body: expected a JSON object, got %T", raw)
	}
	return &Result{data: obj}, nil
}

// NewResult wraps an already-decoded object. The map is used as-is.
func NewResult(data map[string]any) *Result {
	return &Result{data: data}
}

// Get returns the raw value stored under key. Nested objects are wrapped
// as *Result and lists of objects as []*Result before being returned.
func (r *Result) Get(key string) (any, bool) {
	if r == nil || r.data == nil {
		return nil, false
	}
	v, ok := r.data[key]
	if !ok {
		return nil, false
	}
	return wrapValue(v), true
}

// Has reports whether key is present.
func (r *Result) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// Keys returns the top-level keys in sorted order.
func (r *Result) Keys() []string {
	if r == nil || r.data == nil {
		return nil
	}
	keys := make([]string, 0, len(r.data))
	for k := range r.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String returns the value under key as a string. Numbers are rendered
// in their original JSON form; anything else yields "".
func (r *Result) String(key string) string {
	v, ok := r.rawValue(key)
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

// Int returns the value under key as an int64. The API frequently returns
// identifiers as quoted strings, so numeric strings are accepted too.
func (r *Result) Int(key string) int64 {
	v, ok := r.rawValue(key)
	if !ok {
		return 0
	}
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n
		}
		if f, err := t.Float64(); err == nil {
			return int64(f)
		}
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n
		}
	}
	return 0
}

// Float returns the value under key as a float64.
func (r *Result) Float(key string) float64 {
	v, ok := r.rawValue(key)
	if !ok {
		return 0
	}
	switch t := v.(type) {
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return f
		}
	case string:
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return f
		}
	}
	return 0
}

// Bool returns the value under key as a bool. The API encodes flags as
// true/false, "1"/"0" or numeric 1/0 depending on the resource.
func (r *Result) Bool(key string) bool {
	v, ok := r.rawValue(key)
	if !ok {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "1" || t == "true"
	case json.Number:
		return t.String() != "0"
	}
	return false
}

// Object returns the nested object under key, or nil when the key is
// absent or not an object.
func (r *Result) Object(key string) *Result {
	v, ok := r.rawValue(key)
	if !ok {
		return nil
	}
	if obj, ok := v.(map[string]any); ok {
		return &Result{data: obj}
	}
	return nil
}

// Objects returns the list of objects under key. List elements that are
// not objects are skipped.
func (r *Result) Objects(key string) []*Result {
	v, ok := r.rawValue(key)
	if !ok {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	results := make([]*Result, 0, len(list))
	for _, item := range list {
		if obj, ok := item.(map[string]any); ok {
			results = append(results, &Result{data: obj})
		}
	}
	return results
}

// ToMap returns the underlying decoded object. It is the escape hatch for
// callers that want the raw mapping; the map is shared, not copied.
func (r *Result) ToMap() map[string]any {
	if r == nil {
		return nil
	}
	return r.data
}

func (r *Result) rawValue(key string) (any, bool) {
	if r == nil || r.data == nil {
		return nil, false
	}
	v, ok := r.data[key]
	return v, ok
}

func wrapValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return &Result{data: t}
	case []any:
		wrapped := make([]any, len(t))
		for i, item := range t {
			wrapped[i] = wrapValue(item)
		}
		return wrapped
	}
	return v
}
