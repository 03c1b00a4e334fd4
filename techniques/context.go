package techniques

import (
	"encoding/json"
	"fmt"
	"maps"
	"strconv"

	"github.com/teilomillet/promptgen/utils"
)

// Context carries per-call hints (intent, complexity, examples and so on)
// to a technique. Values may come from Go callers or from decoded JSON/YAML,
// so the accessors accept the loose types those decoders produce.
type Context map[string]any

// Has reports whether key is present.
func (c Context) Has(key string) bool {
	_, ok := c[key]
	return ok
}

// String returns the string value for key, or "".
func (c Context) String(key string) string {
	switch v := c[key].(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// StringOr returns the value for key, or def when it is missing or empty.
func (c Context) StringOr(key, def string) string {
	if s := c.String(key); s != "" {
		return s
	}
	return def
}

// Bool returns the boolean value for key. Non-empty strings parse with strconv.
func (c Context) Bool(key string) bool {
	return c.BoolOr(key, false)
}

// BoolOr returns the boolean value for key, or def when missing or unparsable.
func (c Context) BoolOr(key string, def bool) bool {
	switch v := c[key].(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// Float returns the numeric value for key.
func (c Context) Float(key string) (float64, bool) {
	switch v := c[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	}
	return 0, false
}

// Int returns the integer value for key, or def.
func (c Context) Int(key string, def int) int {
	switch v := c[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i)
		}
	case string:
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// Strings returns a string list for key. A single string becomes a
// one-element list.
func (c Context) Strings(key string) []string {
	switch v := c[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if item == nil {
				continue
			}
			if s, ok := item.(string); ok {
				out = append(out, s)
			} else {
				out = append(out, fmt.Sprint(item))
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	}
	return nil
}

// Map returns a nested map for key.
func (c Context) Map(key string) map[string]any {
	switch v := c[key].(type) {
	case map[string]any:
		return v
	case Context:
		return v
	case map[string]string:
		out := make(map[string]any, len(v))
		for k, s := range v {
			out[k] = s
		}
		return out
	}
	return nil
}

// Examples returns few-shot examples for key.
func (c Context) Examples(key string) []utils.Example {
	switch v := c[key].(type) {
	case []utils.Example:
		return v
	case []map[string]string:
		out := make([]utils.Example, 0, len(v))
		for _, m := range v {
			out = append(out, utils.Example{Input: m["input"], Output: m["output"], Explanation: m["explanation"]})
		}
		return out
	case []map[string]any:
		out := make([]utils.Example, 0, len(v))
		for _, m := range v {
			out = append(out, exampleFromMap(m))
		}
		return out
	case []any:
		out := make([]utils.Example, 0, len(v))
		for _, item := range v {
			switch e := item.(type) {
			case map[string]any:
				out = append(out, exampleFromMap(e))
			case utils.Example:
				out = append(out, e)
			}
		}
		return out
	}
	return nil
}

// ExampleCount returns how many items the value under key holds, whether
// or not Examples can read them.
func (c Context) ExampleCount(key string) int {
	switch v := c[key].(type) {
	case []utils.Example:
		return len(v)
	case []map[string]string:
		return len(v)
	case []map[string]any:
		return len(v)
	case []any:
		return len(v)
	}
	return 0
}

func exampleFromMap(m map[string]any) utils.Example {
	ctx := Context(m)
	return utils.Example{
		Input:       ctx.String("input"),
		Output:      ctx.String("output"),
		Explanation: ctx.String("explanation"),
	}
}

// Clone returns a shallow copy.
func (c Context) Clone() Context {
	out := make(Context, len(c))
	maps.Copy(out, c)
	return out
}
