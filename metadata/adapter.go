package metadata

import (
	"fmt"
	"slices"
)

// FromAny converts a Go value into a typed Value.
//
// This exists as an adapter layer for user input.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case float64:
		return Float(x), nil
	case float32:
		return Float(float64(x)), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Int(int64(x)), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		if x > uint64(1<<63-1) {
			// Avoid silently wrapping large values.
			return Value{}, fmt.Errorf("metadata uint64 out of range: %d", x)
		}
		return Int(int64(x)), nil
	case []Value:
		return Array(x), nil
	case []any:
		arr := make([]Value, len(x))
		for i := range x {
			vv, err := FromAny(x[i])
			if err != nil {
				return Value{}, err
			}
			arr[i] = vv
		}
		return Array(arr), nil
	case []string:
		return Array(Strings(x...)), nil
	case []int:
		arr := make([]Value, len(x))
		for i := range x {
			arr[i] = Int(int64(x[i]))
		}
		return Array(arr), nil
	case []float64:
		return Array(Floats(x...)), nil
	default:
		return Value{}, fmt.Errorf("unsupported metadata value type %T", v)
	}
}

// RecordFromMap converts a map[string]any into a Record.
// Go maps are unordered, so fields are laid out in sorted key order.
func RecordFromMap(m map[string]any) (Record, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	fields := make([]Field, 0, len(keys))
	for _, k := range keys {
		v, err := FromAny(m[k])
		if err != nil {
			return Record{}, fmt.Errorf("field %q: %w", k, err)
		}
		fields = append(fields, F(k, v))
	}
	return NewRecord(fields...), nil
}

// ParseRecord builds a record from alternating key/value arguments,
// preserving argument order: ParseRecord("P", 1, "alg", "alg1").
func ParseRecord(kv ...any) (Record, error) {
	if len(kv)%2 != 0 {
		return Record{}, fmt.Errorf("odd number of key/value arguments: %d", len(kv))
	}
	fields := make([]Field, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			return Record{}, fmt.Errorf("argument %d: key must be a string, got %T", i, kv[i])
		}
		v, err := FromAny(kv[i+1])
		if err != nil {
			return Record{}, fmt.Errorf("field %q: %w", k, err)
		}
		fields = append(fields, F(k, v))
	}
	return NewRecord(fields...), nil
}

// MustRecord is like ParseRecord but panics on error.
// It is intended for tests and examples.
func MustRecord(kv ...any) Record {
	r, err := ParseRecord(kv...)
	if err != nil {
		panic(err)
	}
	return r
}
