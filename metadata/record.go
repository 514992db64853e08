package metadata

import (
	"iter"
	"strings"
)

// Field is a single named attribute of a Record.
type Field struct {
	Key   string
	Value Value
}

// F builds a Field.
func F(key string, v Value) Field { return Field{Key: key, Value: v} }

// Record is an ordered attribute record: the payload of a graph vertex.
//
// Field order is the order in which fields were given and is what Fields
// iterates in. Equality ignores order: two records are equal iff they hold the
// same key set with Equal values.
//
// Records are immutable; the With/Without helpers return modified copies.
type Record struct {
	fields []Field
}

// NewRecord builds a record from fields. If a key is repeated, the later value
// replaces the earlier one but keeps the earlier position.
func NewRecord(fields ...Field) Record {
	out := make([]Field, 0, len(fields))
	for _, f := range fields {
		if i := indexOf(out, f.Key); i >= 0 {
			out[i].Value = f.Value.clone()
			continue
		}
		out = append(out, Field{Key: f.Key, Value: f.Value.clone()})
	}
	return Record{fields: out}
}

func indexOf(fields []Field, key string) int {
	for i := range fields {
		if fields[i].Key == key {
			return i
		}
	}
	return -1
}

// Len returns the number of fields.
func (r Record) Len() int { return len(r.fields) }

// IsEmpty reports whether the record holds no fields.
func (r Record) IsEmpty() bool { return len(r.fields) == 0 }

// Get returns the value stored under key.
func (r Record) Get(key string) (Value, bool) {
	if i := indexOf(r.fields, key); i >= 0 {
		return r.fields[i].Value, true
	}
	return Value{}, false
}

// Has reports whether the record contains key.
func (r Record) Has(key string) bool { return indexOf(r.fields, key) >= 0 }

// Fields iterates the record in field order.
func (r Record) Fields() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, f := range r.fields {
			if !yield(f.Key, f.Value) {
				return
			}
		}
	}
}

// Keys returns the field names in field order.
func (r Record) Keys() []string {
	keys := make([]string, len(r.fields))
	for i, f := range r.fields {
		keys[i] = f.Key
	}
	return keys
}

// Equal reports structural (key, value) equality, independent of field order.
func (r Record) Equal(other Record) bool {
	if len(r.fields) != len(other.fields) {
		return false
	}
	for _, f := range r.fields {
		v, ok := other.Get(f.Key)
		if !ok || !f.Value.Equal(v) {
			return false
		}
	}
	return true
}

// Clone creates a deep copy of the record.
func (r Record) Clone() Record {
	if r.fields == nil {
		return Record{}
	}
	fields := make([]Field, len(r.fields))
	for i, f := range r.fields {
		fields[i] = Field{Key: f.Key, Value: f.Value.clone()}
	}
	return Record{fields: fields}
}

// Map returns the record as a plain map, suitable for JSON export.
func (r Record) Map() map[string]any {
	m := make(map[string]any, len(r.fields))
	for _, f := range r.fields {
		m[f.Key] = f.Value.Interface()
	}
	return m
}

// String renders the record as (x=1, alg="alg1").
func (r Record) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, f := range r.fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.Key)
		sb.WriteByte('=')
		sb.WriteString(f.Value.String())
	}
	if len(r.fields) == 1 {
		sb.WriteByte(',')
	}
	sb.WriteByte(')')
	return sb.String()
}
