package metadata

import "fmt"

// Column is one attribute of a Template: a key and its ordered values.
type Column struct {
	Key    string
	Values []Value
}

// Col builds a Column.
func Col(key string, values ...Value) Column {
	return Column{Key: key, Values: values}
}

// ErrLengthMismatch indicates template columns of differing lengths.
type ErrLengthMismatch struct {
	Key      string
	Expected int
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("column %q has %d values, expected %d", e.Key, e.Actual, e.Expected)
}

// Template is a set of parallel columns of equal length N. Row i of a template
// is the record made of the i-th value of every column, in column order.
//
// Templates describe a whole quantity at once, e.g. x=[1,2,3], and are the
// input of bulk insertion.
type Template struct {
	columns []Column
	n       int
}

// NewTemplate validates that all columns have the same length.
func NewTemplate(columns ...Column) (Template, error) {
	t := Template{columns: make([]Column, 0, len(columns))}
	for i, c := range columns {
		if i == 0 {
			t.n = len(c.Values)
		} else if len(c.Values) != t.n {
			return Template{}, &ErrLengthMismatch{Key: c.Key, Expected: t.n, Actual: len(c.Values)}
		}
		t.columns = append(t.columns, Column{Key: c.Key, Values: append([]Value(nil), c.Values...)})
	}
	return t, nil
}

// MustTemplate is like NewTemplate but panics on error.
// It is intended for tests and examples.
func MustTemplate(columns ...Column) Template {
	t, err := NewTemplate(columns...)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of rows.
func (t Template) Len() int { return t.n }

// Keys returns the column keys in column order.
func (t Template) Keys() []string {
	keys := make([]string, len(t.columns))
	for i, c := range t.columns {
		keys[i] = c.Key
	}
	return keys
}

// Row returns the i-th record. It panics if i is out of range.
func (t Template) Row(i int) Record {
	if i < 0 || i >= t.n {
		panic(fmt.Sprintf("metadata: template row %d out of range [0,%d)", i, t.n))
	}
	fields := make([]Field, len(t.columns))
	for j, c := range t.columns {
		fields[j] = F(c.Key, c.Values[i])
	}
	return NewRecord(fields...)
}

// Rows returns every row in order.
func (t Template) Rows() []Record {
	rows := make([]Record, t.n)
	for i := range rows {
		rows[i] = t.Row(i)
	}
	return rows
}

// Ints converts ints into Int values.
func Ints(vs ...int64) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = Int(v)
	}
	return out
}

// Floats converts floats into Float values.
func Floats(vs ...float64) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = Float(v)
	}
	return out
}

// Strings converts strings into String values.
func Strings(vs ...string) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = String(v)
	}
	return out
}
