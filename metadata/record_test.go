package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_Basics(t *testing.T) {
	r := NewRecord(F("P", Int(1)), F("alg", String("alg1")))

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"P", "alg"}, r.Keys())

	v, ok := r.Get("alg")
	require.True(t, ok)
	assert.Equal(t, "alg1", v.StringValue())

	_, ok = r.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, `(P=1, alg="alg1")`, r.String())
	assert.Equal(t, "(x=1,)", MustRecord("x", 1).String())
}

func TestRecord_DuplicateKeyKeepsPosition(t *testing.T) {
	r := NewRecord(F("a", Int(1)), F("b", Int(2)), F("a", Int(3)))

	assert.Equal(t, []string{"a", "b"}, r.Keys())
	v, _ := r.Get("a")
	assert.Equal(t, Int(3), v)
}

func TestRecord_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b Record
		want bool
	}{
		{"same", MustRecord("x", 1), MustRecord("x", 1), true},
		{"order independent", MustRecord("x", 1, "y", 2), MustRecord("y", 2, "x", 1), true},
		{"different value", MustRecord("x", 1), MustRecord("x", 2), false},
		{"int vs float", MustRecord("x", 1), MustRecord("x", 1.0), false},
		{"superset", MustRecord("x", 1), MustRecord("x", 1, "y", 2), false},
		{"different key", MustRecord("x", 1), MustRecord("y", 1), false},
		{"both empty", NewRecord(), Record{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}
}

func TestRecord_FieldsIteratesInOrder(t *testing.T) {
	r := MustRecord("c", 3, "a", 1, "b", 2)

	var keys []string
	for k := range r.Fields() {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"c", "a", "b"}, keys)
}

func TestRecord_Map(t *testing.T) {
	r := MustRecord("x", 1, "name", "run", "ok", true, "w", 0.5)
	assert.Equal(t, map[string]any{
		"x":    int64(1),
		"name": "run",
		"ok":   true,
		"w":    0.5,
	}, r.Map())
}

func TestRecordFromMap(t *testing.T) {
	r, err := RecordFromMap(map[string]any{"b": 2, "a": "one"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, r.Keys())

	_, err = RecordFromMap(map[string]any{"bad": struct{}{}})
	assert.Error(t, err)
}

func TestParseRecord_Errors(t *testing.T) {
	_, err := ParseRecord("x")
	assert.Error(t, err)

	_, err = ParseRecord(1, 2)
	assert.Error(t, err)

	assert.Panics(t, func() { MustRecord("x", make(chan int)) })
}

func TestValue_EqualAndKey(t *testing.T) {
	assert.True(t, String("a").Equal(String("a")))
	assert.False(t, String("a").Equal(String("b")))
	assert.True(t, Array(Ints(1, 2)).Equal(Array(Ints(1, 2))))
	assert.False(t, Array(Ints(1, 2)).Equal(Array(Ints(2, 1))))
	assert.True(t, Null().Equal(Null()))
	assert.NotEqual(t, Int(1).Key(), Float(1).Key())
	assert.Equal(t, `[1, "a"]`, Array([]Value{Int(1), String("a")}).String())
}

func TestTemplate(t *testing.T) {
	tmpl, err := NewTemplate(
		Col("x", Ints(1, 2, 3)...),
		Col("label", Strings("a", "b", "c")...),
	)
	require.NoError(t, err)
	assert.Equal(t, 3, tmpl.Len())
	assert.Equal(t, []string{"x", "label"}, tmpl.Keys())
	assert.True(t, tmpl.Row(1).Equal(MustRecord("x", 2, "label", "b")))
	assert.Len(t, tmpl.Rows(), 3)
	assert.Panics(t, func() { tmpl.Row(3) })
}

func TestTemplate_LengthMismatch(t *testing.T) {
	_, err := NewTemplate(Col("x", Ints(1, 2)...), Col("y", Ints(1)...))

	var lm *ErrLengthMismatch
	require.ErrorAs(t, err, &lm)
	assert.Equal(t, "y", lm.Key)
	assert.Equal(t, 2, lm.Expected)
	assert.Equal(t, 1, lm.Actual)
}
