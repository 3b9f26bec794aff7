package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberize(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  any
	}{
		{name: "numeric string converts", input: "12.5", want: 12.5},
		{name: "integer string converts", input: "42", want: 42.0},
		{name: "negative string converts", input: "-7", want: -7.0},
		{name: "exponent string converts", input: "1e3", want: 1000.0},
		{name: "non-numeric string survives", input: "abc", want: "abc"},
		{name: "partially numeric string survives", input: "12abc", want: "12abc"},
		{name: "empty string survives", input: "", want: ""},
		{name: "number passes through", input: 3.5, want: 3.5},
		{name: "bool passes through", input: true, want: true},
		{name: "nil passes through", input: nil, want: nil},
		{
			name:  "slice elements convert",
			input: []any{"1", "x", "2.5"},
			want:  []any{1.0, "x", 2.5},
		},
		{
			name: "nested structures convert throughout",
			input: map[string]any{
				"a": []any{"1", map[string]any{"b": "2"}},
				"c": "keep",
			},
			want: map[string]any{
				"a": []any{1.0, map[string]any{"b": 2.0}},
				"c": "keep",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Numberize(tt.input, nil))
		})
	}
}

func TestNumberizeKeepsNonFiniteStrings(t *testing.T) {
	// ParseFloat accepts these spellings in any case; they stay strings
	// rather than becoming non-finite floats.
	for _, s := range []string{"NaN", "nan", "inf", "+Inf", "-inf", "Infinity", "-infinity"} {
		t.Run(s, func(t *testing.T) {
			assert.Equal(t, s, Numberize(s, nil))
		})
	}

	got := Numberize(map[string]any{"note": "NaN", "n": "2"}, nil)
	assert.Equal(t, map[string]any{"note": "NaN", "n": 2.0}, got)
}

func TestNumberizePostRunsAtEveryLevel(t *testing.T) {
	input := map[string]any{
		"a": []any{"1", "x"},
		"b": "2.5",
	}

	calls := 0
	got := Numberize(input, func(v any) any {
		calls++
		return v
	})

	// Two leaves inside the slice, the slice itself, one top-level leaf,
	// and the map: five visits.
	assert.Equal(t, 5, calls)
	assert.Equal(t, map[string]any{"a": []any{1.0, "x"}, "b": 2.5}, got)
}

func TestNumberizePostSeesConvertedChildren(t *testing.T) {
	double := func(v any) any {
		if f, ok := v.(float64); ok {
			return 2 * f
		}
		return v
	}

	got := Numberize(map[string]any{"n": "12.5"}, double)

	// The leaf doubles exactly once, at its own level; the map level leaves
	// non-floats alone.
	assert.Equal(t, map[string]any{"n": 25.0}, got)
}

func TestNumberizeDoesNotMutateInput(t *testing.T) {
	input := map[string]any{"a": []any{"1"}}

	got := Numberize(input, nil)

	require.Equal(t, map[string]any{"a": []any{1.0}}, got)
	assert.Equal(t, map[string]any{"a": []any{"1"}}, input)
}
