package value

import (
	"math"
	"strconv"
)

// Numberize walks v depth-first, replacing every string that parses in full
// as a finite float with its numeric value. ParseFloat also accepts "NaN"
// and the infinity spellings; those stay strings. The post hook observes the
// rebuilt value at every level of the walk, leaves included, before it is
// returned upward; a nil post is the identity. The input is left untouched.
func Numberize(v any, post func(any) any) any {
	if post == nil {
		post = func(x any) any { return x }
	}
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		for i, elem := range t {
			out[i] = Numberize(elem, post)
		}
		return post(out)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, elem := range t {
			out[k] = Numberize(elem, post)
		}
		return post(out)
	case string:
		if f, err := strconv.ParseFloat(t, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return post(f)
		}
		return post(t)
	default:
		return post(v)
	}
}
