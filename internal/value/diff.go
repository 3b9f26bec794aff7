package value

import "reflect"

// Diff returns the keys of object whose values differ from base, compared by
// deep equality. When both sides of a key hold nested maps the difference
// recurses and only the differing sub-keys survive; any other differing key
// carries the full value from object. Keys equal on both sides, and keys
// present only in base, do not appear at all.
func Diff(object, base map[string]any) map[string]any {
	out := map[string]any{}
	for key, val := range object {
		bval, ok := base[key]
		if ok && reflect.DeepEqual(val, bval) {
			continue
		}
		sub, objMap := val.(map[string]any)
		bsub, baseMap := bval.(map[string]any)
		if objMap && baseMap {
			out[key] = Diff(sub, bsub)
			continue
		}
		out[key] = val
	}
	return out
}
