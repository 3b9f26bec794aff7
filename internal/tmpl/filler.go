package tmpl

// Filler is the sealed interface implemented by every substitution source.
// Only Literal (a fixed value) and Producer (a function invoked at fill
// time) implement it; resolution is a closed type switch.
type Filler interface {
	filler()
}

// Literal wraps a fixed value to substitute wherever its token appears.
type Literal struct {
	Value any
}

func (Literal) filler() {}

// Producer is a substitution source evaluated at fill time. It is called
// once per token occurrence, so a stateful producer sees every occurrence
// in template order.
type Producer func() any

func (Producer) filler() {}

// Lit is shorthand for Literal{Value: v}.
func Lit(v any) Literal {
	return Literal{Value: v}
}

// Fillers maps token identifiers (without braces) to their substitution
// sources.
type Fillers map[string]Filler

// DataStore receives values that cannot be inlined into template text.
// Entries accumulate across fills; a repeated identifier overwrites its
// earlier entry.
type DataStore map[string]any

// resolve produces the concrete value behind a filler. A nil Producer
// resolves to nil, the same as a producer that returns nil.
func resolve(f Filler) any {
	switch v := f.(type) {
	case Literal:
		return v.Value
	case Producer:
		if v == nil {
			return nil
		}
		return v()
	default:
		return nil
	}
}
