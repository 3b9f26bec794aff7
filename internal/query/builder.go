package query

import (
	"fmt"
	"math"

	"github.com/tmcphillips/skope-interface/internal/config"
	"github.com/tmcphillips/skope-interface/internal/temporal"
	"github.com/tmcphillips/skope-interface/internal/tmpl"
	"github.com/tmcphillips/skope-interface/internal/value"
)

// Query is the caller's input for one request: a variable, an optional
// date range, and an optional filter. Zero-valued fields fall back to the
// dataset's defaults and coverage bounds.
type Query struct {
	// Variable selects the dataset variable; empty means the configured
	// default.
	Variable string

	// Start and End bound the request range, formatted at the dataset
	// resolution. Empty means the dataset coverage bound. Bounds outside
	// coverage clamp rather than fail.
	Start string
	End   string

	// Filter carries extra filter values. Numeric strings are coerced,
	// empty entries pruned, and values equal to the dataset defaults
	// suppressed before the filter joins the payload.
	Filter map[string]any
}

// Request is a fully built data-service request.
type Request struct {
	// Token is the UUIDv7 request token.
	Token string

	// Seq is the builder-local sequence number.
	Seq int64

	Dataset  string
	Variable string

	// Path is the filled URL path.
	Path string

	// Start and End are the clamped, normalized range bounds.
	Start temporal.Date
	End   temporal.Date

	// Values holds the non-string filler values the template diverted out
	// of the path. They are already part of Payload.
	Values tmpl.DataStore

	// Filter is the normalized filter that joined the payload, nil when
	// nothing survived normalization.
	Filter map[string]any

	// Payload is the canonical JSON request body.
	Payload []byte
}

// RangeLabel renders the request's clamped range for display.
func (r *Request) RangeLabel() string {
	s, e := r.Start.Time(), r.End.Time()
	return temporal.FormatRange(r.Start.Precision(), &s, &e)
}

// Builder constructs requests against one configured dataset.
//
// Thread-safety: Build may be called concurrently; each call fills its own
// side-channel store.
type Builder struct {
	dataset *config.Dataset
	tokens  TokenGenerator
	clock   *Clock
}

// Option configures a Builder.
type Option func(*Builder)

// WithTokenGenerator substitutes the request token source.
func WithTokenGenerator(g TokenGenerator) Option {
	return func(b *Builder) { b.tokens = g }
}

// WithClock substitutes the request sequence clock.
func WithClock(c *Clock) Option {
	return func(b *Builder) { b.clock = c }
}

// NewBuilder creates a Builder for the dataset. By default requests carry
// UUIDv7 tokens and sequence numbers from a fresh clock.
func NewBuilder(d *config.Dataset, opts ...Option) *Builder {
	b := &Builder{dataset: d, tokens: UUIDv7Generator{}, clock: NewClock()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build resolves the query against the dataset and produces a Request.
//
// The variable must be one the dataset exposes; range bounds parse at the
// dataset resolution and clamp into its coverage; the template fills from
// the resolved values plus dataset defaults, with non-string values
// diverted to the request payload.
func (b *Builder) Build(q Query) (*Request, error) {
	d := b.dataset
	p := d.Precision()

	variable := q.Variable
	if variable == "" {
		if s, ok := d.Defaults["variable"].(string); ok {
			variable = s
		}
	}
	if !d.HasVariable(variable) {
		return nil, &UnknownVariableError{Dataset: d.Name, Variable: variable}
	}

	start, end := d.Min(), d.Max()
	if q.Start != "" {
		parsed, err := temporal.ParseDate(q.Start, p)
		if err != nil {
			return nil, fmt.Errorf("start date: %w", err)
		}
		start = parsed
	}
	if q.End != "" {
		parsed, err := temporal.ParseDate(q.End, p)
		if err != nil {
			return nil, fmt.Errorf("end date: %w", err)
		}
		end = parsed
	}

	// Out-of-coverage bounds clamp rather than fail.
	start = start.Clamp(d.Min().Time(), d.Max().Time())
	end = end.Clamp(d.Min().Time(), d.Max().Time())

	filter := normalizeFilter(q.Filter, d.Defaults)

	fillers := tmpl.Fillers{
		"dataset":  tmpl.Lit(d.Name),
		"variable": tmpl.Lit(variable),
		"start":    tmpl.Lit(start.Format()),
		"end":      tmpl.Lit(end.Format()),
		"filter": tmpl.Producer(func() any {
			if len(filter) == 0 {
				return nil
			}
			return filter
		}),
	}
	// Defaults feed any remaining template tokens.
	for name, val := range d.Defaults {
		if _, ok := fillers[name]; !ok {
			fillers[name] = tmpl.Lit(val)
		}
	}

	store := tmpl.DataStore{}
	path := tmpl.Fill(d.Template, fillers, store)

	body := map[string]any{
		"dataset":  d.Name,
		"variable": variable,
		"start":    start.Format(),
		"end":      end.Format(),
	}
	for name, val := range store {
		body[name] = val
	}
	// A filter the template never referenced still belongs in the body.
	if _, diverted := body["filter"]; !diverted && len(filter) > 0 {
		body["filter"] = filter
	}

	payload, err := MarshalCanonical(body)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	return &Request{
		Token:    b.tokens.Generate(),
		Seq:      b.clock.Next(),
		Dataset:  d.Name,
		Variable: variable,
		Path:     path,
		Start:    start,
		End:      end,
		Values:   store,
		Filter:   filter,
		Payload:  payload,
	}, nil
}

// normalizeFilter coerces numeric strings in the raw filter, prunes empty
// entries at every nesting level, and drops whatever still equals the
// dataset defaults. The result is exactly the filter content worth sending.
func normalizeFilter(raw, defaults map[string]any) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	norm := value.Numberize(raw, normalizeEntry).(map[string]any)
	base := value.Numberize(defaults, normalizeEntry).(map[string]any)
	out := value.Diff(norm, base)
	if len(out) == 0 {
		return nil
	}
	return out
}

// normalizeEntry runs at every level of the filter walk: map levels lose
// empty-string and nil entries, and integer leaves widen to float64 so
// filter values compare type-stably against YAML-sourced defaults.
func normalizeEntry(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, elem := range t {
			if elem == nil || elem == "" {
				delete(t, k)
			}
		}
		return t
	case string, bool, float64, []any:
		return v
	default:
		if f := value.NumberOr(v, math.NaN()); !math.IsNaN(f) {
			return f
		}
		return v
	}
}
