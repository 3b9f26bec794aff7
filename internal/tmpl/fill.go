package tmpl

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// tokenPattern matches a braced identifier: a letter, underscore, or hyphen
// followed by any run of letters, digits, underscores, or hyphens.
var tokenPattern = regexp.MustCompile(`\{[A-Za-z_-][A-Za-z0-9_-]*\}`)

// Fill substitutes every {name} token in template and returns the result.
// Tokens are scanned off the original template and replaced left to right,
// one occurrence at a time, so text introduced by one substitution is never
// rescanned for tokens.
//
// Each occurrence resolves independently: a Producer filler runs once per
// occurrence of its token. A name with no filler, or a filler resolving to
// nil, substitutes the empty string. String values are percent-encoded so
// they stay inert inside a URL path segment. Any other value is diverted to
// store under its identifier and the token becomes empty; with a nil store
// the value is inlined via fmt.Sprint instead.
func Fill(template string, fillers Fillers, store DataStore) string {
	if template == "" {
		return template
	}
	out := template
	for _, tok := range tokenPattern.FindAllString(template, -1) {
		name := tok[1 : len(tok)-1]
		f, ok := fillers[name]
		if !ok {
			out = strings.Replace(out, tok, "", 1)
			continue
		}
		out = strings.Replace(out, tok, encode(name, resolve(f), store), 1)
	}
	return out
}

// encode renders a resolved value as template text, diverting non-string
// values to the store when one is present. Nil never reaches the store.
func encode(name string, v any, store DataStore) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return url.PathEscape(s)
	}
	if store != nil {
		store[name] = v
		return ""
	}
	return fmt.Sprint(v)
}
