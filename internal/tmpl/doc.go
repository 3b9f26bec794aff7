// Package tmpl fills {name} placeholder tokens in configuration templates.
//
// Templates here are URL-ish strings from endpoint configuration, not HTML:
// substitution is type-driven. String values are percent-encoded in place;
// values with no text form divert to a caller-owned side-channel store.
//
// The filler dictionary's values form a sealed union, either a Literal or a
// Producer.
//
// Filling never fails: missing names, nil values, and absent stores all
// degrade to empty-string substitution, so a template renders even against
// incomplete configuration.
package tmpl
