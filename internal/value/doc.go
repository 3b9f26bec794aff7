// Package value holds small coercion and comparison helpers shared by the
// query and template layers: numeric coercion with fallback, integer
// clamping, deep map difference, and recursive string-to-number conversion.
//
// Every function is pure. Inputs are never mutated; traversals build fresh
// maps and slices.
package value
