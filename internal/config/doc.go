// Package config loads and validates dataset endpoint configuration.
//
// Configuration is YAML, decoded strictly (unknown fields are rejected, so
// typos fail loudly), then checked in two passes: a structural pass against
// the embedded CUE schema, and a semantic pass that resolves resolution
// names to precisions and date bound strings to normalized dates. A Config
// that loads without error is fully resolved and ready for query building.
package config
