package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tmcphillips/skope-interface/internal/temporal"
)

// DefaultPageSize applies when page_size is omitted from configuration.
const DefaultPageSize = 25

// Config is the root of the endpoint configuration file.
type Config struct {
	// Datasets lists the queryable dataset endpoints.
	Datasets []Dataset `yaml:"datasets" json:"datasets"`

	// PageSize bounds result paging for interactive commands.
	// Zero means DefaultPageSize.
	PageSize int `yaml:"page_size,omitempty" json:"page_size,omitempty"`
}

// Dataset describes one queryable dataset endpoint.
type Dataset struct {
	// Name uniquely identifies the dataset.
	Name string `yaml:"name" json:"name"`

	// Title is the human-readable dataset title.
	Title string `yaml:"title" json:"title"`

	// Resolution is the dataset's temporal resolution name
	// (year, month, date/day, hour, minute, second, millisecond).
	Resolution string `yaml:"resolution" json:"resolution"`

	// Template is the URL path template with {name} placeholder tokens.
	// The query builder fills it from dataset fields and request values.
	Template string `yaml:"template" json:"template"`

	// Variables lists the variables this dataset exposes.
	Variables []string `yaml:"variables" json:"variables"`

	// MinDate and MaxDate bound the dataset's temporal coverage,
	// formatted at the dataset resolution (e.g. "1" and "2000" for
	// a year-resolution dataset).
	MinDate string `yaml:"min_date" json:"min_date"`
	MaxDate string `yaml:"max_date" json:"max_date"`

	// Defaults supplies default filler values for query building.
	// A built query suppresses values still equal to their default.
	Defaults map[string]any `yaml:"defaults,omitempty" json:"defaults,omitempty"`

	// Resolved during Load; not part of the file format.
	precision temporal.Precision
	min       temporal.Date
	max       temporal.Date
}

// Precision returns the dataset resolution resolved to a precision level.
func (d *Dataset) Precision() temporal.Precision {
	return d.precision
}

// Min returns the resolved lower coverage bound.
func (d *Dataset) Min() temporal.Date {
	return d.min
}

// Max returns the resolved upper coverage bound.
func (d *Dataset) Max() temporal.Date {
	return d.max
}

// HasVariable reports whether the dataset exposes the named variable.
func (d *Dataset) HasVariable(name string) bool {
	for _, v := range d.Variables {
		if v == name {
			return true
		}
	}
	return false
}

// Load reads and parses a configuration YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), violates the schema, or fails semantic
// resolution.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates configuration YAML.
func Parse(data []byte) (*Config, error) {
	// Strict field validation catches typos like "dataset:" vs "datasets:".
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateSchema(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.resolve(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// DatasetByName returns the named dataset, or nil if absent.
func (c *Config) DatasetByName(name string) *Dataset {
	for i := range c.Datasets {
		if c.Datasets[i].Name == name {
			return &c.Datasets[i]
		}
	}
	return nil
}

// resolve performs the semantic pass: precision names become precisions,
// date bounds become normalized dates, and cross-field rules are checked.
func (c *Config) resolve() error {
	if c.PageSize == 0 {
		c.PageSize = DefaultPageSize
	}

	seen := make(map[string]bool, len(c.Datasets))
	for i := range c.Datasets {
		d := &c.Datasets[i]

		if seen[d.Name] {
			return fmt.Errorf("datasets[%d]: duplicate dataset name %q", i, d.Name)
		}
		seen[d.Name] = true

		p, err := temporal.ParsePrecision(d.Resolution)
		if err != nil {
			return fmt.Errorf("datasets[%d]: %w", i, err)
		}
		d.precision = p

		min, err := temporal.ParseDate(d.MinDate, p)
		if err != nil {
			return fmt.Errorf("datasets[%d]: min_date: %w", i, err)
		}
		max, err := temporal.ParseDate(d.MaxDate, p)
		if err != nil {
			return fmt.Errorf("datasets[%d]: max_date: %w", i, err)
		}
		if max.Time().Before(min.Time()) {
			return fmt.Errorf("datasets[%d]: min_date %q is after max_date %q", i, d.MinDate, d.MaxDate)
		}
		d.min, d.max = min, max
	}

	return nil
}
