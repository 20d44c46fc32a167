package realm

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config describes a batch of partial-evaluation runs, the shape
// `cmd/prepack run --config` loads: an input file list, an output file
// path, a deadline duration, and a unique-suffix seed, generalized from a
// single run to a batch of them. Grounded on
// common/env/config.go's Config: a plain, snake_case-tagged struct decoded
// with gopkg.in/yaml.v3 rather than a schema-validated config framework.
type Config struct {
	// UniqueSuffix seeds every realm's NameGenerator with a per-build unique
	// suffix. Left empty, it is not filled in here; the CLI then mints a
	// random UUID per invocation, so the residualized identifiers differ
	// between otherwise-identical runs.
	UniqueSuffix string `yaml:"unique_suffix,omitempty"`

	// Deadline bounds each run's wall-clock budget; zero means no
	// deadline. Parsed with time.ParseDuration ("1500ms", "2s", "1m").
	Deadline string `yaml:"deadline,omitempty"`

	// InvariantGuards toggles Flags.InvariantGuards; nil keeps the
	// conservative DefaultFlags() value (guards on).
	InvariantGuards *bool `yaml:"invariant_guards,omitempty"`

	// MaxJoinDepth overrides Flags.MaxJoinDepth; zero keeps the default.
	MaxJoinDepth int `yaml:"max_join_depth,omitempty"`

	// Runs lists each input/output pair in the batch.
	Runs []RunConfig `yaml:"runs"`
}

// RunConfig is one input/output pair within a batch Config.
type RunConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// LoadConfig reads and parses a YAML Config file from path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("realm: reading config %q: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("realm: parsing config %q: %w", path, err)
	}
	return &cfg, nil
}

// ParsedDeadline parses Deadline, returning ok=false when it is unset.
func (c *Config) ParsedDeadline() (d time.Duration, ok bool, err error) {
	if c.Deadline == "" {
		return 0, false, nil
	}
	d, err = time.ParseDuration(c.Deadline)
	if err != nil {
		return 0, false, fmt.Errorf("realm: invalid deadline %q: %w", c.Deadline, err)
	}
	return d, true, nil
}

// Flags builds a Flags value from the config, falling back to
// DefaultFlags() for anything left unset.
func (c *Config) Flags() Flags {
	f := DefaultFlags()
	if c.InvariantGuards != nil {
		f.InvariantGuards = *c.InvariantGuards
	}
	if c.MaxJoinDepth != 0 {
		f.MaxJoinDepth = c.MaxJoinDepth
	}
	return f
}
