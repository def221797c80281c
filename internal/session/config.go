// Package session implements the evaluator's session-facing state:
// the property bag that backs `Sys.env`/`Sys.set`/`Sys.unset`, and a
// typed Config the session loads once from a morel.yaml file. Nothing
// here is consulted by the evaluator core itself; Session is the
// collaborator the core's `use` and `Sys.*` built-ins call out to.
package session

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config holds the session's well-known property keys. Unknown keys
// encountered while parsing a morel.yaml file are accepted into
// Overlay rather than rejected, since Sys.set allows arbitrary
// session-scoped properties at runtime that this struct cannot
// anticipate.
type Config struct {
	PrintDepth           int  `yaml:"PRINT_DEPTH"`
	PrintLength          int  `yaml:"PRINT_LENGTH"`
	StringDepth          int  `yaml:"STRING_DEPTH"`
	LineWidth            int  `yaml:"LINE_WIDTH"`
	MatchCoverageEnabled bool `yaml:"MATCH_COVERAGE_ENABLED"`
	Hybrid               bool `yaml:"HYBRID"`
	Relationalize        bool `yaml:"RELATIONALIZE"`
	InlinePassCount      int  `yaml:"INLINE_PASS_COUNT"`

	Overlay map[string]string `yaml:",inline"`
}

// DefaultConfig is the REPL's out-of-the-box property set: a generous
// pretty-printing depth, a fixed terminal-ish line width, and the
// optimizer passes enabled.
func DefaultConfig() Config {
	return Config{
		PrintDepth:      5,
		PrintLength:     12,
		StringDepth:     70,
		LineWidth:       80,
		Hybrid:          true,
		Relationalize:   true,
		InlinePassCount: 5,
		Overlay:         map[string]string{},
	}
}

// ParseConfig decodes a morel.yaml document into a Config seeded with
// DefaultConfig's values.
func ParseConfig(doc []byte) (Config, error) {
	cfg := DefaultConfig()
	if len(doc) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(doc, &cfg); err != nil {
		return Config{}, fmt.Errorf("session: parsing morel.yaml: %w", err)
	}
	if cfg.Overlay == nil {
		cfg.Overlay = map[string]string{}
	}
	return cfg, nil
}
