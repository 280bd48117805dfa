package engine

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the process-wide configuration §6 recognises, constructed once
// per Match call and threaded explicitly — never mutable global state.
type Config struct {
	// UnmatchedAttributes lists attribute names excluded from emap content
	// comparison (§6).
	UnmatchedAttributes []string `yaml:"unmatched_attributes"`
	// Infer turns on the optional Component H inference-transfer stage.
	Infer bool `yaml:"infer"`
	// RulesetName selects a named ruleset other than the default
	// LiteralSimilarity. Reserved for when more than one ruleset ships;
	// Match currently only recognizes the empty string.
	RulesetName string `yaml:"ruleset"`
}

// LoadConfig reads a YAML document into a Config. Grounded in the pack's
// own config-loading convention (Mimir-AIP-Mimir-AIP-Go, AleutianLocal both
// load process config via gopkg.in/yaml.v3).
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
