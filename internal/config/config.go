// Package config loads the CLI's optional axlang.yaml configuration
// file. Nothing in the language spec requires persistent configuration
// — this is ambient tooling around the evaluator, carried the way the
// teacher pack carries it: goccy/go-yaml, already present (indirectly)
// in the teacher's own go.mod and used directly by ardnew-aenv for its
// own config/AST marshaling.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// DefaultModulesRoot is used when no flag, env var, or config file
// overrides the module search root (§6: "modules/<name>.ax relative to
// the interpreter's shipped module directory").
const DefaultModulesRoot = "modules"

// Config is the CLI's session configuration.
type Config struct {
	// ModulesRoot overrides the default `modules/` search root for
	// `(import name)` (§4.5).
	ModulesRoot string `yaml:"modules_root"`
	// Debug turns on verbose tracing by default, equivalent to always
	// passing --debug.
	Debug bool `yaml:"debug"`
}

// Load reads path (typically "axlang.yaml" in the working directory)
// and returns its Config. A missing file is not an error: it yields the
// zero Config, letting Resolve fall through to defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Resolve applies the precedence flag > AXLANG_MODULES env var >
// config file > DefaultModulesRoot (SPEC_FULL.md §1) and returns the
// module search root to use.
func Resolve(flagValue string, cfg Config) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("AXLANG_MODULES"); env != "" {
		return env
	}
	if cfg.ModulesRoot != "" {
		return cfg.ModulesRoot
	}
	return DefaultModulesRoot
}
