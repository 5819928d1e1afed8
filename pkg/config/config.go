// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"

	"github.com/walteh/degradient/pkg/scan"
	"github.com/walteh/degradient/pkg/text"
)

// ❌ ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.Base("invalid config")

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config describes one gradient removal run
type Config struct {
	Base        string                 `json:"base" yaml:"base"`                           // Frontend directory; relative roots and printed paths are resolved against it
	Roots       []string               `json:"roots" yaml:"roots"`                         // Trees to rewrite
	Suffix      string                 `json:"suffix" yaml:"suffix"`                       // File name suffix to process
	Exclude     []string               `json:"exclude" yaml:"exclude"`                     // Doublestar globs skipped during discovery
	Marker      string                 `json:"marker" yaml:"marker"`                       // Substring counted after the run
	MarkerRoots []string               `json:"marker_roots" yaml:"marker_roots"`           // Trees searched for leftover markers
	Workers     int                    `json:"workers,omitempty" yaml:"workers,omitempty"` // Marker scan concurrency, 0 for one per CPU
	DryRun      bool                   `json:"dry_run,omitempty" yaml:"dry_run,omitempty"` // Report changes without writing
	Rules       []text.ReplacementRule `json:"rules,omitempty" yaml:"rules,omitempty"`     // Replaces the built-in rule list when set
}

// 🏭 Default returns the configuration for the usual frontend layout
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// 🔧 SetDefaults fills every unset field
func (cfg *Config) SetDefaults() {
	if cfg.Base == "" {
		cfg.Base = "."
	}
	if len(cfg.Roots) == 0 {
		cfg.Roots = []string{"app", "components"}
	}
	if cfg.Suffix == "" {
		cfg.Suffix = ".tsx"
	}
	if cfg.Exclude == nil {
		cfg.Exclude = []string{"**/node_modules", "**/node_modules/**"}
	}
	if cfg.Marker == "" {
		cfg.Marker = text.Marker
	}
	if len(cfg.MarkerRoots) == 0 {
		cfg.MarkerRoots = []string{cfg.Roots[0]}
	}
}

// Option adjusts a parsed configuration before defaults are applied.
type Option func(*Config)

// 🎯 Load loads the configuration from a file. An empty path starts from the
// zero Config. Options run after parsing and before defaults, so a root given
// on the command line also decides the default marker root.
func Load(ctx context.Context, path string, opts ...Option) (*Config, error) {
	logger := zerolog.Ctx(ctx)

	cfg := &Config{}
	if path != "" {
		logger.Debug().Str("path", path).Msg("loading configuration")

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Errorf("reading config file: %w", err)
		}

		p := GetParser(path)
		if p == nil {
			return nil, errors.Errorf("no parser found for file: %s", path)
		}

		cfg, err = p.Parse(ctx, data)
		if err != nil {
			return nil, errors.Errorf("parsing config: %w", err)
		}
	}

	for _, opt := range opts {
		opt(cfg)
	}

	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	logger.Debug().Stringer("config", cfg).Msg("configuration loaded")

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if cfg.Suffix == "" {
		return errors.Errorf("%w: suffix is required", ErrInvalidConfig)
	}
	if len(cfg.Roots) == 0 {
		return errors.Errorf("%w: at least one root is required", ErrInvalidConfig)
	}
	for i, root := range append(append([]string{}, cfg.Roots...), cfg.MarkerRoots...) {
		if strings.TrimSpace(root) == "" {
			return errors.Errorf("%w: root %d is empty", ErrInvalidConfig, i)
		}
	}
	for _, pattern := range cfg.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("%w: bad exclude pattern %q", ErrInvalidConfig, pattern)
		}
	}
	if cfg.Marker == "" {
		return errors.Errorf("%w: marker is required", ErrInvalidConfig)
	}
	if cfg.Workers < 0 {
		return errors.Errorf("%w: workers must not be negative", ErrInvalidConfig)
	}
	if err := text.ValidateRules(cfg.Rules); err != nil {
		return errors.Errorf("%w: %s", ErrInvalidConfig, err.Error())
	}

	return nil
}

// 📂 Resolve joins a relative path onto Base
func (cfg *Config) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(cfg.Base, path)
}

// RootPaths returns the resolved rewrite roots.
func (cfg *Config) RootPaths() []string {
	return cfg.resolveAll(cfg.Roots)
}

// MarkerRootPaths returns the resolved marker search roots.
func (cfg *Config) MarkerRootPaths() []string {
	return cfg.resolveAll(cfg.MarkerRoots)
}

func (cfg *Config) resolveAll(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = cfg.Resolve(p)
	}
	return out
}

// Rel returns path relative to Base, or path itself when that fails.
func (cfg *Config) Rel(path string) string {
	rel, err := filepath.Rel(cfg.Base, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

// Filter returns the discovery filter.
func (cfg *Config) Filter() scan.Filter {
	return scan.Filter{Suffix: cfg.Suffix, Exclude: cfg.Exclude}
}

// CountFilter returns the filter of the remaining marker count. It matches
// on suffix only, so excluded trees such as node_modules are still counted.
func (cfg *Config) CountFilter() scan.Filter {
	return scan.Filter{Suffix: cfg.Suffix}
}

// RuleSet compiles the configured rules, falling back to the built-in list.
func (cfg *Config) RuleSet() (*text.RuleSet, error) {
	if len(cfg.Rules) == 0 {
		return text.DefaultRuleSet(), nil
	}
	set, err := text.NewRuleSet(cfg.Rules)
	if err != nil {
		return nil, errors.Errorf("compiling rules: %w", err)
	}
	return set, nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	rules := "built-in rules"
	if len(cfg.Rules) > 0 {
		rules = fmt.Sprintf("%d rules", len(cfg.Rules))
	}
	return fmt.Sprintf("%s [%s] *%s (%s)", cfg.Base, strings.Join(cfg.Roots, ", "), cfg.Suffix, rules)
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
	Register(&JSONParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &cfg, nil
}

// 🔧 JSONParser implements the Parser interface for JSON files. The document
// printed by `degradient rules -o json` is a valid config on its own.
type JSONParser struct{}

func (p *JSONParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".json")
}

func (p *JSONParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing JSON: %w", err)
	}
	if decoder.More() {
		return nil, errors.Errorf("parsing JSON: unexpected data after the config object")
	}
	return &cfg, nil
}
