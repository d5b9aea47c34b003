package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if PLACAR_CONFIG is set
//  3. env (prefix PLACAR_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("PLACAR_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: PLACAR_TEAMS_PATH, PLACAR_TEAM_CAPACITY, ...
	// Map env keys like PLACAR_TEAM_CAPACITY -> team_capacity (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("PLACAR_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "placar_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.TeamsPath == "" || c.MatchesPath == "" {
		return fmt.Errorf("%w: source paths must not be empty", ErrInvalidConfig)
	}
	if c.ExportPath == "" {
		return fmt.Errorf("%w: export_path must not be empty", ErrInvalidConfig)
	}
	if c.TeamCapacity <= 0 || c.MatchCapacity <= 0 {
		return fmt.Errorf("%w: registry capacities must be positive", ErrInvalidConfig)
	}
	if c.MaxSearchResults <= 0 {
		return fmt.Errorf("%w: max_search_results must be positive", ErrInvalidConfig)
	}
	if c.NameWidth <= 0 {
		return fmt.Errorf("%w: name_width must be positive", ErrInvalidConfig)
	}
	return nil
}
