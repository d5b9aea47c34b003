// Package config defines process configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - Layer defaults, optional file, and environment in Load.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address for serve mode, e.g. ":9080".
	Addr string `koanf:"addr"`

	// TeamsPath and MatchesPath locate the CSV sources.
	TeamsPath   string `koanf:"teams_path"`
	MatchesPath string `koanf:"matches_path"`

	// ExportPath is where the flat standings report is written.
	ExportPath string `koanf:"export_path"`

	// TeamCapacity and MatchCapacity bound the in-memory registries.
	TeamCapacity  int `koanf:"team_capacity"`
	MatchCapacity int `koanf:"match_capacity"`

	// MaxSearchResults caps how many prefix-search hits are shown.
	MaxSearchResults int `koanf:"max_search_results"`

	// NameWidth sets the visual width of the team-name table column.
	NameWidth int `koanf:"name_width"`
}

// New creates a Config populated with defaults. The CSV paths mirror the
// historical layout: both files expected in the working directory.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":9080",
		TeamsPath:        "times.csv",
		MatchesPath:      "partidas.csv",
		ExportPath:       "classificacao.txt",
		TeamCapacity:     64,
		MatchCapacity:    500,
		MaxSearchResults: 64,
		NameWidth:        12,
	}
}
