package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/placarhq/placar/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func clearConfigEnvVars() {
	for _, key := range []string{
		"PLACAR_CONFIG",
		"PLACAR_LOG_LEVEL",
		"PLACAR_ADDR",
		"PLACAR_TEAMS_PATH",
		"PLACAR_MATCHES_PATH",
		"PLACAR_EXPORT_PATH",
		"PLACAR_TEAM_CAPACITY",
		"PLACAR_MATCH_CAPACITY",
		"PLACAR_MAX_SEARCH_RESULTS",
		"PLACAR_NAME_WIDTH",
	} {
		_ = os.Unsetenv(key)
	}
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.TeamsPath, convey.ShouldEqual, "times.csv")
				convey.So(cfg.MatchesPath, convey.ShouldEqual, "partidas.csv")
				convey.So(cfg.ExportPath, convey.ShouldEqual, "classificacao.txt")
				convey.So(cfg.TeamCapacity, convey.ShouldEqual, 64)
				convey.So(cfg.MatchCapacity, convey.ShouldEqual, 500)
				convey.So(cfg.MaxSearchResults, convey.ShouldEqual, 64)
				convey.So(cfg.NameWidth, convey.ShouldEqual, 12)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			clearConfigEnvVars()
			_ = os.Setenv("PLACAR_TEAMS_PATH", "data/times.csv")
			_ = os.Setenv("PLACAR_TEAM_CAPACITY", "128")
			_ = os.Setenv("PLACAR_NAME_WIDTH", "20")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.TeamsPath, convey.ShouldEqual, "data/times.csv")
				convey.So(cfg.TeamCapacity, convey.ShouldEqual, 128)
				convey.So(cfg.NameWidth, convey.ShouldEqual, 20)
				convey.So(cfg.MatchCapacity, convey.ShouldEqual, 500)
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			clearConfigEnvVars()
			path := filepath.Join(t.TempDir(), "placar.yaml")
			raw := "teams_path: fixtures/times.csv\nmatch_capacity: 900\nlog_level: debug\n"
			convey.So(os.WriteFile(path, []byte(raw), 0o644), convey.ShouldBeNil)
			_ = os.Setenv("PLACAR_CONFIG", path)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values layer over defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.TeamsPath, convey.ShouldEqual, "fixtures/times.csv")
				convey.So(cfg.MatchCapacity, convey.ShouldEqual, 900)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
			})

			convey.Convey("And env vars still win over the file", func() {
				_ = os.Setenv("PLACAR_MATCH_CAPACITY", "50")
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.MatchCapacity, convey.ShouldEqual, 50)
			})
		})

		convey.Convey("When a capacity is invalid", func() {
			clearConfigEnvVars()
			_ = os.Setenv("PLACAR_TEAM_CAPACITY", "0")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then validation rejects the config", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(err, convey.ShouldWrap, config.ErrInvalidConfig)
			})
		})

		convey.Convey("When the export path is cleared", func() {
			clearConfigEnvVars()
			path := filepath.Join(t.TempDir(), "placar.yaml")
			convey.So(os.WriteFile(path, []byte(`export_path: ""`+"\n"), 0o644), convey.ShouldBeNil)
			_ = os.Setenv("PLACAR_CONFIG", path)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then validation rejects the config", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(err, convey.ShouldWrap, config.ErrInvalidConfig)
			})
		})
	})
}
