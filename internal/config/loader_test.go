package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/okian/cribguess/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldResemble, config.New())
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("CRIBGUESS_LOG_LEVEL", "debug")
			_ = os.Setenv("CRIBGUESS_SEED", "1234")
			_ = os.Setenv("CRIBGUESS_METRICS_ADDR", ":9090")
			_ = os.Setenv("CRIBGUESS_SHOW_HELP", "true")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.Seed, convey.ShouldEqual, uint64(1234))
				convey.So(cfg.MetricsAddr, convey.ShouldEqual, ":9090")
				convey.So(cfg.ShowHelp, convey.ShouldBeTrue)
				convey.So(cfg.Prompt, convey.ShouldEqual, "Your guess? ")
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
log_level: error
log_format: json
seed: 29
prompt: "Score? "
`
			tmpFile := createTempConfigFile(t, yamlContent)
			_ = os.Setenv("CRIBGUESS_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "error")
				convey.So(cfg.LogFormat, convey.ShouldEqual, "json")
				convey.So(cfg.Seed, convey.ShouldEqual, uint64(29))
				convey.So(cfg.Prompt, convey.ShouldEqual, "Score? ")
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			tmpFile := createTempConfigFile(t, "log_level: error\nseed: 29\n")
			_ = os.Setenv("CRIBGUESS_CONFIG", tmpFile)
			_ = os.Setenv("CRIBGUESS_SEED", "7")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should win", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "error")
				convey.So(cfg.Seed, convey.ShouldEqual, uint64(7))
			})
		})

		convey.Convey("When the config file does not exist", func() {
			_ = os.Setenv("CRIBGUESS_CONFIG", "/nonexistent/cribguess.yaml")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then it should fail with ErrLoadConfig", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the loaded config is invalid", func() {
			_ = os.Setenv("CRIBGUESS_LOG_FORMAT", "xml")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then it should fail with ErrInvalidConfig", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}

// clearConfigEnvVars removes all config environment variables.
func clearConfigEnvVars() {
	for _, name := range []string{
		"CRIBGUESS_CONFIG",
		"CRIBGUESS_LOG_LEVEL",
		"CRIBGUESS_LOG_FORMAT",
		"CRIBGUESS_SEED",
		"CRIBGUESS_METRICS_ADDR",
		"CRIBGUESS_PROMPT",
		"CRIBGUESS_SHOW_HELP",
	} {
		_ = os.Unsetenv(name)
	}
}

// createTempConfigFile writes content to a temporary YAML file.
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "cribguess-*.yaml")
	if err != nil {
		t.Fatalf("create temp config: %v", err)
	}
	defer func() { _ = f.Close() }()
	if _, err := f.WriteString(content); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return f.Name()
}
