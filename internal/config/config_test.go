package config_test

import (
	"errors"
	"testing"

	"github.com/okian/cribguess/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
			convey.So(cfg.LogFormat, convey.ShouldEqual, "text")
			convey.So(cfg.Seed, convey.ShouldEqual, uint64(0))
			convey.So(cfg.MetricsAddr, convey.ShouldEqual, "")
			convey.So(cfg.Prompt, convey.ShouldEqual, "Your guess? ")
			convey.So(cfg.ShowHelp, convey.ShouldBeFalse)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})

	convey.Convey("Given a config with an unknown log format", t, func() {
		cfg := config.New()
		cfg.LogFormat = "xml"

		convey.Convey("Then validation fails with ErrInvalidConfig", func() {
			convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
		})
	})

	convey.Convey("Given a config with an empty prompt", t, func() {
		cfg := config.New()
		cfg.Prompt = ""

		convey.Convey("Then validation fails with ErrInvalidConfig", func() {
			convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
		})
	})
}
