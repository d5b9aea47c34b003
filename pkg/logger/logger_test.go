package logger_test

import (
	"context"
	"strings"
	"testing"

	"github.com/placarhq/placar/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	convey.Convey("Given an initialized logger", t, func() {
		var sb strings.Builder
		convey.So(logger.InitWithWriter(&sb), convey.ShouldBeNil)
		log := logger.Get()
		ctx := context.Background()

		convey.Convey("When logging with fields", func() {
			log.Info(ctx, "teams loaded", logger.Int("count", 10), logger.String("path", "times.csv"))

			convey.Convey("Then the message and fields are emitted", func() {
				out := sb.String()
				convey.So(out, convey.ShouldContainSubstring, "teams loaded")
				convey.So(out, convey.ShouldContainSubstring, "count=10")
				convey.So(out, convey.ShouldContainSubstring, "path=times.csv")
			})
		})

		convey.Convey("When the level filters debug output", func() {
			convey.So(logger.SetLevelString("info"), convey.ShouldBeNil)
			log.Debug(ctx, "invisible")
			convey.So(sb.String(), convey.ShouldNotContainSubstring, "invisible")

			convey.Convey("And raising verbosity lets it through", func() {
				convey.So(logger.SetLevelString("debug"), convey.ShouldBeNil)
				log.Debug(ctx, "now visible")
				convey.So(sb.String(), convey.ShouldContainSubstring, "now visible")
			})
		})

		convey.Convey("When an unknown level is requested", func() {
			convey.So(logger.SetLevelString("blaring"), convey.ShouldNotBeNil)
		})

		convey.Convey("When a named logger is derived", func() {
			logger.Named("loader").Warn(ctx, "line ignored", logger.String("raw", "abc"))
			convey.So(sb.String(), convey.ShouldContainSubstring, "loader.raw=abc")
		})
	})
}
