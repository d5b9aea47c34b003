package metrics_test

import (
	"testing"

	"github.com/placarhq/placar/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartystreets/goconvey/convey"
)

func TestManager(t *testing.T) {
	convey.Convey("Given a manager on a private registry", t, func() {
		reg := prometheus.NewRegistry()
		m := metrics.NewManager(metrics.WithPrometheusRegistry(reg))
		convey.So(m, convey.ShouldNotBeNil)

		convey.Convey("When metrics are registered", func() {
			families, err := reg.Gather()

			convey.Convey("Then gathering succeeds", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(families, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When a second manager shares the registry", func() {
			convey.Convey("Then duplicate registration panics as promauto promises", func() {
				convey.So(func() {
					metrics.NewManager(metrics.WithPrometheusRegistry(reg))
				}, convey.ShouldPanic)
			})
		})
	})
}

func TestPackageHelpers(t *testing.T) {
	convey.Convey("Given the global manager", t, func() {
		convey.Convey("When recording pipeline events", func() {
			// Exercising every helper against the global registry; values
			// accumulate across tests, so only absence of panics is checked.
			convey.So(func() {
				metrics.RecordTeamsLoaded(10)
				metrics.RecordMatchesLoaded(90)
				metrics.RecordParseError("teams")
				metrics.RecordCapacityDrop("matches")
				metrics.RecordDanglingReference()
				metrics.ObserveAggregationDuration(1.5)
				metrics.RecordQuery("mandante")
				metrics.RecordExport()
				metrics.RecordExportError()
				metrics.RecordHTTPRequest("standings", "GET", "200")
				metrics.RecordHTTPRequestDuration("standings", "GET", "200", 0.3)
			}, convey.ShouldNotPanic)
		})

		convey.Convey("When gathering the shared registry", func() {
			families, err := metrics.GetRegistry().Gather()
			convey.So(err, convey.ShouldBeNil)

			names := make(map[string]bool, len(families))
			for _, f := range families {
				names[f.GetName()] = true
			}

			convey.Convey("Then the standings metrics are present", func() {
				convey.So(names["placar_standings_records_loaded_total"], convey.ShouldBeTrue)
				convey.So(names["placar_standings_dangling_references_total"], convey.ShouldBeTrue)
				convey.So(names["placar_standings_match_queries_total"], convey.ShouldBeTrue)
			})
		})
	})
}
