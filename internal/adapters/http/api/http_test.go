package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/placarhq/placar/internal/adapters/http/api"
	service "github.com/placarhq/placar/internal/app"
	"github.com/placarhq/placar/internal/domain/types"
	"github.com/placarhq/placar/internal/render"
	"github.com/placarhq/placar/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	if err := logger.Init(); err != nil {
		t.Fatalf("init logger: %v", err)
	}

	dir := t.TempDir()
	teams := filepath.Join(dir, "times.csv")
	matches := filepath.Join(dir, "partidas.csv")
	if err := os.WriteFile(teams, []byte("ID,Time\n0,Flamengo\n1,Santos\n"), 0o644); err != nil {
		t.Fatalf("write teams: %v", err)
	}
	if err := os.WriteFile(matches, []byte("ID,Time1ID,Time2ID,GolsTime1,GolsTime2\n0,0,1,2,1\n"), 0o644); err != nil {
		t.Fatalf("write matches: %v", err)
	}

	svc := service.New(
		service.WithTeamsPath(teams),
		service.WithMatchesPath(matches),
		service.WithRenderer(render.New(render.WithExportPath(filepath.Join(dir, "classificacao.txt")))),
	)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	mux := http.NewServeMux()
	api.NewServer(svc).Register(context.Background(), mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, string(body)
}

func TestAPI(t *testing.T) {
	srv := newTestServer(t)

	convey.Convey("Given the running read API", t, func() {
		convey.Convey("When GET /standings", func() {
			resp, body := get(t, srv.URL+"/standings")

			convey.Convey("Then the fixed-width table is served as text", func() {
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusOK)
				convey.So(resp.Header.Get("Content-Type"), convey.ShouldStartWith, "text/plain")
				convey.So(body, convey.ShouldContainSubstring, "| ID  | Time         |")
				convey.So(body, convey.ShouldContainSubstring, "| Flamengo     |")
			})

			convey.Convey("Then the response carries a request id", func() {
				convey.So(resp.Header.Get(api.RequestIDHeader), convey.ShouldNotBeEmpty)
			})
		})

		convey.Convey("When GET /standings.json", func() {
			resp, body := get(t, srv.URL+"/standings.json")

			convey.Convey("Then entries come back ordered by team id", func() {
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusOK)
				var entries []types.StandingsEntry
				convey.So(json.Unmarshal([]byte(body), &entries), convey.ShouldBeNil)
				convey.So(entries, convey.ShouldHaveLength, 2)
				convey.So(entries[0].Name, convey.ShouldEqual, "Flamengo")
				convey.So(entries[0].Points, convey.ShouldEqual, 3)
			})
		})

		convey.Convey("When GET /matches with a valid filter", func() {
			resp, body := get(t, srv.URL+"/matches?mode=either&prefix=fla")

			convey.Convey("Then the listing matches the interactive output", func() {
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusOK)
				convey.So(body, convey.ShouldContainSubstring, "| 0 | Flamengo | 2 x 1 | Santos |")
			})
		})

		convey.Convey("When GET /matches with a bad mode", func() {
			resp, _ := get(t, srv.URL+"/matches?mode=sideways&prefix=fla")
			convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusBadRequest)
		})

		convey.Convey("When GET /matches without a prefix", func() {
			resp, _ := get(t, srv.URL+"/matches?mode=home")
			convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusBadRequest)
		})

		convey.Convey("When GET /teams", func() {
			resp, body := get(t, srv.URL+"/teams?prefix=sa")

			convey.Convey("Then hits and the full total are reported", func() {
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusOK)
				var payload struct {
					Teams []types.StandingsEntry `json:"teams"`
					Total int                    `json:"total"`
				}
				convey.So(json.Unmarshal([]byte(body), &payload), convey.ShouldBeNil)
				convey.So(payload.Total, convey.ShouldEqual, 1)
				convey.So(payload.Teams[0].Name, convey.ShouldEqual, "Santos")
			})
		})

		convey.Convey("When GET /healthz", func() {
			resp, body := get(t, srv.URL+"/healthz")

			convey.Convey("Then the loaded season is described", func() {
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusOK)
				convey.So(body, convey.ShouldContainSubstring, `"status":"ok"`)
				convey.So(body, convey.ShouldContainSubstring, `"teams":2`)
			})
		})

		convey.Convey("When GET /metrics", func() {
			resp, body := get(t, srv.URL+"/metrics")

			convey.Convey("Then Prometheus metrics are exposed", func() {
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusOK)
				convey.So(body, convey.ShouldContainSubstring, "placar_standings_")
			})
		})
	})
}
