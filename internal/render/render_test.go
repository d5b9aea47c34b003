package render_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/placarhq/placar/internal/domain/types"
	"github.com/placarhq/placar/internal/render"
	"github.com/placarhq/placar/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func entriesFixture() []types.StandingsEntry {
	return []types.StandingsEntry{
		{TeamID: 0, Name: "Flamengo", Wins: 1, GoalsFor: 2, GoalsAgainst: 1, GoalDifference: 1, Points: 3},
		{TeamID: 1, Name: "Santos", Losses: 1, GoalsFor: 1, GoalsAgainst: 2, GoalDifference: -1, Points: 0},
	}
}

func TestWriteTable(t *testing.T) {
	if err := logger.Init(); err != nil {
		t.Fatalf("init logger: %v", err)
	}

	convey.Convey("Given a renderer with default widths", t, func() {
		r := render.New(render.WithExportPath(filepath.Join(t.TempDir(), "classificacao.txt")))

		convey.Convey("When the table is written", func() {
			var sb strings.Builder
			err := r.WriteTable(&sb, entriesFixture())
			convey.So(err, convey.ShouldBeNil)
			lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")

			convey.Convey("Then the header and separator come first", func() {
				convey.So(lines, convey.ShouldHaveLength, 4)
				convey.So(lines[0], convey.ShouldEqual,
					"| ID  | Time         | V  | E  | D  | GM  | GS  | S   | PG  |")
				convey.So(lines[1], convey.ShouldEqual,
					"|-----|--------------|----|----|----|-----|-----|-----|-----|")
			})

			convey.Convey("Then rows are padded per column", func() {
				convey.So(lines[2], convey.ShouldEqual,
					"| 0   | Flamengo     | 1  | 0  | 0  | 2   | 1   | 1   | 3   |")
				convey.So(lines[3], convey.ShouldEqual,
					"| 1   | Santos       | 0  | 0  | 1  | 1   | 2   | -1  | 0   |")
			})

			convey.Convey("Then every line has the same visual width", func() {
				want := len(lines[1])
				for _, line := range lines {
					if strings.ContainsRune(line, '…') {
						continue
					}
					convey.So(len(line), convey.ShouldEqual, want)
				}
			})
		})

		convey.Convey("When a team name overflows its column", func() {
			long := []types.StandingsEntry{{TeamID: 2, Name: "Independente FC"}}
			var sb strings.Builder
			convey.So(r.WriteTable(&sb, long), convey.ShouldBeNil)

			convey.Convey("Then the name is truncated with an ellipsis", func() {
				convey.So(sb.String(), convey.ShouldContainSubstring, "| Independent… |")
			})
		})

		convey.Convey("When an accented name fills the column", func() {
			var sb strings.Builder
			convey.So(r.WriteTable(&sb, []types.StandingsEntry{{TeamID: 3, Name: "ESCorpiões"}}), convey.ShouldBeNil)

			convey.Convey("Then padding counts code points, not bytes", func() {
				// 10 code points plus 2 spaces of padding.
				convey.So(sb.String(), convey.ShouldContainSubstring, "| ESCorpiões   |")
			})
		})
	})
}

func TestRenderExport(t *testing.T) {
	if err := logger.Init(); err != nil {
		t.Fatalf("init logger: %v", err)
	}
	ctx := context.Background()

	convey.Convey("Given a renderer exporting to a temporary path", t, func() {
		path := filepath.Join(t.TempDir(), "classificacao.txt")
		r := render.New(render.WithExportPath(path))

		convey.Convey("When rendering", func() {
			var sb strings.Builder
			err := r.Render(ctx, &sb, entriesFixture())

			convey.Convey("Then the export mirrors the on-screen table", func() {
				convey.So(err, convey.ShouldBeNil)
				raw, readErr := os.ReadFile(path)
				convey.So(readErr, convey.ShouldBeNil)
				convey.So(string(raw), convey.ShouldEqual, sb.String())
			})
		})

		convey.Convey("When rendering twice", func() {
			var first, second strings.Builder
			convey.So(r.Render(ctx, &first, entriesFixture()), convey.ShouldBeNil)
			convey.So(r.Render(ctx, &second, entriesFixture()[:1]), convey.ShouldBeNil)

			convey.Convey("Then the report is overwritten, not appended", func() {
				raw, readErr := os.ReadFile(path)
				convey.So(readErr, convey.ShouldBeNil)
				convey.So(string(raw), convey.ShouldEqual, second.String())
			})
		})

		convey.Convey("When the export location is not writable", func() {
			broken := render.New(render.WithExportPath(filepath.Join(t.TempDir(), "missing", "sub", "out.txt")))
			var sb strings.Builder
			err := broken.Render(ctx, &sb, entriesFixture())

			convey.Convey("Then the on-screen rendering still succeeds", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(sb.String(), convey.ShouldContainSubstring, "Flamengo")
			})
		})
	})
}
