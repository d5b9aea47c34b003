package types_test

import (
	"encoding/json"
	"testing"

	"github.com/placarhq/placar/internal/domain/types"
	"github.com/smartystreets/goconvey/convey"
)

func TestStandingsEntry(t *testing.T) {
	convey.Convey("Given a standings entry", t, func() {
		entry := types.StandingsEntry{
			TeamID:         0,
			Name:           "Flamengo",
			Wins:           1,
			GoalsFor:       2,
			GoalsAgainst:   1,
			GoalDifference: 1,
			Points:         3,
		}

		convey.Convey("When serialized for the read API", func() {
			raw, err := json.Marshal(entry)

			convey.Convey("Then it uses the documented field names", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(string(raw), convey.ShouldContainSubstring, `"team_id":0`)
				convey.So(string(raw), convey.ShouldContainSubstring, `"goal_difference":1`)
				convey.So(string(raw), convey.ShouldContainSubstring, `"points":3`)
			})
		})
	})
}
