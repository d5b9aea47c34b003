// Package types contains common types used across the application
package types

// StandingsEntry is one row of the championship table, with the derived
// quantities already computed.
type StandingsEntry struct {
	TeamID         int    `json:"team_id"`
	Name           string `json:"name"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}
