package models

import (
	"strings"
	"time"
)

// GroupStagePrefix marks group-stage matches, e.g. "Grupo C".
const GroupStagePrefix = "Grupo "

type Match struct {
	ID             string    `json:"id"`
	TeamA          string    `json:"team_a"`
	TeamB          string    `json:"team_b"`
	Group          string    `json:"group"`
	Date           time.Time `json:"date"`
	Venue          *string   `json:"venue,omitempty"`
	IsMarquee      bool      `json:"is_marquee"`
	OfficialScoreA *int      `json:"official_score_a,omitempty"`
	OfficialScoreB *int      `json:"official_score_b,omitempty"`
}

// Official returns the official result once both scores are entered.
func (m Match) Official() (Score, bool) {
	return PartialScore{A: m.OfficialScoreA, B: m.OfficialScoreB}.Complete()
}

func (m Match) IsGroupStage() bool {
	return strings.HasPrefix(m.Group, GroupStagePrefix)
}

// GroupName strips the group-stage prefix: "Grupo C" -> "C".
func (m Match) GroupName() string {
	return strings.TrimPrefix(m.Group, GroupStagePrefix)
}

func (m Match) Involves(team string) bool {
	return m.TeamA == team || m.TeamB == team
}

// Between reports whether the match is a fixture between the two teams, in
// either orientation.
func (m Match) Between(team1, team2 string) bool {
	return (m.TeamA == team1 && m.TeamB == team2) || (m.TeamA == team2 && m.TeamB == team1)
}
