package models

type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendSame Trend = "same"
)

type LeaderboardEntry struct {
	ParticipantID string `json:"participant_id"`
	Name          string `json:"name"`
	Points        int    `json:"points"`
	ExactScores   int    `json:"exact_scores"`
	MarqueePoints int    `json:"marquee_points"`
	Position      int    `json:"position"`
	Trend         Trend  `json:"trend,omitempty"`
}

type GroupRow struct {
	TeamName       string `json:"team_name"`
	Group          string `json:"group"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

// GroupTable is one group's rows in final rank order.
type GroupTable struct {
	Group string     `json:"group"`
	Rows  []GroupRow `json:"rows"`
}
