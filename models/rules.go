package models

import (
	"slices"
	"time"
)

// ScoringCategory identifies a scoring rule by meaning. Rules are looked up by
// category, never by id or by point value.
type ScoringCategory string

const (
	CategoryExactScore         ScoringCategory = "exact_score"
	CategoryWinnerPlusSubscore ScoringCategory = "winner_plus_subscore"
	CategoryWinnerOnly         ScoringCategory = "winner_only"
	CategoryCorrectDraw        ScoringCategory = "correct_draw"

	CategoryGroupFirst   ScoringCategory = "group_first"
	CategoryGroupSecond  ScoringCategory = "group_second"
	CategoryTopScorer    ScoringCategory = "top_scorer"
	CategoryChampion     ScoringCategory = "champion"
	CategoryViceChampion ScoringCategory = "vice_champion"
	CategoryThirdPlace   ScoringCategory = "third_place"
)

// MatchCategories are the categories every rule set must define.
var MatchCategories = []ScoringCategory{
	CategoryExactScore,
	CategoryWinnerPlusSubscore,
	CategoryWinnerOnly,
	CategoryCorrectDraw,
}

// ExtraCategories price the tournament-long bets. They are published with the
// rule table; nothing awards them automatically.
var ExtraCategories = []ScoringCategory{
	CategoryGroupFirst,
	CategoryGroupSecond,
	CategoryTopScorer,
	CategoryChampion,
	CategoryViceChampion,
	CategoryThirdPlace,
}

type ScoringRule struct {
	ID       string          `json:"id" db:"id"`
	Category ScoringCategory `json:"category" db:"category"`
	Label    string          `json:"label" db:"label"`
	Points   int             `json:"points" db:"points"`
}

// MultiplierPolicy lists the teams and phases (group labels) whose matches
// are worth double.
type MultiplierPolicy struct {
	SpecialTeams  []string `json:"special_teams"`
	SpecialPhases []string `json:"special_phases"`
}

// Eligible reports whether the match is multiplier-eligible. Both conditions
// holding at once still means a single doubling.
func (p MultiplierPolicy) Eligible(m Match) bool {
	return slices.Contains(p.SpecialTeams, m.TeamA) ||
		slices.Contains(p.SpecialTeams, m.TeamB) ||
		slices.Contains(p.SpecialPhases, m.Group)
}

// PrizeDistribution holds the percentage of the pool paid to each podium place.
type PrizeDistribution struct {
	First  int `json:"first"`
	Second int `json:"second"`
	Third  int `json:"third"`
}

type PoolSettings struct {
	TicketPriceCents int64             `json:"ticket_price_cents" db:"ticket_price_cents"`
	Prizes           PrizeDistribution `json:"prize_distribution"`
	Multiplier       MultiplierPolicy  `json:"multiplier"`
	UpdatedAt        time.Time         `json:"updated_at" db:"updated_at"`
}

// PoolConfig is the administrator-managed configuration the engine consumes.
type PoolConfig struct {
	Rules    []ScoringRule `json:"scoring_rules"`
	Settings PoolSettings  `json:"settings"`
}
