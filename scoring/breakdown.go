package scoring

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/Dosada05/prediction-pool/models"
)

const StatusPending = "pending"

// BetResult is one participant's prediction on a match and what it earned.
type BetResult struct {
	ParticipantID string       `json:"participant_id"`
	Name          string       `json:"name"`
	Prediction    models.Score `json:"prediction"`
	Status        string       `json:"status"`
	BasePoints    int          `json:"base_points"`
	Points        int          `json:"points"`
}

type MatchBreakdown struct {
	Match      models.Match `json:"match"`
	Multiplier int          `json:"multiplier"`
	Results    []BetResult  `json:"results"`
}

// BreakdownMatch lists every roster participant who made a complete
// prediction on the match. Until the official result is in, all results are
// pending and worth zero. Results are sorted by points, then name.
func BreakdownMatch(m models.Match, roster []models.Participant, preds models.Predictions, rules RuleSet, policy models.MultiplierPolicy) (*MatchBreakdown, error) {
	multiplier := 1
	if policy.Eligible(m) {
		multiplier = Multiplier
	}
	official, played := m.Official()

	results := make([]BetResult, 0, len(roster))
	for _, p := range roster {
		pred, ok := preds.Get(p.ID, m.ID)
		if !ok {
			continue
		}
		res := BetResult{ParticipantID: p.ID, Name: p.Name, Prediction: pred, Status: StatusPending}
		if played {
			outcome, err := classifyChecked(pred, official)
			if err != nil {
				return nil, fmt.Errorf("participant %q: %w", p.ID, err)
			}
			base, err := MatchPoints(outcome, rules, false)
			if err != nil {
				return nil, err
			}
			res.Status = outcome.String()
			res.BasePoints = base
			res.Points = base * multiplier
		}
		results = append(results, res)
	}

	slices.SortStableFunc(results, func(a, b BetResult) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})

	return &MatchBreakdown{Match: m, Multiplier: multiplier, Results: results}, nil
}
