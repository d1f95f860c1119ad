package scoring

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/Dosada05/prediction-pool/models"
)

// LeaderboardInput is everything BuildLeaderboard needs. Configuration is
// passed in explicitly; the engine reads no shared state.
type LeaderboardInput struct {
	Roster      []models.Participant
	Matches     []models.Match
	Predictions models.Predictions
	Rules       RuleSet
	Policy      models.MultiplierPolicy
}

// BuildLeaderboard scores every roster participant on every match that has
// both an official result and a complete prediction, then ranks them.
//
// The rule set is validated before anything is summed, so a missing category
// fails the whole call rather than producing a partial table.
func BuildLeaderboard(in LeaderboardInput) ([]models.LeaderboardEntry, error) {
	if err := in.Rules.Validate(); err != nil {
		return nil, err
	}

	entries := make([]models.LeaderboardEntry, 0, len(in.Roster))
	for _, p := range in.Roster {
		entry := models.LeaderboardEntry{ParticipantID: p.ID, Name: p.Name}

		for _, m := range in.Matches {
			official, ok := m.Official()
			if !ok {
				continue
			}
			pred, ok := in.Predictions.Get(p.ID, m.ID)
			if !ok {
				continue
			}

			outcome, err := classifyChecked(pred, official)
			if err != nil {
				return nil, fmt.Errorf("participant %q, match %q: %w", p.ID, m.ID, err)
			}
			points, err := MatchPoints(outcome, in.Rules, in.Policy.Eligible(m))
			if err != nil {
				return nil, fmt.Errorf("participant %q, match %q: %w", p.ID, m.ID, err)
			}

			entry.Points += points
			if outcome == OutcomeExact {
				entry.ExactScores++
			}
			if m.IsMarquee {
				entry.MarqueePoints += points
			}
		}
		entries = append(entries, entry)
	}

	SortLeaderboard(entries)
	return entries, nil
}

// SortLeaderboard orders entries by points, exact scores and marquee points
// (all descending), then name ascending, and assigns dense positions. Entries
// tied on every key still get distinct adjacent positions.
func SortLeaderboard(entries []models.LeaderboardEntry) {
	slices.SortStableFunc(entries, compareEntries)
	for i := range entries {
		entries[i].Position = i + 1
	}
}

func compareEntries(a, b models.LeaderboardEntry) int {
	if c := cmp.Compare(b.Points, a.Points); c != 0 {
		return c
	}
	if c := cmp.Compare(b.ExactScores, a.ExactScores); c != 0 {
		return c
	}
	if c := cmp.Compare(b.MarqueePoints, a.MarqueePoints); c != 0 {
		return c
	}
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return strings.Compare(a.ParticipantID, b.ParticipantID)
}
