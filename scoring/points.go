package scoring

import (
	"errors"
	"fmt"

	"github.com/Dosada05/prediction-pool/models"
)

// Multiplier applied to multiplier-eligible matches.
const Multiplier = 2

// RuleSet is the administrator-configured list of scoring rules. It may hold
// rules for categories the engine does not score (group placements, extra
// bets); those are ignored.
type RuleSet []models.ScoringRule

// DefaultRules are the pool's documented defaults, used to seed an empty store.
func DefaultRules() RuleSet {
	return RuleSet{
		{ID: "1", Category: models.CategoryExactScore, Label: "Exact score", Points: 6},
		{ID: "2", Category: models.CategoryWinnerPlusSubscore, Label: "Winner and one team's score", Points: 3},
		{ID: "3", Category: models.CategoryWinnerOnly, Label: "Winner only", Points: 2},
		{ID: "4", Category: models.CategoryCorrectDraw, Label: "Draw with wrong score", Points: 2},
		{ID: "5", Category: models.CategoryGroupFirst, Label: "Group winner", Points: 3},
		{ID: "6", Category: models.CategoryGroupSecond, Label: "Group runner-up", Points: 3},
		{ID: "7", Category: models.CategoryTopScorer, Label: "Tournament top scorer", Points: 15},
		{ID: "8", Category: models.CategoryChampion, Label: "Champion", Points: 15},
		{ID: "9", Category: models.CategoryViceChampion, Label: "Runner-up", Points: 10},
		{ID: "10", Category: models.CategoryThirdPlace, Label: "Third place", Points: 8},
	}
}

// Points looks up the value of a category.
func (rs RuleSet) Points(category models.ScoringCategory) (int, error) {
	for _, r := range rs {
		if r.Category == category {
			return r.Points, nil
		}
	}
	return 0, fmt.Errorf("%w: no rule for category %q", ErrConfiguration, category)
}

// Validate checks that every match category is defined exactly once with a
// non-negative value.
func (rs RuleSet) Validate() error {
	var errs []error
	for _, category := range models.MatchCategories {
		count := 0
		for _, r := range rs {
			if r.Category != category {
				continue
			}
			count++
			if r.Points < 0 {
				errs = append(errs, fmt.Errorf("%w: rule %q has negative points %d", ErrConfiguration, category, r.Points))
			}
		}
		switch {
		case count == 0:
			errs = append(errs, fmt.Errorf("%w: no rule for category %q", ErrConfiguration, category))
		case count > 1:
			errs = append(errs, fmt.Errorf("%w: category %q defined %d times", ErrConfiguration, category, count))
		}
	}
	return errors.Join(errs...)
}

// MatchPoints prices an outcome. A miss is always zero, multiplier or not.
func MatchPoints(outcome Outcome, rules RuleSet, eligible bool) (int, error) {
	category, ok := outcome.Category()
	if !ok {
		return 0, nil
	}
	base, err := rules.Points(category)
	if err != nil {
		return 0, err
	}
	if eligible {
		return base * Multiplier, nil
	}
	return base, nil
}
