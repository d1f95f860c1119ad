package standings

import (
	"cmp"
	"slices"

	"github.com/Dosada05/prediction-pool/models"
)

// ThirdPlaceIndex is the zero-based rank of a group's third-placed team.
const ThirdPlaceIndex = 2

// RankThirdPlaces collects the third-placed row of every group with at least
// three teams and ranks them by points, goal difference and goals for.
// Head-to-head does not apply across groups. Rows still level keep group
// order. How many qualify is up to the caller.
func RankThirdPlaces(tables []models.GroupTable) []models.GroupRow {
	thirds := make([]models.GroupRow, 0, len(tables))
	for _, t := range tables {
		if len(t.Rows) <= ThirdPlaceIndex {
			continue
		}
		thirds = append(thirds, t.Rows[ThirdPlaceIndex])
	}

	slices.SortStableFunc(thirds, func(a, b models.GroupRow) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		if c := cmp.Compare(b.GoalDifference, a.GoalDifference); c != 0 {
			return c
		}
		return cmp.Compare(b.GoalsFor, a.GoalsFor)
	})
	return thirds
}
