package standings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/prediction-pool/models"
)

func table(group string, thirds models.GroupRow, size int) models.GroupTable {
	rows := make([]models.GroupRow, size)
	for i := range rows {
		rows[i] = models.GroupRow{TeamName: group + "-filler", Group: group, Points: 9 - i}
	}
	if size > ThirdPlaceIndex {
		thirds.Group = group
		rows[ThirdPlaceIndex] = thirds
	}
	return models.GroupTable{Group: group, Rows: rows}
}

func TestRankThirdPlaces(t *testing.T) {
	tables := []models.GroupTable{
		table("A", models.GroupRow{TeamName: "A3", Points: 4, GoalDifference: 0, GoalsFor: 3}, 4),
		table("B", models.GroupRow{TeamName: "B3", Points: 4, GoalDifference: 1, GoalsFor: 2}, 4),
		table("C", models.GroupRow{TeamName: "C3", Points: 3, GoalDifference: 5, GoalsFor: 7}, 4),
		table("D", models.GroupRow{TeamName: "D3", Points: 4, GoalDifference: 0, GoalsFor: 5}, 4),
		table("E", models.GroupRow{}, 2),
		table("F", models.GroupRow{TeamName: "F3", Points: 4, GoalDifference: 0, GoalsFor: 3}, 3),
	}

	got := RankThirdPlaces(tables)
	require.Len(t, got, 5)
	assert.Equal(t, []string{"B3", "D3", "A3", "F3", "C3"}, teamOrder(got))
	assert.Equal(t, "B", got[0].Group)
}

func TestRankThirdPlaces_FromSimulatedTables(t *testing.T) {
	matches := append(groupC(),
		fixture("a1", "Q", "R", "Grupo A"),
		fixture("a2", "S", "Q", "Grupo A"),
		fixture("a3", "R", "S", "Grupo A"),
	)
	bets := map[string]models.PartialScore{
		"c1": bet(2, 0), "c2": bet(1, 1), "c3": bet(3, 0),
		"c4": bet(0, 2), "c5": bet(1, 1), "c6": bet(2, 1),
		"a1": bet(1, 0), "a2": bet(0, 2), "a3": bet(1, 0),
	}

	tables := BuildGroupTables(matches, bets)
	thirds := RankThirdPlaces(tables)
	require.Len(t, thirds, 2)
	// Escócia has 2 points, S has none.
	assert.Equal(t, []string{"Escócia", "S"}, teamOrder(thirds))
}

func TestRankThirdPlaces_Empty(t *testing.T) {
	assert.Empty(t, RankThirdPlaces(nil))
}
