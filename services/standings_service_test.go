package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/prediction-pool/models"
)

func standingsFixture() *poolFixture {
	f := newPoolFixture()
	f.matches.matches = []models.Match{
		{ID: "a1", TeamA: "A1", TeamB: "A2", Group: "Grupo A"},
		{ID: "a2", TeamA: "A3", TeamB: "A1", Group: "Grupo A"},
		{ID: "a3", TeamA: "A2", TeamB: "A3", Group: "Grupo A"},
		{ID: "b1", TeamA: "B1", TeamB: "B2", Group: "Grupo B"},
		{ID: "b2", TeamA: "B3", TeamB: "B1", Group: "Grupo B"},
		{ID: "b3", TeamA: "B2", TeamB: "B3", Group: "Grupo B"},
		{ID: "f", TeamA: "A1", TeamB: "B1", Group: "FINAL"},
	}
	f.predictions.preds = models.Predictions{
		"ana": {
			"a1": models.NewPartialScore(1, 0),
			"a2": models.NewPartialScore(0, 2),
			"a3": models.NewPartialScore(1, 1),
			"b1": models.NewPartialScore(0, 0),
			"b2": models.NewPartialScore(0, 0),
			"b3": models.NewPartialScore(0, 0),
		},
	}
	return f
}

func TestStandingsService_ForUser(t *testing.T) {
	f := standingsFixture()
	svc := NewStandingsService(f.users, f.matches, f.predictions, 1, discardLogger())

	view, err := svc.ForUser(context.Background(), "ana")
	require.NoError(t, err)
	assert.Equal(t, "ana", view.Username)
	require.Len(t, view.Groups, 2)
	assert.Equal(t, "A", view.Groups[0].Group)
	assert.Equal(t, "A1", view.Groups[0].Rows[0].TeamName)
	assert.Equal(t, 6, view.Groups[0].Rows[0].Points)

	// A3 has 1 point, B3 has 2.
	require.Len(t, view.ThirdPlaces, 2)
	assert.Equal(t, "B3", view.ThirdPlaces[0].TeamName)
	assert.Equal(t, 1, view.ThirdPlaces[0].Rank)
	assert.True(t, view.ThirdPlaces[0].Qualified)
	assert.Equal(t, "A3", view.ThirdPlaces[1].TeamName)
	assert.False(t, view.ThirdPlaces[1].Qualified)
}

func TestStandingsService_NoPredictions(t *testing.T) {
	f := standingsFixture()
	svc := NewStandingsService(f.users, f.matches, f.predictions, 8, discardLogger())

	view, err := svc.ForUser(context.Background(), "bruno")
	require.NoError(t, err)
	require.Len(t, view.Groups, 2)
	for _, g := range view.Groups {
		assert.Len(t, g.Rows, 3)
		for _, r := range g.Rows {
			assert.Zero(t, r.Played)
		}
	}
}

func TestStandingsService_UnknownUser(t *testing.T) {
	f := standingsFixture()
	_, err := NewStandingsService(f.users, f.matches, f.predictions, 8, discardLogger()).ForUser(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrUserNotFound)
}
