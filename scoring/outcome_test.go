package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/prediction-pool/models"
)

func TestClassifyScores(t *testing.T) {
	tests := []struct {
		name     string
		pred     models.Score
		official models.Score
		want     Outcome
	}{
		{name: "exact win", pred: models.Score{A: 2, B: 1}, official: models.Score{A: 2, B: 1}, want: OutcomeExact},
		{name: "exact draw", pred: models.Score{A: 1, B: 1}, official: models.Score{A: 1, B: 1}, want: OutcomeExact},
		{name: "winner and winning side score", pred: models.Score{A: 2, B: 0}, official: models.Score{A: 2, B: 1}, want: OutcomeWinnerPlusSubscore},
		{name: "winner and losing side score", pred: models.Score{A: 3, B: 1}, official: models.Score{A: 2, B: 1}, want: OutcomeWinnerPlusSubscore},
		{name: "away winner and score", pred: models.Score{A: 1, B: 3}, official: models.Score{A: 0, B: 3}, want: OutcomeWinnerPlusSubscore},
		{name: "winner only", pred: models.Score{A: 1, B: 0}, official: models.Score{A: 2, B: 1}, want: OutcomeWinnerOnly},
		{name: "draw with wrong score", pred: models.Score{A: 1, B: 1}, official: models.Score{A: 2, B: 2}, want: OutcomeCorrectDraw},
		{name: "wrong winner", pred: models.Score{A: 1, B: 0}, official: models.Score{A: 0, B: 1}, want: OutcomeMiss},
		{name: "predicted draw, decisive result", pred: models.Score{A: 1, B: 1}, official: models.Score{A: 1, B: 0}, want: OutcomeMiss},
		{name: "predicted win, drawn result", pred: models.Score{A: 2, B: 2}, official: models.Score{A: 3, B: 2}, want: OutcomeMiss},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyScores(tt.pred, tt.official))
		})
	}
}

func TestClassifyScores_Properties(t *testing.T) {
	const maxGoals = 5
	for pa := 0; pa <= maxGoals; pa++ {
		for pb := 0; pb <= maxGoals; pb++ {
			for oa := 0; oa <= maxGoals; oa++ {
				for ob := 0; ob <= maxGoals; ob++ {
					pred := models.Score{A: pa, B: pb}
					official := models.Score{A: oa, B: ob}
					got := ClassifyScores(pred, official)

					if (got == OutcomeExact) != (pa == oa && pb == ob) {
						t.Fatalf("%d-%d vs %d-%d: exact iff equal violated, got %s", pa, pb, oa, ob, got)
					}
					swapped := ClassifyScores(models.Score{A: pb, B: pa}, models.Score{A: ob, B: oa})
					if swapped != got {
						t.Fatalf("%d-%d vs %d-%d: swapping sides changed %s to %s", pa, pb, oa, ob, got, swapped)
					}
					if again := ClassifyScores(pred, official); again != got {
						t.Fatalf("%d-%d vs %d-%d: not deterministic", pa, pb, oa, ob)
					}
				}
			}
		}
	}
}

func TestClassify_InvalidInput(t *testing.T) {
	two := 2
	tests := []struct {
		name     string
		pred     models.PartialScore
		official models.PartialScore
	}{
		{name: "prediction missing B", pred: models.PartialScore{A: &two}, official: models.NewPartialScore(1, 0)},
		{name: "prediction empty", pred: models.PartialScore{}, official: models.NewPartialScore(1, 0)},
		{name: "official missing A", pred: models.NewPartialScore(1, 0), official: models.PartialScore{B: &two}},
		{name: "negative prediction", pred: models.NewPartialScore(-1, 0), official: models.NewPartialScore(1, 0)},
		{name: "negative official", pred: models.NewPartialScore(1, 0), official: models.NewPartialScore(1, -3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify(tt.pred, tt.official)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestClassify_Complete(t *testing.T) {
	got, err := Classify(models.NewPartialScore(1, 0), models.NewPartialScore(2, 1))
	require.NoError(t, err)
	assert.Equal(t, OutcomeWinnerOnly, got)
}

func TestOutcome_Category(t *testing.T) {
	_, ok := OutcomeMiss.Category()
	assert.False(t, ok)

	c, ok := OutcomeCorrectDraw.Category()
	assert.True(t, ok)
	assert.Equal(t, models.CategoryCorrectDraw, c)

	text, err := OutcomeWinnerPlusSubscore.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "winner_plus_subscore", string(text))
}
