package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/prediction-pool/models"
	"github.com/Dosada05/prediction-pool/services"
)

func TestExtraBetHandler_Mine(t *testing.T) {
	svc := &fakeExtraBetService{bets: models.ExtraBets{Champion: "Brasil", FirstScorer1: "10"}}
	h := NewExtraBetHandler(svc)

	rec := serve(t, http.MethodGet, "/me/extra-bets", "/me/extra-bets", "", "ana", h.Mine)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ana", svc.username)

	bets := decodeBody(t, rec)["extra_bets"].(map[string]interface{})
	assert.Equal(t, "Brasil", bets["champion"])
	assert.Equal(t, "10", bets["first_scorer_1"])
	assert.Equal(t, "", bets["vice_champion"])
}

func TestExtraBetHandler_Save(t *testing.T) {
	svc := &fakeExtraBetService{}
	h := NewExtraBetHandler(svc)

	body := `{"champion":"Brasil","vice_champion":"Marrocos","third_place":"Escócia","top_scorer":"Brasil - Camisa 9"}`
	rec := serve(t, http.MethodPut, "/me/extra-bets", "/me/extra-bets", body, "ana", h.Save)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ana", svc.username)
	assert.Equal(t, models.ExtraBets{Champion: "Brasil", ViceChampion: "Marrocos", ThirdPlace: "Escócia", TopScorer: "Brasil - Camisa 9"}, svc.saved)
}

func TestExtraBetHandler_SaveErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		body string
		want int
	}{
		{name: "repeated team", err: fmt.Errorf("%w: champion and third_place must be different teams", services.ErrValidationFailed), body: `{"champion":"Brasil","third_place":"Brasil"}`, want: http.StatusBadRequest},
		{name: "closed", err: services.ErrExtraBetsLocked, body: `{"champion":"Brasil"}`, want: http.StatusConflict},
		{name: "unknown field", body: `{"golden_ball":"Brasil"}`, want: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewExtraBetHandler(&fakeExtraBetService{err: tt.err})

			rec := serve(t, http.MethodPut, "/me/extra-bets", "/me/extra-bets", tt.body, "ana", h.Save)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestExtraBetHandler_RequiresAuthentication(t *testing.T) {
	svc := &fakeExtraBetService{}
	h := NewExtraBetHandler(svc)

	rec := serve(t, http.MethodGet, "/me/extra-bets", "/me/extra-bets", "", "", h.Mine)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, svc.username)
}
