package handlers

import (
	"net/http"

	"github.com/Dosada05/prediction-pool/models"
	"github.com/Dosada05/prediction-pool/services"
)

type ExtraBetHandler struct {
	extraBetService services.ExtraBetService
}

func NewExtraBetHandler(es services.ExtraBetService) *ExtraBetHandler {
	return &ExtraBetHandler{extraBetService: es}
}

// Mine godoc
// @Summary The caller's tournament-long bets
// @Tags predictions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ExtraBets
// @Router /me/extra-bets [get]
func (h *ExtraBetHandler) Mine(w http.ResponseWriter, r *http.Request) {
	username, ok := currentUsername(w, r)
	if !ok {
		return
	}

	bets, err := h.extraBetService.Get(r.Context(), username)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"extra_bets": bets}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Save godoc
// @Summary Replace the caller's tournament-long bets
// @Description Champion, runner-up and third place must be different teams. Empty fields clear the pick. Closed from the first kickoff on.
// @Tags predictions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body models.ExtraBets true "Extra bets"
// @Success 200 {object} models.ExtraBets
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /me/extra-bets [put]
func (h *ExtraBetHandler) Save(w http.ResponseWriter, r *http.Request) {
	username, ok := currentUsername(w, r)
	if !ok {
		return
	}

	var input models.ExtraBets
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	bets, err := h.extraBetService.Save(r.Context(), username, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"extra_bets": bets}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
