package handlers

import (
	"errors"
	"net/http"

	"github.com/Dosada05/prediction-pool/models"
	"github.com/Dosada05/prediction-pool/services"
)

type PredictionHandler struct {
	predictionService services.PredictionService
}

func NewPredictionHandler(ps services.PredictionService) *PredictionHandler {
	return &PredictionHandler{predictionService: ps}
}

// ListMine godoc
// @Summary The caller's predictions keyed by match id
// @Tags predictions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]models.PartialScore
// @Router /me/predictions [get]
func (h *PredictionHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	username, ok := currentUsername(w, r)
	if !ok {
		return
	}

	predictions, err := h.predictionService.ListMine(r.Context(), username)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"predictions": predictions}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Submit godoc
// @Summary Create or change the caller's prediction for a match
// @Description Either side may be null while the prediction is incomplete. Rejected from kickoff on, or once the match has an official result.
// @Tags predictions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param matchID path string true "Match ID"
// @Param input body models.PartialScore true "Predicted score"
// @Success 200 {object} models.PartialScore
// @Failure 409 {object} map[string]interface{}
// @Router /me/predictions/{matchID} [put]
func (h *PredictionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	username, ok := currentUsername(w, r)
	if !ok {
		return
	}

	matchID := pathParam(r, "matchID")
	if matchID == "" {
		badRequestResponse(w, r, errors.New("match id is required"))
		return
	}

	var input models.PartialScore
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.predictionService.Submit(r.Context(), username, matchID, input); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"match_id": matchID, "prediction": input}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
