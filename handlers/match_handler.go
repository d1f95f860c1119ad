package handlers

import (
	"errors"
	"net/http"

	"github.com/Dosada05/prediction-pool/models"
	"github.com/Dosada05/prediction-pool/services"
)

type MatchHandler struct {
	matchService services.MatchService
}

func NewMatchHandler(ms services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: ms}
}

type setResultRequest struct {
	ScoreA *int `json:"score_a"`
	ScoreB *int `json:"score_b"`
}

// List godoc
// @Summary All matches with official results where played
// @Tags matches
// @Produce json
// @Success 200 {array} models.Match
// @Router /matches [get]
func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	matches, err := h.matchService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Create godoc
// @Summary Add a match to the schedule
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body services.CreateMatchInput true "Match"
// @Success 201 {object} models.Match
// @Router /admin/matches [post]
func (h *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreateMatchInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SetResult godoc
// @Summary Record the official result of a match
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param matchID path string true "Match ID"
// @Param input body setResultRequest true "Final score"
// @Success 200 {object} models.Match
// @Router /admin/matches/{matchID}/result [put]
func (h *MatchHandler) SetResult(w http.ResponseWriter, r *http.Request) {
	matchID := pathParam(r, "matchID")
	if matchID == "" {
		badRequestResponse(w, r, errors.New("match id is required"))
		return
	}

	var input setResultRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.ScoreA == nil || input.ScoreB == nil {
		badRequestResponse(w, r, errors.New("score_a and score_b are required"))
		return
	}

	match, err := h.matchService.SetResult(r.Context(), matchID, models.Score{A: *input.ScoreA, B: *input.ScoreB})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ClearResult godoc
// @Summary Remove the official result of a match
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param matchID path string true "Match ID"
// @Success 200 {object} models.Match
// @Router /admin/matches/{matchID}/result [delete]
func (h *MatchHandler) ClearResult(w http.ResponseWriter, r *http.Request) {
	matchID := pathParam(r, "matchID")
	if matchID == "" {
		badRequestResponse(w, r, errors.New("match id is required"))
		return
	}

	match, err := h.matchService.ClearResult(r.Context(), matchID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
