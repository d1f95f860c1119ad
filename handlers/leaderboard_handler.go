package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Dosada05/prediction-pool/services"
)

type LeaderboardHandler struct {
	leaderboardService services.LeaderboardService
	exportService      services.ExportService
}

func NewLeaderboardHandler(ls services.LeaderboardService, es services.ExportService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: ls, exportService: es}
}

// Get godoc
// @Summary Current leaderboard
// @Tags leaderboard
// @Produce json
// @Success 200 {array} models.LeaderboardEntry
// @Router /leaderboard [get]
func (h *LeaderboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	entries, err := h.leaderboardService.Get(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"leaderboard": entries}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Prizes godoc
// @Summary Prize pot and its split
// @Tags leaderboard
// @Produce json
// @Success 200 {object} scoring.Prizes
// @Router /leaderboard/prizes [get]
func (h *LeaderboardHandler) Prizes(w http.ResponseWriter, r *http.Request) {
	prizes, err := h.leaderboardService.Prizes(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"prizes": prizes}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// History godoc
// @Summary Position and points of a participant at every recorded round
// @Tags leaderboard
// @Produce json
// @Param username path string true "Participant username"
// @Success 200 {array} models.HistoryEntry
// @Failure 404 {object} map[string]interface{}
// @Router /leaderboard/history/{username} [get]
func (h *LeaderboardHandler) History(w http.ResponseWriter, r *http.Request) {
	username := strings.ToLower(pathParam(r, "username"))
	if username == "" {
		badRequestResponse(w, r, errors.New("username is required"))
		return
	}

	history, err := h.leaderboardService.History(r.Context(), username)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"history": history}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Breakdown godoc
// @Summary Per-participant results for one match
// @Tags matches
// @Produce json
// @Param matchID path string true "Match ID"
// @Success 200 {object} scoring.MatchBreakdown
// @Router /matches/{matchID}/breakdown [get]
func (h *LeaderboardHandler) Breakdown(w http.ResponseWriter, r *http.Request) {
	matchID := pathParam(r, "matchID")
	if matchID == "" {
		badRequestResponse(w, r, errors.New("match id is required"))
		return
	}

	breakdown, err := h.leaderboardService.Breakdown(r.Context(), matchID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"breakdown": breakdown}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Export godoc
// @Summary Upload the leaderboard as CSV to object storage
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 201 {object} storage.UploadResult
// @Failure 503 {object} map[string]interface{}
// @Router /admin/leaderboard/export [post]
func (h *LeaderboardHandler) Export(w http.ResponseWriter, r *http.Request) {
	result, err := h.exportService.ExportLeaderboard(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"export": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
