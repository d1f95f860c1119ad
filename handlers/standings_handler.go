package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Dosada05/prediction-pool/services"
)

type StandingsHandler struct {
	standingsService services.StandingsService
}

func NewStandingsHandler(ss services.StandingsService) *StandingsHandler {
	return &StandingsHandler{standingsService: ss}
}

// ForUser godoc
// @Summary Group tables and third-place ranking from a participant's predictions
// @Tags standings
// @Produce json
// @Param username path string true "Participant username"
// @Success 200 {object} services.StandingsView
// @Router /standings/{username} [get]
func (h *StandingsHandler) ForUser(w http.ResponseWriter, r *http.Request) {
	username := strings.ToLower(pathParam(r, "username"))
	if username == "" {
		badRequestResponse(w, r, errors.New("username is required"))
		return
	}
	h.respond(w, r, username)
}

// Mine godoc
// @Summary Group tables from the caller's predictions
// @Tags standings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.StandingsView
// @Router /me/standings [get]
func (h *StandingsHandler) Mine(w http.ResponseWriter, r *http.Request) {
	username, ok := currentUsername(w, r)
	if !ok {
		return
	}
	h.respond(w, r, username)
}

func (h *StandingsHandler) respond(w http.ResponseWriter, r *http.Request, username string) {
	view, err := h.standingsService.ForUser(r.Context(), username)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": view}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
