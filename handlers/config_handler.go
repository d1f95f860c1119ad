package handlers

import (
	"net/http"

	"github.com/Dosada05/prediction-pool/models"
	"github.com/Dosada05/prediction-pool/services"
)

type ConfigHandler struct {
	configService services.ConfigService
}

func NewConfigHandler(cs services.ConfigService) *ConfigHandler {
	return &ConfigHandler{configService: cs}
}

type updateRulesRequest struct {
	Rules []models.ScoringRule `json:"scoring_rules"`
}

// Get godoc
// @Summary Scoring rules and pool settings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.PoolConfig
// @Router /admin/config [get]
func (h *ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.configService.Get(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	h.respond(w, r, cfg)
}

// UpdateRules godoc
// @Summary Replace the scoring rules
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body updateRulesRequest true "Rules, one per category"
// @Success 200 {object} models.PoolConfig
// @Router /admin/config/rules [put]
func (h *ConfigHandler) UpdateRules(w http.ResponseWriter, r *http.Request) {
	var input updateRulesRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	cfg, err := h.configService.UpdateRules(r.Context(), input.Rules)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	h.respond(w, r, cfg)
}

// UpdateSettings godoc
// @Summary Replace ticket price, prize split and multiplier policy
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body models.PoolSettings true "Settings"
// @Success 200 {object} models.PoolConfig
// @Router /admin/config/settings [put]
func (h *ConfigHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var input models.PoolSettings
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	cfg, err := h.configService.UpdateSettings(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	h.respond(w, r, cfg)
}

func (h *ConfigHandler) respond(w http.ResponseWriter, r *http.Request, cfg *models.PoolConfig) {
	if err := writeJSON(w, http.StatusOK, jsonResponse{"config": cfg}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
