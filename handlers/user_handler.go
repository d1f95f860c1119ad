package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Dosada05/prediction-pool/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(us services.UserService) *UserHandler {
	return &UserHandler{userService: us}
}

type setPaidRequest struct {
	Paid *bool `json:"paid"`
}

// List godoc
// @Summary All registered users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.User
// @Router /admin/users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"users": users}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Me godoc
// @Summary The caller's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Router /me [get]
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	username, ok := currentUsername(w, r)
	if !ok {
		return
	}

	user, err := h.userService.GetByUsername(r.Context(), username)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"user": user}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SetPaid godoc
// @Summary Mark a participant as paid or unpaid
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Param input body setPaidRequest true "Paid flag"
// @Success 200 {object} models.User
// @Router /admin/users/{username}/paid [patch]
func (h *UserHandler) SetPaid(w http.ResponseWriter, r *http.Request) {
	username := strings.ToLower(pathParam(r, "username"))
	if username == "" {
		badRequestResponse(w, r, errors.New("username is required"))
		return
	}

	var input setPaidRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Paid == nil {
		badRequestResponse(w, r, errors.New("paid is required"))
		return
	}

	user, err := h.userService.SetPaid(r.Context(), username, *input.Paid)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"user": user}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
