package handlers

import (
	"net/http"

	"github.com/Dosada05/prediction-pool/services"
)

type NotificationHandler struct {
	notificationService services.NotificationService
}

func NewNotificationHandler(ns services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: ns}
}

// Send godoc
// @Summary Push an announcement to every connected client
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body services.NotifyInput true "Notification"
// @Success 202 {object} models.Notification
// @Failure 400 {object} map[string]interface{}
// @Router /admin/notifications [post]
func (h *NotificationHandler) Send(w http.ResponseWriter, r *http.Request) {
	var input services.NotifyInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	notification, err := h.notificationService.Notify(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusAccepted, jsonResponse{"notification": notification}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
