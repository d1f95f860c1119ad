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

func TestNotificationHandler_Send(t *testing.T) {
	svc := &fakeNotificationService{}
	h := NewNotificationHandler(svc)

	body := `{"title":"Pagamento","message":"Último dia para pagar","type":"alert"}`
	rec := serve(t, http.MethodPost, "/admin/notifications", "/admin/notifications", body, "root", h.Send)

	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, services.NotifyInput{Title: "Pagamento", Message: "Último dia para pagar", Type: models.NotificationAlert}, svc.input)

	n := decodeBody(t, rec)["notification"].(map[string]interface{})
	assert.Equal(t, "n1", n["id"])
	assert.Equal(t, "alert", n["type"])
}

func TestNotificationHandler_SendInvalid(t *testing.T) {
	svc := &fakeNotificationService{err: fmt.Errorf("%w: title and message are required", services.ErrValidationFailed)}
	h := NewNotificationHandler(svc)

	rec := serve(t, http.MethodPost, "/admin/notifications", "/admin/notifications", `{"title":""}`, "root", h.Send)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
