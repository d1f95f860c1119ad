package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/prediction-pool/live"
	"github.com/Dosada05/prediction-pool/models"
)

func TestNotificationService_Notify(t *testing.T) {
	b := &fakeBroadcaster{}
	svc := NewNotificationService(b, discardLogger()).(*notificationService)
	sentAt := time.Date(2026, 6, 11, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return sentAt }

	n, err := svc.Notify(context.Background(), NotifyInput{Title: " Pagamento ", Message: "Último dia para pagar o bolão", Type: models.NotificationAlert})
	require.NoError(t, err)

	assert.Equal(t, "Pagamento", n.Title)
	assert.Equal(t, models.NotificationAlert, n.Type)
	assert.Equal(t, sentAt, n.SentAt)
	_, err = uuid.Parse(n.ID)
	assert.NoError(t, err)

	require.Len(t, b.messages, 1)
	assert.Equal(t, live.MessageNotification, b.messages[0].Type)
	assert.Equal(t, n, b.messages[0].Payload)
}

func TestNotificationService_DefaultsToInfo(t *testing.T) {
	n, err := NewNotificationService(nil, discardLogger()).Notify(context.Background(), NotifyInput{Title: "Rodada", Message: "Resultados atualizados"})
	require.NoError(t, err)
	assert.Equal(t, models.NotificationInfo, n.Type)
}

func TestNotificationService_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input NotifyInput
	}{
		{name: "blank title", input: NotifyInput{Title: "  ", Message: "x"}},
		{name: "missing message", input: NotifyInput{Title: "x"}},
		{name: "unknown type", input: NotifyInput{Title: "x", Message: "y", Type: "urgent"}},
		{name: "title too long", input: NotifyInput{Title: strings.Repeat("a", maxNotificationTitle+1), Message: "y"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &fakeBroadcaster{}
			_, err := NewNotificationService(b, discardLogger()).Notify(context.Background(), tt.input)
			require.ErrorIs(t, err, ErrValidationFailed)
			assert.Empty(t, b.messages)
		})
	}
}
