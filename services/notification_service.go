package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Dosada05/prediction-pool/live"
	"github.com/Dosada05/prediction-pool/models"
)

const (
	maxNotificationTitle   = 120
	maxNotificationMessage = 1000
)

type NotifyInput struct {
	Title   string                  `json:"title"`
	Message string                  `json:"message"`
	Type    models.NotificationType `json:"type"`
}

type NotificationService interface {
	Notify(ctx context.Context, input NotifyInput) (*models.Notification, error)
}

type notificationService struct {
	broadcaster Broadcaster
	now         func() time.Time
	logger      *slog.Logger
}

func NewNotificationService(broadcaster Broadcaster, logger *slog.Logger) NotificationService {
	return &notificationService{broadcaster: broadcasterOrNop(broadcaster), now: time.Now, logger: logger}
}

// Notify pushes an announcement to every connected client. Nothing is stored;
// clients that are offline miss it.
func (s *notificationService) Notify(ctx context.Context, input NotifyInput) (*models.Notification, error) {
	n := &models.Notification{
		Title:   trimmed(input.Title),
		Message: trimmed(input.Message),
		Type:    input.Type,
	}
	if n.Type == "" {
		n.Type = models.NotificationInfo
	}
	switch {
	case n.Title == "" || n.Message == "":
		return nil, validationError("title and message are required")
	case len([]rune(n.Title)) > maxNotificationTitle:
		return nil, validationError("title must be at most %d characters", maxNotificationTitle)
	case len([]rune(n.Message)) > maxNotificationMessage:
		return nil, validationError("message must be at most %d characters", maxNotificationMessage)
	case !n.Type.Valid():
		return nil, validationError("unknown notification type %q", n.Type)
	}
	n.ID = uuid.New().String()
	n.SentAt = s.now().UTC()

	s.broadcaster.Broadcast(live.MessageNotification, n)
	s.logger.InfoContext(ctx, "notification sent", slog.String("id", n.ID), slog.String("type", string(n.Type)))
	return n, nil
}
