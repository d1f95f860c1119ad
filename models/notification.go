package models

import "time"

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationAlert   NotificationType = "alert"
	NotificationSuccess NotificationType = "success"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotificationInfo, NotificationAlert, NotificationSuccess:
		return true
	}
	return false
}

// Notification is an administrator announcement pushed to connected clients.
type Notification struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Type    NotificationType `json:"type"`
	SentAt  time.Time        `json:"sent_at"`
}
