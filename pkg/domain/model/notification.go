package model

import (
	"time"

	"github.com/inno-lab/innovaid/pkg/domain/types"
)

// Notification is one logical in-app event. Recipients are tracked as
// separate rows so each target user carries its own read state.
type Notification struct {
	ID           string
	InnovationID string
	ContextType  types.NotificationContextType
	ContextID    string // The entity the event concerns
	Message      string
	CreatedBy    string
	CreatedAt    time.Time
}

// NotificationRecipient is one target user of a notification. ReadAt stays
// nil until the user dismisses the notification; rows are never deleted.
type NotificationRecipient struct {
	NotificationID string
	UserID         string
	ReadAt         *time.Time
	CreatedAt      time.Time
}

// IsRead reports whether the recipient has dismissed the notification
func (r *NotificationRecipient) IsRead() bool {
	return r.ReadAt != nil
}

// NotificationFilter narrows unread-notification queries. Zero values mean
// no constraint on that dimension.
type NotificationFilter struct {
	InnovationID string
	ContextType  types.NotificationContextType
	ContextID    string
}
