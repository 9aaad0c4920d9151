package interfaces

import (
	"context"

	"github.com/inno-lab/innovaid/pkg/domain/model"
)

// NotificationRepository defines the interface for notification data access
type NotificationRepository interface {
	// Create persists a notification header plus one recipient row per
	// user ID. An empty recipient list still persists the header.
	Create(ctx context.Context, n *model.Notification, recipientIDs []string) (*model.Notification, error)

	// ListUnreadByUser retrieves the notifications the user has not
	// dismissed yet, newest first, narrowed by the filter.
	ListUnreadByUser(ctx context.Context, userID string, filter model.NotificationFilter) ([]*model.Notification, error)

	// MarkRead sets the read timestamp on one recipient row. Marking an
	// already-read row is a no-op.
	MarkRead(ctx context.Context, notificationID, userID string) error
}
