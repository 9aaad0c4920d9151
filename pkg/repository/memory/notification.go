package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type notificationRepository struct {
	store *store
}

// copyNotification creates a deep copy of a notification
func copyNotification(n *model.Notification) *model.Notification {
	copied := *n
	return &copied
}

func recipientKey(notificationID, userID string) string {
	return notificationID + "/" + userID
}

func (r *notificationRepository) Create(ctx context.Context, n *model.Notification, recipientIDs []string) (*model.Notification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now().UTC()
	created := copyNotification(n)
	if created.ID == "" {
		created.ID = uuid.NewString()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = now
	}

	r.store.notifications[created.ID] = created
	for _, userID := range recipientIDs {
		r.store.recipients[recipientKey(created.ID, userID)] = &model.NotificationRecipient{
			NotificationID: created.ID,
			UserID:         userID,
			CreatedAt:      now,
		}
	}

	return copyNotification(created), nil
}

func (r *notificationRepository) ListUnreadByUser(ctx context.Context, userID string, filter model.NotificationFilter) ([]*model.Notification, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	notifications := []*model.Notification{}
	for _, rec := range r.store.recipients {
		if rec.UserID != userID || rec.IsRead() {
			continue
		}

		n, exists := r.store.notifications[rec.NotificationID]
		if !exists {
			continue
		}
		if filter.InnovationID != "" && n.InnovationID != filter.InnovationID {
			continue
		}
		if filter.ContextType != "" && n.ContextType != filter.ContextType {
			continue
		}
		if filter.ContextID != "" && n.ContextID != filter.ContextID {
			continue
		}

		notifications = append(notifications, copyNotification(n))
	}

	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})

	return notifications, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, notificationID, userID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rec, exists := r.store.recipients[recipientKey(notificationID, userID)]
	if !exists {
		return goerr.Wrap(ErrNotFound, "notification recipient not found",
			goerr.V("notificationID", notificationID),
			goerr.V("userID", userID))
	}

	if rec.ReadAt == nil {
		now := time.Now().UTC()
		rec.ReadAt = &now
	}

	return nil
}
