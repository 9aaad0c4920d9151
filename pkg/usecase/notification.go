package usecase

import (
	"context"

	"github.com/inno-lab/innovaid/pkg/domain/interfaces"
	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/inno-lab/innovaid/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type NotificationUseCase struct {
	repo interfaces.Repository
}

func NewNotificationUseCase(repo interfaces.Repository) *NotificationUseCase {
	return &NotificationUseCase{
		repo: repo,
	}
}

// Create resolves the audience and persists one notification with one
// recipient row per resolved user. A resolution yielding zero recipients
// still persists the header; that is valid, not an error.
func (uc *NotificationUseCase) Create(ctx context.Context, actor *model.Actor, audience types.Audience, innovationID string, contextType types.NotificationContextType, contextID, message string, explicitTargets []string) (*model.Notification, error) {
	if actor == nil || innovationID == "" || contextID == "" {
		return nil, goerr.Wrap(ErrInvalidParams, "actor, innovation and context are required")
	}
	if !audience.IsValid() {
		return nil, goerr.Wrap(ErrInvalidParams, "invalid audience", goerr.V("audience", audience))
	}
	if !contextType.IsValid() {
		return nil, goerr.Wrap(ErrInvalidParams, "invalid context type", goerr.V("contextType", contextType))
	}

	recipients, err := resolveAudience(ctx, uc.repo, actor, audience, innovationID, explicitTargets)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve audience",
			goerr.V("audience", audience),
			goerr.V(InnovationIDKey, innovationID))
	}

	created, err := uc.repo.Notification().Create(ctx, &model.Notification{
		InnovationID: innovationID,
		ContextType:  contextType,
		ContextID:    contextID,
		Message:      message,
		CreatedBy:    actor.ID,
	}, recipients)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create notification",
			goerr.V(InnovationIDKey, innovationID),
			goerr.V(ActorIDKey, actor.ID))
	}

	return created, nil
}

// GetUnread returns the actor's unread notifications, optionally narrowed
// by innovation and context. Calling it twice without an intervening
// MarkRead returns the same set.
func (uc *NotificationUseCase) GetUnread(ctx context.Context, actor *model.Actor, filter model.NotificationFilter) ([]*model.Notification, error) {
	if actor == nil {
		return nil, goerr.Wrap(ErrInvalidParams, "actor is required")
	}

	notifications, err := uc.repo.Notification().ListUnreadByUser(ctx, actor.ID, filter)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list unread notifications", goerr.V(ActorIDKey, actor.ID))
	}

	return notifications, nil
}

// MarkRead dismisses one notification for the acting user
func (uc *NotificationUseCase) MarkRead(ctx context.Context, actor *model.Actor, notificationID string) error {
	if actor == nil || notificationID == "" {
		return goerr.Wrap(ErrInvalidParams, "actor and notification are required")
	}

	if err := uc.repo.Notification().MarkRead(ctx, notificationID, actor.ID); err != nil {
		return goerr.Wrap(err, "failed to mark notification read",
			goerr.V("notificationID", notificationID),
			goerr.V(ActorIDKey, actor.ID))
	}

	return nil
}
