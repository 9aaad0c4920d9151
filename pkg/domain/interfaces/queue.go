package interfaces

import (
	"context"

	"github.com/inno-lab/innovaid/pkg/domain/model"
)

// QueueClient enqueues fire-and-forget delivery events. Callers treat
// failures as log-and-continue; an enqueue error never propagates to the
// workflow caller.
type QueueClient interface {
	// Enqueue hands one message to the delivery backend
	Enqueue(ctx context.Context, msg *model.QueueMessage) error
}

// NameResolver resolves a user ID to a display name for read views. An
// unknown ID resolves to an empty string, not an error.
type NameResolver interface {
	ResolveName(ctx context.Context, userID string) string
}

// DirectorySource lists users from the external identity provider, used by
// the refresh worker to rebuild the local directory cache.
type DirectorySource interface {
	ListUsers(ctx context.Context) ([]*model.User, error)
}
