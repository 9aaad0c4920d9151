package interfaces

import (
	"context"

	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/inno-lab/innovaid/pkg/domain/types"
)

// ActionRepository defines the interface for Action data access. Action
// management is owned elsewhere; the workflow only lists open actions and
// cancels them through the transaction.
type ActionRepository interface {
	// Get retrieves an action by ID
	Get(ctx context.Context, id string) (*model.Action, error)

	// ListBySupport retrieves all actions of a support record, optionally
	// restricted to the given statuses.
	ListBySupport(ctx context.Context, supportID string, statuses ...types.ActionStatus) ([]*model.Action, error)

	// Put saves an action (upsert)
	Put(ctx context.Context, action *model.Action) error
}
