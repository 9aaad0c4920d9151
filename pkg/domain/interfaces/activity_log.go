package interfaces

import (
	"context"

	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/inno-lab/innovaid/pkg/domain/types"
)

// ActivityLogRepository defines read access to activity log entries.
// Entries are written only through the workflow transaction and are
// immutable afterwards.
type ActivityLogRepository interface {
	// ListByInnovation retrieves the activity log of an innovation, newest
	// first. An empty category means no category filter.
	ListByInnovation(ctx context.Context, innovationID string, category types.ActivityCategory) ([]*model.ActivityLog, error)
}
