package interfaces

import (
	"context"

	"github.com/inno-lab/innovaid/pkg/domain/model"
)

// SupportLogRepository defines the interface for support log data access
type SupportLogRepository interface {
	// Create appends a support log entry with auto-generated ID
	Create(ctx context.Context, entry *model.SupportLogEntry) (*model.SupportLogEntry, error)

	// ListByInnovation retrieves the support log of an innovation, newest
	// first.
	ListByInnovation(ctx context.Context, innovationID string) ([]*model.SupportLogEntry, error)
}
