package interfaces

import (
	"context"

	"github.com/inno-lab/innovaid/pkg/domain/model"
)

// Repository defines the interface for data persistence
type Repository interface {
	Innovation() InnovationRepository
	Assessment() AssessmentRepository
	Support() SupportRepository
	Action() ActionRepository
	Comment() CommentRepository
	ActivityLog() ActivityLogRepository
	SupportLog() SupportLogRepository
	Notification() NotificationRepository
	User() UserRepository
	Organisation() OrganisationRepository

	// Transaction runs fn and atomically applies every write staged on the
	// Tx when fn returns nil. If fn returns an error nothing is applied.
	// Version checks on staged support records happen at commit time;
	// a stale version aborts the whole transaction.
	Transaction(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error

	// Close releases underlying resources
	Close() error
}

// Tx stages the writes belonging to one workflow transition. Staged writes
// become visible all at once when the enclosing Transaction commits; a
// reader never observes a support record whose status advanced without its
// companion comment, action-cancellation, and activity-log writes.
type Tx interface {
	// PutSupport stages a create or update of a support record. On update
	// the record's Version must equal the stored version at commit time.
	PutSupport(s *model.SupportRecord)

	// PutComment stages a new comment
	PutComment(c *model.Comment)

	// PutActivityLog stages a new activity log entry
	PutActivityLog(l *model.ActivityLog)

	// UpdateActions stages status updates for the given actions
	UpdateActions(actions []*model.Action)
}
