package interfaces

import (
	"context"

	"github.com/inno-lab/innovaid/pkg/domain/model"
)

// CommentRepository defines read access to comments. Comment writes happen
// inside the workflow transaction.
type CommentRepository interface {
	// Get retrieves a comment by ID
	Get(ctx context.Context, id string) (*model.Comment, error)

	// ListByInnovation retrieves all comments of an innovation, newest
	// first.
	ListByInnovation(ctx context.Context, innovationID string) ([]*model.Comment, error)
}
