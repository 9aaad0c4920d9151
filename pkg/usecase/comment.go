package usecase

import (
	"context"

	"github.com/inno-lab/innovaid/pkg/domain/interfaces"
	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type CommentUseCase struct {
	repo interfaces.Repository
}

func NewCommentUseCase(repo interfaces.Repository) *CommentUseCase {
	return &CommentUseCase{
		repo: repo,
	}
}

// List returns the comments of an innovation, newest first. Comment
// creation happens inside the support workflow transaction; there is no
// standalone create here.
func (uc *CommentUseCase) List(ctx context.Context, innovationID string) ([]*model.Comment, error) {
	if innovationID == "" {
		return nil, goerr.Wrap(ErrInvalidParams, "innovation is required")
	}

	comments, err := uc.repo.Comment().ListByInnovation(ctx, innovationID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list comments", goerr.V(InnovationIDKey, innovationID))
	}

	return comments, nil
}
