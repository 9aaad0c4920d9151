package memory

import (
	"context"
	"sort"

	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type commentRepository struct {
	store *store
}

// copyComment creates a deep copy of a comment
func copyComment(c *model.Comment) *model.Comment {
	copied := *c
	return &copied
}

func (r *commentRepository) Get(ctx context.Context, id string) (*model.Comment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, exists := r.store.comments[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "comment not found", goerr.V("id", id))
	}

	return copyComment(c), nil
}

func (r *commentRepository) ListByInnovation(ctx context.Context, innovationID string) ([]*model.Comment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	comments := []*model.Comment{}
	for _, c := range r.store.comments {
		if c.InnovationID != innovationID {
			continue
		}
		comments = append(comments, copyComment(c))
	}

	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})

	return comments, nil
}
