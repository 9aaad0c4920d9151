package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const commentsCollection = "comments"

type commentRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

// commentDoc is the Firestore persistence model
type commentDoc struct {
	ID           string    `firestore:"id"`
	InnovationID string    `firestore:"innovation_id"`
	SupportID    string    `firestore:"support_id"`
	Message      string    `firestore:"message"`
	CreatedBy    string    `firestore:"created_by"`
	CreatedAt    time.Time `firestore:"created_at"`
}

func (r *commentRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(prefixed(r.collectionPrefix, commentsCollection))
}

func (r *commentRepository) toDoc(c *model.Comment) *commentDoc {
	return &commentDoc{
		ID:           c.ID,
		InnovationID: c.InnovationID,
		SupportID:    c.SupportID,
		Message:      c.Message,
		CreatedBy:    c.CreatedBy,
		CreatedAt:    c.CreatedAt,
	}
}

func (r *commentRepository) fromDoc(doc *commentDoc) *model.Comment {
	return &model.Comment{
		ID:           doc.ID,
		InnovationID: doc.InnovationID,
		SupportID:    doc.SupportID,
		Message:      doc.Message,
		CreatedBy:    doc.CreatedBy,
		CreatedAt:    doc.CreatedAt,
	}
}

func (r *commentRepository) Get(ctx context.Context, id string) (*model.Comment, error) {
	doc, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "comment not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get comment", goerr.V("id", id))
	}

	var d commentDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal comment", goerr.V("id", id))
	}

	return r.fromDoc(&d), nil
}

func (r *commentRepository) ListByInnovation(ctx context.Context, innovationID string) ([]*model.Comment, error) {
	iter := r.collection().
		Where("innovation_id", "==", innovationID).
		OrderBy("created_at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	comments := []*model.Comment{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate comments", goerr.V("innovationID", innovationID))
		}

		var d commentDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal comment", goerr.V("docID", doc.Ref.ID))
		}

		comments = append(comments, r.fromDoc(&d))
	}

	return comments, nil
}
