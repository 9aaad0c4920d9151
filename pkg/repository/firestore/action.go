package firestore

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/inno-lab/innovaid/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const actionsCollection = "actions"

type actionRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

// actionDoc is the Firestore persistence model
type actionDoc struct {
	ID           string    `firestore:"id"`
	SupportID    string    `firestore:"support_id"`
	InnovationID string    `firestore:"innovation_id"`
	Description  string    `firestore:"description"`
	SectionID    string    `firestore:"section_id"`
	Status       string    `firestore:"status"`
	CreatedBy    string    `firestore:"created_by"`
	UpdatedBy    string    `firestore:"updated_by"`
	CreatedAt    time.Time `firestore:"created_at"`
	UpdatedAt    time.Time `firestore:"updated_at"`
}

func (r *actionRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(prefixed(r.collectionPrefix, actionsCollection))
}

func (r *actionRepository) toDoc(a *model.Action) *actionDoc {
	return &actionDoc{
		ID:           a.ID,
		SupportID:    a.SupportID,
		InnovationID: a.InnovationID,
		Description:  a.Description,
		SectionID:    a.SectionID,
		Status:       string(a.Status),
		CreatedBy:    a.CreatedBy,
		UpdatedBy:    a.UpdatedBy,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (r *actionRepository) fromDoc(doc *actionDoc) *model.Action {
	return &model.Action{
		ID:           doc.ID,
		SupportID:    doc.SupportID,
		InnovationID: doc.InnovationID,
		Description:  doc.Description,
		SectionID:    doc.SectionID,
		Status:       types.ActionStatus(doc.Status),
		CreatedBy:    doc.CreatedBy,
		UpdatedBy:    doc.UpdatedBy,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}

func (r *actionRepository) Get(ctx context.Context, id string) (*model.Action, error) {
	doc, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "action not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get action", goerr.V("id", id))
	}

	var d actionDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal action", goerr.V("id", id))
	}

	return r.fromDoc(&d), nil
}

func (r *actionRepository) ListBySupport(ctx context.Context, supportID string, statuses ...types.ActionStatus) ([]*model.Action, error) {
	query := r.collection().Where("support_id", "==", supportID)
	if len(statuses) > 0 {
		strs := make([]string, len(statuses))
		for i, st := range statuses {
			strs[i] = string(st)
		}
		query = query.Where("status", "in", strs)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	actions := []*model.Action{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate actions", goerr.V("supportID", supportID))
		}

		var d actionDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal action", goerr.V("docID", doc.Ref.ID))
		}

		actions = append(actions, r.fromDoc(&d))
	}

	sort.Slice(actions, func(i, j int) bool {
		return actions[i].CreatedAt.Before(actions[j].CreatedAt)
	})

	return actions, nil
}

func (r *actionRepository) Put(ctx context.Context, action *model.Action) error {
	stored := r.toDoc(action)
	now := time.Now().UTC()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now

	if _, err := r.collection().Doc(action.ID).Set(ctx, stored); err != nil {
		return goerr.Wrap(err, "failed to save action", goerr.V("id", action.ID))
	}
	return nil
}
