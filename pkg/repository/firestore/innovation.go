package firestore

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	innovationsCollection = "innovations"
	assessmentsCollection = "innovation_assessments"
)

type innovationRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

// innovationDoc is the Firestore persistence model
type innovationDoc struct {
	ID        string    `firestore:"id"`
	Name      string    `firestore:"name"`
	OwnerID   string    `firestore:"owner_id"`
	CreatedAt time.Time `firestore:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

func (r *innovationRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(prefixed(r.collectionPrefix, innovationsCollection))
}

func (r *innovationRepository) toDoc(i *model.Innovation) *innovationDoc {
	return &innovationDoc{
		ID:        i.ID,
		Name:      i.Name,
		OwnerID:   i.OwnerID,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

func (r *innovationRepository) fromDoc(doc *innovationDoc) *model.Innovation {
	return &model.Innovation{
		ID:        doc.ID,
		Name:      doc.Name,
		OwnerID:   doc.OwnerID,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

func (r *innovationRepository) Get(ctx context.Context, id string) (*model.Innovation, error) {
	doc, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "innovation not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get innovation", goerr.V("id", id))
	}

	var d innovationDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal innovation", goerr.V("id", id))
	}

	return r.fromDoc(&d), nil
}

func (r *innovationRepository) Put(ctx context.Context, innovation *model.Innovation) error {
	stored := r.toDoc(innovation)
	now := time.Now().UTC()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now

	if _, err := r.collection().Doc(innovation.ID).Set(ctx, stored); err != nil {
		return goerr.Wrap(err, "failed to save innovation", goerr.V("id", innovation.ID))
	}
	return nil
}

type assessmentRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

// assessmentDoc is the Firestore persistence model
type assessmentDoc struct {
	ID                       string     `firestore:"id"`
	InnovationID             string     `firestore:"innovation_id"`
	SuggestedOrganisationIDs []string   `firestore:"suggested_organisation_ids"`
	FinishedAt               *time.Time `firestore:"finished_at"`
	CreatedAt                time.Time  `firestore:"created_at"`
	UpdatedAt                time.Time  `firestore:"updated_at"`
}

func (r *assessmentRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(prefixed(r.collectionPrefix, assessmentsCollection))
}

func (r *assessmentRepository) toDoc(a *model.InnovationAssessment) *assessmentDoc {
	return &assessmentDoc{
		ID:                       a.ID,
		InnovationID:             a.InnovationID,
		SuggestedOrganisationIDs: a.SuggestedOrganisationIDs,
		FinishedAt:               a.FinishedAt,
		CreatedAt:                a.CreatedAt,
		UpdatedAt:                a.UpdatedAt,
	}
}

func (r *assessmentRepository) fromDoc(doc *assessmentDoc) *model.InnovationAssessment {
	return &model.InnovationAssessment{
		ID:                       doc.ID,
		InnovationID:             doc.InnovationID,
		SuggestedOrganisationIDs: doc.SuggestedOrganisationIDs,
		FinishedAt:               doc.FinishedAt,
		CreatedAt:                doc.CreatedAt,
		UpdatedAt:                doc.UpdatedAt,
	}
}

func (r *assessmentRepository) ListByInnovation(ctx context.Context, innovationID string) ([]*model.InnovationAssessment, error) {
	iter := r.collection().Where("innovation_id", "==", innovationID).Documents(ctx)
	defer iter.Stop()

	assessments := []*model.InnovationAssessment{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate assessments", goerr.V("innovationID", innovationID))
		}

		var d assessmentDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal assessment", goerr.V("docID", doc.Ref.ID))
		}

		assessments = append(assessments, r.fromDoc(&d))
	}

	sort.Slice(assessments, func(i, j int) bool {
		return assessments[i].CreatedAt.Before(assessments[j].CreatedAt)
	})

	return assessments, nil
}

func (r *assessmentRepository) Put(ctx context.Context, assessment *model.InnovationAssessment) error {
	stored := r.toDoc(assessment)
	now := time.Now().UTC()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now

	if _, err := r.collection().Doc(assessment.ID).Set(ctx, stored); err != nil {
		return goerr.Wrap(err, "failed to save assessment", goerr.V("id", assessment.ID))
	}
	return nil
}
