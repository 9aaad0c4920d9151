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

const supportsCollection = "supports"

type supportRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

// supportDoc is the Firestore persistence model
type supportDoc struct {
	ID                 string     `firestore:"id"`
	InnovationID       string     `firestore:"innovation_id"`
	OrganisationID     string     `firestore:"organisation_id"`
	OrganisationUnitID string     `firestore:"organisation_unit_id"`
	Status             string     `firestore:"status"`
	AccessorIDs        []string   `firestore:"accessor_ids"`
	Version            int64      `firestore:"version"`
	CreatedBy          string     `firestore:"created_by"`
	UpdatedBy          string     `firestore:"updated_by"`
	CreatedAt          time.Time  `firestore:"created_at"`
	UpdatedAt          time.Time  `firestore:"updated_at"`
	DeletedAt          *time.Time `firestore:"deleted_at"`
}

func (r *supportRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(prefixed(r.collectionPrefix, supportsCollection))
}

func (r *supportRepository) toDoc(s *model.SupportRecord) *supportDoc {
	return &supportDoc{
		ID:                 s.ID,
		InnovationID:       s.InnovationID,
		OrganisationID:     s.OrganisationID,
		OrganisationUnitID: s.OrganisationUnitID,
		Status:             string(s.Status),
		AccessorIDs:        s.AccessorIDs,
		Version:            s.Version,
		CreatedBy:          s.CreatedBy,
		UpdatedBy:          s.UpdatedBy,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
		DeletedAt:          s.DeletedAt,
	}
}

func (r *supportRepository) fromDoc(doc *supportDoc) *model.SupportRecord {
	return &model.SupportRecord{
		ID:                 doc.ID,
		InnovationID:       doc.InnovationID,
		OrganisationID:     doc.OrganisationID,
		OrganisationUnitID: doc.OrganisationUnitID,
		Status:             types.SupportStatus(doc.Status),
		AccessorIDs:        doc.AccessorIDs,
		Version:            doc.Version,
		CreatedBy:          doc.CreatedBy,
		UpdatedBy:          doc.UpdatedBy,
		CreatedAt:          doc.CreatedAt,
		UpdatedAt:          doc.UpdatedAt,
		DeletedAt:          doc.DeletedAt,
	}
}

func (r *supportRepository) Get(ctx context.Context, id string) (*model.SupportRecord, error) {
	doc, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "support record not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get support record", goerr.V("id", id))
	}

	var d supportDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal support record", goerr.V("id", id))
	}

	record := r.fromDoc(&d)
	if record.IsDeleted() {
		return nil, goerr.Wrap(ErrNotFound, "support record not found", goerr.V("id", id))
	}

	return record, nil
}

func (r *supportRepository) GetByInnovationAndUnit(ctx context.Context, innovationID, unitID string) (*model.SupportRecord, error) {
	iter := r.collection().
		Where("innovation_id", "==", innovationID).
		Where("organisation_unit_id", "==", unitID).
		Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to query support records",
				goerr.V("innovationID", innovationID),
				goerr.V("unitID", unitID))
		}

		var d supportDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal support record", goerr.V("docID", doc.Ref.ID))
		}

		record := r.fromDoc(&d)
		if record.IsDeleted() {
			continue
		}
		return record, nil
	}

	return nil, nil
}

func (r *supportRepository) ListByInnovation(ctx context.Context, innovationID string, statuses ...types.SupportStatus) ([]*model.SupportRecord, error) {
	query := r.collection().Where("innovation_id", "==", innovationID)
	if len(statuses) > 0 {
		strs := make([]string, len(statuses))
		for i, st := range statuses {
			strs[i] = string(st)
		}
		query = query.Where("status", "in", strs)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	records := []*model.SupportRecord{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate support records", goerr.V("innovationID", innovationID))
		}

		var d supportDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal support record", goerr.V("docID", doc.Ref.ID))
		}

		record := r.fromDoc(&d)
		if record.IsDeleted() {
			continue
		}
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})

	return records, nil
}
