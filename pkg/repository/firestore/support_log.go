package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/inno-lab/innovaid/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
)

const supportLogsCollection = "support_logs"

type supportLogRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

// supportLogDoc is the Firestore persistence model
type supportLogDoc struct {
	ID                 string    `firestore:"id"`
	InnovationID       string    `firestore:"innovation_id"`
	OrganisationUnitID string    `firestore:"organisation_unit_id"`
	Type               string    `firestore:"type"`
	Description        string    `firestore:"description"`
	SupportStatus      string    `firestore:"support_status"`
	SuggestedUnitIDs   []string  `firestore:"suggested_unit_ids"`
	CreatedBy          string    `firestore:"created_by"`
	CreatedAt          time.Time `firestore:"created_at"`
}

func (r *supportLogRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(prefixed(r.collectionPrefix, supportLogsCollection))
}

func (r *supportLogRepository) toDoc(e *model.SupportLogEntry) *supportLogDoc {
	return &supportLogDoc{
		ID:                 e.ID,
		InnovationID:       e.InnovationID,
		OrganisationUnitID: e.OrganisationUnitID,
		Type:               string(e.Type),
		Description:        e.Description,
		SupportStatus:      string(e.SupportStatus),
		SuggestedUnitIDs:   e.SuggestedUnitIDs,
		CreatedBy:          e.CreatedBy,
		CreatedAt:          e.CreatedAt,
	}
}

func (r *supportLogRepository) fromDoc(doc *supportLogDoc) *model.SupportLogEntry {
	return &model.SupportLogEntry{
		ID:                 doc.ID,
		InnovationID:       doc.InnovationID,
		OrganisationUnitID: doc.OrganisationUnitID,
		Type:               types.SupportLogType(doc.Type),
		Description:        doc.Description,
		SupportStatus:      types.SupportStatus(doc.SupportStatus),
		SuggestedUnitIDs:   doc.SuggestedUnitIDs,
		CreatedBy:          doc.CreatedBy,
		CreatedAt:          doc.CreatedAt,
	}
}

func (r *supportLogRepository) Create(ctx context.Context, entry *model.SupportLogEntry) (*model.SupportLogEntry, error) {
	created := *entry
	if created.ID == "" {
		created.ID = uuid.NewString()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	if _, err := r.collection().Doc(created.ID).Set(ctx, r.toDoc(&created)); err != nil {
		return nil, goerr.Wrap(err, "failed to create support log entry", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *supportLogRepository) ListByInnovation(ctx context.Context, innovationID string) ([]*model.SupportLogEntry, error) {
	iter := r.collection().
		Where("innovation_id", "==", innovationID).
		OrderBy("created_at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	entries := []*model.SupportLogEntry{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate support log entries", goerr.V("innovationID", innovationID))
		}

		var d supportLogDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal support log entry", goerr.V("docID", doc.Ref.ID))
		}

		entries = append(entries, r.fromDoc(&d))
	}

	return entries, nil
}
