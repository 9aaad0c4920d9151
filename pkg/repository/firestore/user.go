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

const usersCollection = "users"

type userRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

// userDoc is the Firestore persistence model
type userDoc struct {
	ID                 string    `firestore:"id"`
	ExternalID         string    `firestore:"external_id"`
	Name               string    `firestore:"name"`
	Email              string    `firestore:"email"`
	Type               string    `firestore:"type"`
	OrganisationID     string    `firestore:"organisation_id"`
	OrganisationUnitID string    `firestore:"organisation_unit_id"`
	OrganisationRole   string    `firestore:"organisation_role"`
	UpdatedAt          time.Time `firestore:"updated_at"`
}

func (r *userRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(prefixed(r.collectionPrefix, usersCollection))
}

func (r *userRepository) toDoc(u *model.User) *userDoc {
	return &userDoc{
		ID:                 u.ID,
		ExternalID:         u.ExternalID,
		Name:               u.Name,
		Email:              u.Email,
		Type:               string(u.Type),
		OrganisationID:     u.OrganisationID,
		OrganisationUnitID: u.OrganisationUnitID,
		OrganisationRole:   string(u.OrganisationRole),
		UpdatedAt:          u.UpdatedAt,
	}
}

func (r *userRepository) fromDoc(doc *userDoc) *model.User {
	return &model.User{
		ID:                 doc.ID,
		ExternalID:         doc.ExternalID,
		Name:               doc.Name,
		Email:              doc.Email,
		Type:               types.UserType(doc.Type),
		OrganisationID:     doc.OrganisationID,
		OrganisationUnitID: doc.OrganisationUnitID,
		OrganisationRole:   types.OrgRole(doc.OrganisationRole),
		UpdatedAt:          doc.UpdatedAt,
	}
}

func (r *userRepository) Get(ctx context.Context, id string) (*model.User, error) {
	doc, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "user not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get user", goerr.V("id", id))
	}

	var d userDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal user", goerr.V("id", id))
	}

	return r.fromDoc(&d), nil
}

func (r *userRepository) ListByType(ctx context.Context, userType types.UserType) ([]*model.User, error) {
	iter := r.collection().Where("type", "==", string(userType)).Documents(ctx)
	defer iter.Stop()

	users, err := r.collect(iter)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list users by type", goerr.V("type", userType))
	}
	return users, nil
}

func (r *userRepository) ListByOrganisationRole(ctx context.Context, orgIDs []string, role types.OrgRole) ([]*model.User, error) {
	if len(orgIDs) == 0 {
		return []*model.User{}, nil
	}

	// Firestore limits "in" filters to 10 values per query
	const inLimit = 10

	users := []*model.User{}
	for i := 0; i < len(orgIDs); i += inLimit {
		end := i + inLimit
		if end > len(orgIDs) {
			end = len(orgIDs)
		}

		iter := r.collection().
			Where("organisation_role", "==", string(role)).
			Where("organisation_id", "in", orgIDs[i:end]).
			Documents(ctx)

		batch, err := r.collect(iter)
		iter.Stop()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list users by organisation role", goerr.V("role", role))
		}
		users = append(users, batch...)
	}

	sort.Slice(users, func(i, j int) bool {
		return users[i].ID < users[j].ID
	})

	return users, nil
}

func (r *userRepository) collect(iter *firestore.DocumentIterator) ([]*model.User, error) {
	users := []*model.User{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate users")
		}

		var d userDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal user", goerr.V("docID", doc.Ref.ID))
		}

		users = append(users, r.fromDoc(&d))
	}

	sort.Slice(users, func(i, j int) bool {
		return users[i].ID < users[j].ID
	})

	return users, nil
}

func (r *userRepository) Put(ctx context.Context, user *model.User) error {
	stored := r.toDoc(user)
	stored.UpdatedAt = time.Now().UTC()

	if _, err := r.collection().Doc(user.ID).Set(ctx, stored); err != nil {
		return goerr.Wrap(err, "failed to save user", goerr.V("id", user.ID))
	}
	return nil
}

// SaveMany saves multiple users (upsert operation). BulkWriter handles the
// 500-writes-per-batch limit internally.
func (r *userRepository) SaveMany(ctx context.Context, users []*model.User) error {
	if len(users) == 0 {
		return nil
	}

	now := time.Now().UTC()
	bulkWriter := r.client.BulkWriter(ctx)
	defer bulkWriter.End()

	for _, user := range users {
		stored := r.toDoc(user)
		stored.UpdatedAt = now
		if _, err := bulkWriter.Set(r.collection().Doc(user.ID), stored); err != nil {
			return goerr.Wrap(err, "failed to add Set operation to bulk writer", goerr.V("user_id", user.ID))
		}
	}

	bulkWriter.Flush()

	return nil
}
