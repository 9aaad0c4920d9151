package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const organisationsCollection = "organisations"

type organisationRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

// organisationDoc is the Firestore persistence model
type organisationDoc struct {
	ID      string    `firestore:"id"`
	Name    string    `firestore:"name"`
	Acronym string    `firestore:"acronym"`
	Units   []unitDoc `firestore:"units"`
}

type unitDoc struct {
	ID      string `firestore:"id"`
	Name    string `firestore:"name"`
	Acronym string `firestore:"acronym"`
}

func (r *organisationRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(prefixed(r.collectionPrefix, organisationsCollection))
}

func (r *organisationRepository) toDoc(o *model.Organisation) *organisationDoc {
	units := make([]unitDoc, len(o.Units))
	for i, u := range o.Units {
		units[i] = unitDoc{ID: u.ID, Name: u.Name, Acronym: u.Acronym}
	}
	return &organisationDoc{
		ID:      o.ID,
		Name:    o.Name,
		Acronym: o.Acronym,
		Units:   units,
	}
}

func (r *organisationRepository) fromDoc(doc *organisationDoc) *model.Organisation {
	units := make([]model.OrganisationUnit, len(doc.Units))
	for i, u := range doc.Units {
		units[i] = model.OrganisationUnit{ID: u.ID, Name: u.Name, Acronym: u.Acronym}
	}
	return &model.Organisation{
		ID:      doc.ID,
		Name:    doc.Name,
		Acronym: doc.Acronym,
		Units:   units,
	}
}

func (r *organisationRepository) Get(ctx context.Context, id string) (*model.Organisation, error) {
	doc, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "organisation not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get organisation", goerr.V("id", id))
	}

	var d organisationDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal organisation", goerr.V("id", id))
	}

	return r.fromDoc(&d), nil
}

func (r *organisationRepository) List(ctx context.Context) ([]*model.Organisation, error) {
	iter := r.collection().Documents(ctx)
	defer iter.Stop()

	orgs := []*model.Organisation{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate organisations")
		}

		var d organisationDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal organisation", goerr.V("docID", doc.Ref.ID))
		}

		orgs = append(orgs, r.fromDoc(&d))
	}

	return orgs, nil
}

func (r *organisationRepository) Put(ctx context.Context, org *model.Organisation) error {
	if _, err := r.collection().Doc(org.ID).Set(ctx, r.toDoc(org)); err != nil {
		return goerr.Wrap(err, "failed to save organisation", goerr.V("id", org.ID))
	}
	return nil
}
