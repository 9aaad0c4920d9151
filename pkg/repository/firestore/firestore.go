package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/inno-lab/innovaid/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

type Firestore struct {
	client *firestore.Client

	innovation   *innovationRepository
	assessment   *assessmentRepository
	support      *supportRepository
	action       *actionRepository
	comment      *commentRepository
	activityLog  *activityLogRepository
	supportLog   *supportLogRepository
	notification *notificationRepository
	user         *userRepository
	organisation *organisationRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.innovation.collectionPrefix = prefix
		f.assessment.collectionPrefix = prefix
		f.support.collectionPrefix = prefix
		f.action.collectionPrefix = prefix
		f.comment.collectionPrefix = prefix
		f.activityLog.collectionPrefix = prefix
		f.supportLog.collectionPrefix = prefix
		f.notification.collectionPrefix = prefix
		f.user.collectionPrefix = prefix
		f.organisation.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID string, opts ...Option) (*Firestore, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client", goerr.V("projectID", projectID))
	}

	f := &Firestore{
		client:       client,
		innovation:   &innovationRepository{client: client},
		assessment:   &assessmentRepository{client: client},
		support:      &supportRepository{client: client},
		action:       &actionRepository{client: client},
		comment:      &commentRepository{client: client},
		activityLog:  &activityLogRepository{client: client},
		supportLog:   &supportLogRepository{client: client},
		notification: &notificationRepository{client: client},
		user:         &userRepository{client: client},
		organisation: &organisationRepository{client: client},
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func prefixed(prefix, name string) string {
	if prefix != "" {
		return prefix + "_" + name
	}
	return name
}

func (f *Firestore) Innovation() interfaces.InnovationRepository {
	return f.innovation
}

func (f *Firestore) Assessment() interfaces.AssessmentRepository {
	return f.assessment
}

func (f *Firestore) Support() interfaces.SupportRepository {
	return f.support
}

func (f *Firestore) Action() interfaces.ActionRepository {
	return f.action
}

func (f *Firestore) Comment() interfaces.CommentRepository {
	return f.comment
}

func (f *Firestore) ActivityLog() interfaces.ActivityLogRepository {
	return f.activityLog
}

func (f *Firestore) SupportLog() interfaces.SupportLogRepository {
	return f.supportLog
}

func (f *Firestore) Notification() interfaces.NotificationRepository {
	return f.notification
}

func (f *Firestore) User() interfaces.UserRepository {
	return f.user
}

func (f *Firestore) Organisation() interfaces.OrganisationRepository {
	return f.organisation
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
