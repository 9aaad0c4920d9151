package memory

import (
	"sync"

	"github.com/inno-lab/innovaid/pkg/domain/interfaces"
	"github.com/inno-lab/innovaid/pkg/domain/model"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

// Memory is the in-memory repository used by tests and local development.
// All entity repositories share one store so the workflow transaction can
// apply its staged writes under a single lock.
type Memory struct {
	store *store

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

var _ interfaces.Repository = &Memory{}

// store holds every entity map behind one mutex. The recipients key is
// "<notificationID>/<userID>".
type store struct {
	mu sync.RWMutex

	innovations   map[string]*model.Innovation
	assessments   map[string]*model.InnovationAssessment
	supports      map[string]*model.SupportRecord
	actions       map[string]*model.Action
	comments      map[string]*model.Comment
	activityLogs  map[string]*model.ActivityLog
	supportLogs   map[string]*model.SupportLogEntry
	notifications map[string]*model.Notification
	recipients    map[string]*model.NotificationRecipient
	users         map[string]*model.User
	organisations map[string]*model.Organisation
}

func newStore() *store {
	return &store{
		innovations:   make(map[string]*model.Innovation),
		assessments:   make(map[string]*model.InnovationAssessment),
		supports:      make(map[string]*model.SupportRecord),
		actions:       make(map[string]*model.Action),
		comments:      make(map[string]*model.Comment),
		activityLogs:  make(map[string]*model.ActivityLog),
		supportLogs:   make(map[string]*model.SupportLogEntry),
		notifications: make(map[string]*model.Notification),
		recipients:    make(map[string]*model.NotificationRecipient),
		users:         make(map[string]*model.User),
		organisations: make(map[string]*model.Organisation),
	}
}

func New() *Memory {
	s := newStore()

	return &Memory{
		store:        s,
		innovation:   &innovationRepository{store: s},
		assessment:   &assessmentRepository{store: s},
		support:      &supportRepository{store: s},
		action:       &actionRepository{store: s},
		comment:      &commentRepository{store: s},
		activityLog:  &activityLogRepository{store: s},
		supportLog:   &supportLogRepository{store: s},
		notification: &notificationRepository{store: s},
		user:         &userRepository{store: s},
		organisation: &organisationRepository{store: s},
	}
}

func (m *Memory) Innovation() interfaces.InnovationRepository {
	return m.innovation
}

func (m *Memory) Assessment() interfaces.AssessmentRepository {
	return m.assessment
}

func (m *Memory) Support() interfaces.SupportRepository {
	return m.support
}

func (m *Memory) Action() interfaces.ActionRepository {
	return m.action
}

func (m *Memory) Comment() interfaces.CommentRepository {
	return m.comment
}

func (m *Memory) ActivityLog() interfaces.ActivityLogRepository {
	return m.activityLog
}

func (m *Memory) SupportLog() interfaces.SupportLogRepository {
	return m.supportLog
}

func (m *Memory) Notification() interfaces.NotificationRepository {
	return m.notification
}

func (m *Memory) User() interfaces.UserRepository {
	return m.user
}

func (m *Memory) Organisation() interfaces.OrganisationRepository {
	return m.organisation
}

func (m *Memory) Close() error {
	return nil
}
