package usecase

import (
	"github.com/inno-lab/innovaid/pkg/domain/interfaces"
)

type UseCases struct {
	repo     interfaces.Repository
	queue    interfaces.QueueClient
	resolver interfaces.NameResolver

	Support      *SupportUseCase
	Notification *NotificationUseCase
	Activity     *ActivityUseCase
	SupportLog   *SupportLogUseCase
	Comment      *CommentUseCase
}

type Option func(*UseCases)

// WithQueue sets the dispatch queue client used for post-commit delivery
// events. Without it, queue dispatch is skipped.
func WithQueue(queue interfaces.QueueClient) Option {
	return func(uc *UseCases) {
		uc.queue = queue
	}
}

// WithNameResolver sets the directory lookup used when materializing
// activity log read views.
func WithNameResolver(resolver interfaces.NameResolver) Option {
	return func(uc *UseCases) {
		uc.resolver = resolver
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Notification = NewNotificationUseCase(repo)
	uc.Activity = NewActivityUseCase(repo, uc.resolver)
	uc.SupportLog = NewSupportLogUseCase(repo)
	uc.Comment = NewCommentUseCase(repo)
	uc.Support = NewSupportUseCase(repo, uc.queue, uc.Notification, uc.SupportLog, uc.Activity)

	return uc
}
