package usecase

import (
	"context"

	"github.com/inno-lab/innovaid/pkg/domain/interfaces"
	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/inno-lab/innovaid/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type SupportLogUseCase struct {
	repo interfaces.Repository
}

func NewSupportLogUseCase(repo interfaces.Repository) *SupportLogUseCase {
	return &SupportLogUseCase{
		repo: repo,
	}
}

// Create appends one support log entry. Entries are immutable once
// written.
func (uc *SupportLogUseCase) Create(ctx context.Context, actor *model.Actor, innovationID string, entry *model.SupportLogEntry) (*model.SupportLogEntry, error) {
	if actor == nil || innovationID == "" || entry == nil {
		return nil, goerr.Wrap(ErrInvalidParams, "actor, innovation and entry are required")
	}
	if !entry.Type.IsValid() {
		return nil, goerr.Wrap(ErrInvalidParams, "invalid support log type", goerr.V("type", entry.Type))
	}

	if _, err := uc.repo.Innovation().Get(ctx, innovationID); err != nil {
		return nil, goerr.Wrap(ErrNotFound, "innovation not found", goerr.V(InnovationIDKey, innovationID))
	}

	record := *entry
	record.InnovationID = innovationID
	record.CreatedBy = actor.ID

	created, err := uc.repo.SupportLog().Create(ctx, &record)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create support log entry",
			goerr.V(InnovationIDKey, innovationID),
			goerr.V(ActorIDKey, actor.ID))
	}

	return created, nil
}

// List returns the support log of an innovation, newest first
func (uc *SupportLogUseCase) List(ctx context.Context, innovationID string) ([]*model.SupportLogEntry, error) {
	if innovationID == "" {
		return nil, goerr.Wrap(ErrInvalidParams, "innovation is required")
	}

	entries, err := uc.repo.SupportLog().ListByInnovation(ctx, innovationID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list support log entries", goerr.V(InnovationIDKey, innovationID))
	}

	return entries, nil
}

// statusLogType maps a support status to the log entry type it produces,
// or "" when the status does not produce one.
func statusLogType(status types.SupportStatus) types.SupportLogType {
	switch status {
	case types.SupportStatusEngaging, types.SupportStatusComplete:
		return types.SupportLogStatusUpdate
	default:
		return ""
	}
}
