package model

import "github.com/inno-lab/innovaid/pkg/domain/types"

// QueueActor is the minimal actor descriptor carried on queue messages, so
// the delivery worker can render sender details without a directory lookup.
type QueueActor struct {
	ID         string `json:"id"`
	ExternalID string `json:"identityId"`
	Role       string `json:"role"`
}

// QueueBody is the payload common to all queue messages plus the
// action-specific fields; unused fields are omitted from the wire form.
type QueueBody struct {
	InnovationID       string              `json:"innovationId"`
	ContextID          string              `json:"contextId"`
	Actor              QueueActor          `json:"actor"`
	SupportID          string              `json:"supportId,omitempty"`
	SupportStatus      types.SupportStatus `json:"supportStatus,omitempty"`
	StatusChanged      bool                `json:"statusChanged,omitempty"`
	OrganisationUnitID string              `json:"organisationUnitId,omitempty"`
	CommentID          string              `json:"commentId,omitempty"`
	SuggestedUnitIDs   []string            `json:"suggestedUnitIds,omitempty"`
}

// QueueMessage is one fire-and-forget event handed to the dispatch queue.
// EventID is a unique idempotency key so the delivery worker can discard
// duplicates from client-side retries.
type QueueMessage struct {
	Action  types.QueueAction `json:"action"`
	EventID string            `json:"eventId"`
	Body    QueueBody         `json:"body"`
}
