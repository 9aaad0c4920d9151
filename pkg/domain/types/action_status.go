package types

import "fmt"

// ActionStatus represents the status of a support action (a to-do item
// scoped to a support record).
type ActionStatus string

const (
	ActionStatusRequested ActionStatus = "REQUESTED"
	ActionStatusStarted   ActionStatus = "STARTED"
	ActionStatusContinue  ActionStatus = "CONTINUE"
	ActionStatusInReview  ActionStatus = "IN_REVIEW"
	ActionStatusDeleted   ActionStatus = "DELETED"
	ActionStatusDeclined  ActionStatus = "DECLINED"
	ActionStatusCompleted ActionStatus = "COMPLETED"
)

// AllActionStatuses returns all valid action statuses
func AllActionStatuses() []ActionStatus {
	return []ActionStatus{
		ActionStatusRequested,
		ActionStatusStarted,
		ActionStatusContinue,
		ActionStatusInReview,
		ActionStatusDeleted,
		ActionStatusDeclined,
		ActionStatusCompleted,
	}
}

// OpenActionStatuses returns the statuses in which an action is still
// pending work. Actions in these states are force-cancelled when a support
// record leaves ENGAGING.
func OpenActionStatuses() []ActionStatus {
	return []ActionStatus{
		ActionStatusRequested,
		ActionStatusStarted,
		ActionStatusInReview,
	}
}

// IsValid checks if the action status is valid
func (s ActionStatus) IsValid() bool {
	switch s {
	case ActionStatusRequested,
		ActionStatusStarted,
		ActionStatusContinue,
		ActionStatusInReview,
		ActionStatusDeleted,
		ActionStatusDeclined,
		ActionStatusCompleted:
		return true
	default:
		return false
	}
}

// IsOpen reports whether the action still has pending work
func (s ActionStatus) IsOpen() bool {
	switch s {
	case ActionStatusRequested, ActionStatusStarted, ActionStatusInReview:
		return true
	default:
		return false
	}
}

// String returns the string representation of the action status
func (s ActionStatus) String() string {
	return string(s)
}

// ParseActionStatus parses a string into an ActionStatus
func ParseActionStatus(s string) (ActionStatus, error) {
	status := ActionStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid action status: %s", s)
	}
	return status, nil
}
