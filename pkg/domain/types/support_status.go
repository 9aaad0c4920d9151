package types

import "fmt"

// SupportStatus represents the status of an organisation unit's engagement
// with one innovation.
type SupportStatus string

const (
	SupportStatusUnassigned          SupportStatus = "UNASSIGNED"
	SupportStatusEngaging            SupportStatus = "ENGAGING"
	SupportStatusFurtherInfoRequired SupportStatus = "FURTHER_INFO_REQUIRED"
	SupportStatusWaiting             SupportStatus = "WAITING"
	SupportStatusNotYet              SupportStatus = "NOT_YET"
	SupportStatusComplete            SupportStatus = "COMPLETE"
	SupportStatusWithdrawn           SupportStatus = "WITHDRAWN"
)

// AllSupportStatuses returns all valid support statuses
func AllSupportStatuses() []SupportStatus {
	return []SupportStatus{
		SupportStatusUnassigned,
		SupportStatusEngaging,
		SupportStatusFurtherInfoRequired,
		SupportStatusWaiting,
		SupportStatusNotYet,
		SupportStatusComplete,
		SupportStatusWithdrawn,
	}
}

// IsValid checks if the support status is valid
func (s SupportStatus) IsValid() bool {
	switch s {
	case SupportStatusUnassigned,
		SupportStatusEngaging,
		SupportStatusFurtherInfoRequired,
		SupportStatusWaiting,
		SupportStatusNotYet,
		SupportStatusComplete,
		SupportStatusWithdrawn:
		return true
	default:
		return false
	}
}

// String returns the string representation of the support status
func (s SupportStatus) String() string {
	return string(s)
}

// ParseSupportStatus parses a string into a SupportStatus
func ParseSupportStatus(s string) (SupportStatus, error) {
	status := SupportStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid support status: %s", s)
	}
	return status, nil
}

// supportTransitions is the explicit state machine of the support workflow.
// A (from, to) pair absent from this table is rejected; there is no implicit
// fallthrough.
var supportTransitions = map[SupportStatus][]SupportStatus{
	SupportStatusUnassigned: {
		SupportStatusWaiting,
		SupportStatusNotYet,
		SupportStatusEngaging,
	},
	SupportStatusEngaging: {
		SupportStatusFurtherInfoRequired,
		SupportStatusWaiting,
		SupportStatusComplete,
		SupportStatusWithdrawn,
	},
	SupportStatusFurtherInfoRequired: {SupportStatusEngaging},
	SupportStatusWaiting:             {SupportStatusEngaging},
	SupportStatusNotYet:              {SupportStatusEngaging, SupportStatusWaiting},
	SupportStatusComplete:            {SupportStatusEngaging},
	SupportStatusWithdrawn:           {SupportStatusEngaging},
}

// CanTransitionTo reports whether the transition s -> next is allowed.
// Setting the same status again is treated as allowed (no-op transition,
// e.g. updating the accessor list while ENGAGING).
func (s SupportStatus) CanTransitionTo(next SupportStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range supportTransitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

// AcceptsAccessors reports whether the status carries an assigned-accessor
// list. Only ENGAGING supports have meaningful accessor assignments.
func (s SupportStatus) AcceptsAccessors() bool {
	return s == SupportStatusEngaging
}
