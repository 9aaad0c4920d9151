package types

import "fmt"

// NotificationContextType tags the kind of entity a notification concerns.
type NotificationContextType string

const (
	NotificationContextInnovation NotificationContextType = "INNOVATION"
	NotificationContextSupport    NotificationContextType = "SUPPORT"
	NotificationContextAction     NotificationContextType = "ACTION"
	NotificationContextComment    NotificationContextType = "COMMENT"
	NotificationContextAssessment NotificationContextType = "NEEDS_ASSESSMENT"
)

// IsValid checks if the notification context type is valid
func (t NotificationContextType) IsValid() bool {
	switch t {
	case NotificationContextInnovation,
		NotificationContextSupport,
		NotificationContextAction,
		NotificationContextComment,
		NotificationContextAssessment:
		return true
	default:
		return false
	}
}

// String returns the string representation of the context type
func (t NotificationContextType) String() string {
	return string(t)
}

// ParseNotificationContextType parses a string into a NotificationContextType
func ParseNotificationContextType(s string) (NotificationContextType, error) {
	t := NotificationContextType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid notification context type: %s", s)
	}
	return t, nil
}
