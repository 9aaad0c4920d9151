package types

// SupportLogType tags an entry of the support log (the support-scoped
// audit trail, distinct from the innovation activity log).
type SupportLogType string

const (
	SupportLogStatusUpdate       SupportLogType = "STATUS_UPDATE"
	SupportLogAccessorSuggestion SupportLogType = "ACCESSOR_SUGGESTION"
)

// IsValid checks if the support log type is valid
func (t SupportLogType) IsValid() bool {
	switch t {
	case SupportLogStatusUpdate, SupportLogAccessorSuggestion:
		return true
	default:
		return false
	}
}

// String returns the string representation of the support log type
func (t SupportLogType) String() string {
	return string(t)
}
