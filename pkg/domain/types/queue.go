package types

// QueueAction tags a message handed to the dispatch queue for asynchronous
// delivery. The queue consumer selects the delivery template from this tag.
type QueueAction string

const (
	QueueActionSupportStatusInnovator  QueueAction = "SUPPORT_STATUS_UPDATE_TO_INNOVATOR"
	QueueActionSupportStatusAccessors  QueueAction = "SUPPORT_STATUS_UPDATE_TO_ACCESSORS"
	QueueActionSupportStatusAssessment QueueAction = "SUPPORT_STATUS_UPDATE_TO_ASSESSMENT"
	QueueActionCommentCreation         QueueAction = "COMMENT_CREATION"
	QueueActionOrganisationSuggestion  QueueAction = "ORGANISATION_SUGGESTION"
)

// String returns the string representation of the queue action
func (a QueueAction) String() string {
	return string(a)
}
