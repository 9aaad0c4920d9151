package types

import "fmt"

// ActivityType identifies one kind of auditable business event on an
// innovation. The set is closed; adding a tag requires updating the
// category table below, which activityCategories' completeness test keeps
// honest.
type ActivityType string

const (
	ActivityInnovationCreation         ActivityType = "INNOVATION_CREATION"
	ActivityOwnershipTransfer          ActivityType = "OWNERSHIP_TRANSFER"
	ActivitySharingPreferencesUpdate   ActivityType = "SHARING_PREFERENCES_UPDATE"
	ActivityInnovationSubmission       ActivityType = "INNOVATION_SUBMISSION"
	ActivitySectionDraftUpdate         ActivityType = "SECTION_DRAFT_UPDATE"
	ActivitySectionSubmission          ActivityType = "SECTION_SUBMISSION"
	ActivityNeedsAssessmentStart       ActivityType = "NEEDS_ASSESSMENT_START"
	ActivityNeedsAssessmentCompleted   ActivityType = "NEEDS_ASSESSMENT_COMPLETED"
	ActivityNeedsAssessmentEdited      ActivityType = "NEEDS_ASSESSMENT_EDITED"
	ActivityOrganisationSuggestion     ActivityType = "ORGANISATION_SUGGESTION"
	ActivitySupportStatusUpdate        ActivityType = "SUPPORT_STATUS_UPDATE"
	ActivityCommentCreation            ActivityType = "COMMENT_CREATION"
	ActivityActionCreation             ActivityType = "ACTION_CREATION"
	ActivityActionStatusInReviewUpdate ActivityType = "ACTION_STATUS_IN_REVIEW_UPDATE"
	ActivityActionStatusCancelled      ActivityType = "ACTION_STATUS_CANCELLED_UPDATE"
)

// ActivityCategory is the coarse grouping of activity types used by the
// activity-log read path for filtering.
type ActivityCategory string

const (
	CategoryInnovationManagement ActivityCategory = "INNOVATION_MANAGEMENT"
	CategoryInnovationRecord     ActivityCategory = "INNOVATION_RECORD"
	CategoryNeedsAssessment      ActivityCategory = "NEEDS_ASSESSMENT"
	CategorySupport              ActivityCategory = "SUPPORT"
	CategoryComments             ActivityCategory = "COMMENTS"
	CategoryActions              ActivityCategory = "ACTIONS"
)

// AllActivityTypes returns all valid activity types
func AllActivityTypes() []ActivityType {
	return []ActivityType{
		ActivityInnovationCreation,
		ActivityOwnershipTransfer,
		ActivitySharingPreferencesUpdate,
		ActivityInnovationSubmission,
		ActivitySectionDraftUpdate,
		ActivitySectionSubmission,
		ActivityNeedsAssessmentStart,
		ActivityNeedsAssessmentCompleted,
		ActivityNeedsAssessmentEdited,
		ActivityOrganisationSuggestion,
		ActivitySupportStatusUpdate,
		ActivityCommentCreation,
		ActivityActionCreation,
		ActivityActionStatusInReviewUpdate,
		ActivityActionStatusCancelled,
	}
}

var activityCategories = map[ActivityType]ActivityCategory{
	ActivityInnovationCreation:         CategoryInnovationManagement,
	ActivityOwnershipTransfer:          CategoryInnovationManagement,
	ActivitySharingPreferencesUpdate:   CategoryInnovationManagement,
	ActivityInnovationSubmission:       CategoryInnovationManagement,
	ActivitySectionDraftUpdate:         CategoryInnovationRecord,
	ActivitySectionSubmission:          CategoryInnovationRecord,
	ActivityNeedsAssessmentStart:       CategoryNeedsAssessment,
	ActivityNeedsAssessmentCompleted:   CategoryNeedsAssessment,
	ActivityNeedsAssessmentEdited:      CategoryNeedsAssessment,
	ActivityOrganisationSuggestion:     CategorySupport,
	ActivitySupportStatusUpdate:        CategorySupport,
	ActivityCommentCreation:            CategoryComments,
	ActivityActionCreation:             CategoryActions,
	ActivityActionStatusInReviewUpdate: CategoryActions,
	ActivityActionStatusCancelled:      CategoryActions,
}

// IsValid checks if the activity type is valid
func (t ActivityType) IsValid() bool {
	_, ok := activityCategories[t]
	return ok
}

// Category returns the coarse category of the activity type. An unknown
// type yields the empty category; readers must tolerate it rather than
// treat it as an error.
func (t ActivityType) Category() ActivityCategory {
	return activityCategories[t]
}

// String returns the string representation of the activity type
func (t ActivityType) String() string {
	return string(t)
}

// IsValid checks if the activity category is valid
func (c ActivityCategory) IsValid() bool {
	switch c {
	case CategoryInnovationManagement,
		CategoryInnovationRecord,
		CategoryNeedsAssessment,
		CategorySupport,
		CategoryComments,
		CategoryActions:
		return true
	default:
		return false
	}
}

// String returns the string representation of the activity category
func (c ActivityCategory) String() string {
	return string(c)
}

// ParseActivityCategory parses a string into an ActivityCategory
func ParseActivityCategory(s string) (ActivityCategory, error) {
	c := ActivityCategory(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid activity category: %s", s)
	}
	return c, nil
}
