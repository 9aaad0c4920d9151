package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Input validation
	ErrInvalidParams = errors.New("invalid parameters")

	// Authorization
	ErrMissingUserOrganisation     = errors.New("user has no organisation membership")
	ErrMissingUserOrganisationUnit = errors.New("user has no organisation unit membership")
	ErrInvalidUserRole             = errors.New("user role does not permit this operation")

	// Not found
	ErrNotFound         = errors.New("record not found")
	ErrResourceNotFound = errors.New("sub-resource not found")

	// Workflow
	ErrInvalidStatusTransition = errors.New("status transition not allowed")
	ErrSupportAlreadyExists    = errors.New("support record already exists for this unit")
	ErrConflict                = errors.New("record was modified concurrently")
)

// Context keys for error values
const (
	InnovationIDKey = "innovation_id"
	SupportIDKey    = "support_id"
	ActorIDKey      = "actor_id"
)
