package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Lookup errors
	ErrBookingNotFound    = errors.New("booking not found")
	ErrOccurrenceNotFound = errors.New("occurrence not found")
	ErrRatePlanNotFound   = errors.New("rate plan not found")
	ErrDraftNotFound      = errors.New("draft not found")
	ErrPetNotFound        = errors.New("pet not found")

	// Authorization errors
	ErrNotBookingParty = errors.New("actor is not a party to this booking")
	ErrNotPlanOwner    = errors.New("actor does not own this rate plan")

	// Draft errors
	ErrMultiFieldPatch    = errors.New("patch must set exactly one field")
	ErrBookingNotEditable = errors.New("booking is not editable in its current status")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Computation errors
	ErrComputation = errors.New("derived cost computation failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
