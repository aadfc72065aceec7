package booking

// Status is the booking state machine's state field.
type Status string

const (
	StatusDraft                      Status = "DRAFT"
	StatusPendingInitialProChanges   Status = "PENDING_INITIAL_PROFESSIONAL_CHANGES"
	StatusPendingProChanges          Status = "PENDING_PROFESSIONAL_CHANGES"
	StatusPendingClientApproval      Status = "PENDING_CLIENT_APPROVAL"
	StatusConfirmedPendingProChanges Status = "CONFIRMED_PENDING_PROFESSIONAL_CHANGES"
	StatusConfirmed                  Status = "CONFIRMED"
	StatusDenied                     Status = "DENIED"
	StatusCancelled                  Status = "CANCELLED"
	StatusCompleted                  Status = "COMPLETED"
)

var statusDisplay = map[Status]string{
	StatusDraft:                      "Draft",
	StatusPendingInitialProChanges:   "Pending Initial Professional Changes",
	StatusPendingProChanges:          "Pending Professional Changes",
	StatusPendingClientApproval:      "Pending Client Approval",
	StatusConfirmedPendingProChanges: "Confirmed Pending Professional Changes",
	StatusConfirmed:                  "Confirmed",
	StatusDenied:                     "Denied",
	StatusCancelled:                  "Cancelled",
	StatusCompleted:                  "Completed",
}

func (s Status) String() string {
	return string(s)
}

// Display returns the stable human-readable string for transport layers.
func (s Status) Display() string {
	if d, ok := statusDisplay[s]; ok {
		return d
	}
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := statusDisplay[s]
	return ok
}

// IsTerminal reports whether the booking accepts no further edits at all.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusConfirmed, StatusDenied, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsEditable reports whether professional draft patches are accepted.
// CONFIRMED stays editable: a patch there is what moves the booking into
// CONFIRMED_PENDING_PROFESSIONAL_CHANGES during reconciliation.
func (s Status) IsEditable() bool {
	switch s {
	case StatusCancelled, StatusDenied, StatusCompleted, StatusPendingClientApproval:
		return false
	default:
		return s.IsValid()
	}
}

// Party identifies which side of the booking performed an action.
type Party string

const (
	PartyClient       Party = "CLIENT"
	PartyProfessional Party = "PROFESSIONAL"
)

// OccurrenceStatus distinguishes staged occurrences from finalized ones.
// Only FINAL occurrences contribute to the booking summary.
type OccurrenceStatus string

const (
	OccurrenceDraft OccurrenceStatus = "DRAFT"
	OccurrenceFinal OccurrenceStatus = "FINAL"
)

func (s OccurrenceStatus) IsFinal() bool {
	return s == OccurrenceFinal
}
