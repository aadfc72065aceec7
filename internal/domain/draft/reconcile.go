package draft

import (
	"petcare-booking/internal/domain/booking"
)

// Decision is the outcome of comparing a draft against the live booking.
type Decision struct {
	Status  booking.Status
	Changed bool
}

// ReconcileStatus diffs the draft's staged pet roster against the live
// roster (both normalized by pet id) and decides the booking's next status.
//
// An unequal roster flips the booking to
// CONFIRMED_PENDING_PROFESSIONAL_CHANGES; the flip is recorded as a change
// only when the booking was CONFIRMED. An equal roster while the booking
// sits in CONFIRMED_PENDING_PROFESSIONAL_CHANGES reverts it to the draft's
// original status. Every other status is left untouched.
func ReconcileStatus(draftPets, livePets []PetRef, liveStatus, originalStatus booking.Status) Decision {
	if !petsEqual(SortPets(draftPets), SortPets(livePets)) {
		return Decision{
			Status:  booking.StatusConfirmedPendingProChanges,
			Changed: liveStatus == booking.StatusConfirmed,
		}
	}
	if liveStatus == booking.StatusConfirmedPendingProChanges && originalStatus != "" {
		return Decision{Status: originalStatus, Changed: true}
	}
	return Decision{Status: liveStatus, Changed: false}
}

func petsEqual(a, b []PetRef) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
