package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"petcare-booking/internal/domain/pricing"
)

var (
	ErrInvalidStatus = errors.New("invalid booking status")
	ErrNotEditable   = errors.New("booking does not accept edits in its current status")
)

// Booking carries the status state machine plus a financial mirror of the
// summary for fast list reads. The mirror is written only by the cost
// aggregator, never derived at read time.
type Booking struct {
	id              uuid.UUID
	clientID        uuid.UUID
	professionalID  uuid.UUID
	ratePlanID      uuid.UUID
	status          Status
	subtotal        pricing.Money
	totalClientCost pricing.Money
	totalProPayout  pricing.Money
	createdAt       time.Time
	updatedAt       time.Time
}

func ReconstructBooking(
	id, clientID, professionalID, ratePlanID uuid.UUID,
	status Status,
	subtotal, totalClientCost, totalProPayout pricing.Money,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		clientID:        clientID,
		professionalID:  professionalID,
		ratePlanID:      ratePlanID,
		status:          status,
		subtotal:        subtotal,
		totalClientCost: totalClientCost,
		totalProPayout:  totalProPayout,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID                  { return b.id }
func (b *Booking) ClientID() uuid.UUID            { return b.clientID }
func (b *Booking) ProfessionalID() uuid.UUID      { return b.professionalID }
func (b *Booking) RatePlanID() uuid.UUID          { return b.ratePlanID }
func (b *Booking) Status() Status                 { return b.status }
func (b *Booking) Subtotal() pricing.Money        { return b.subtotal }
func (b *Booking) TotalClientCost() pricing.Money { return b.totalClientCost }
func (b *Booking) TotalProPayout() pricing.Money  { return b.totalProPayout }
func (b *Booking) CreatedAt() time.Time           { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time           { return b.updatedAt }

// IsParty reports whether userID belongs to either side of the booking.
func (b *Booking) IsParty(userID uuid.UUID) bool {
	return userID == b.clientID || userID == b.professionalID
}

func (b *Booking) IsProfessional(userID uuid.UUID) bool {
	return userID == b.professionalID
}

// SetStatus moves the state machine to status. Validity of the value is
// enforced here; whether the transition is meaningful is the reconciler's
// decision.
func (b *Booking) SetStatus(status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	b.status = status
	return nil
}

// SetRatePlanRef repoints the booking at another rate plan. Derived costs
// are stale until the next resync.
func (b *Booking) SetRatePlanRef(ratePlanID uuid.UUID) {
	b.ratePlanID = ratePlanID
}

// ApplyFinancials mirrors the aggregated summary fields onto the booking.
func (b *Booking) ApplyFinancials(summary Summary) {
	b.subtotal = summary.Subtotal
	b.totalClientCost = summary.TotalClientCost
	b.totalProPayout = summary.TotalProPayout
}
