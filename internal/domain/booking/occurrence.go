package booking

import (
	"time"

	"github.com/google/uuid"

	"petcare-booking/internal/domain/pricing"
)

// Occurrence is one scheduled interval of a booking, together with its
// line items and the frozen rate details that priced it.
type Occurrence struct {
	id             uuid.UUID
	bookingID      uuid.UUID
	schedule       pricing.Schedule
	status         OccurrenceStatus
	lineItems      []pricing.LineItem
	details        Details
	calculatedCost pricing.Money
	createdBy      Party
	lastModifiedBy Party
	createdAt      time.Time
	updatedAt      time.Time
}

func NewOccurrence(
	id, bookingID uuid.UUID,
	schedule pricing.Schedule,
	status OccurrenceStatus,
	createdBy Party,
) *Occurrence {
	return &Occurrence{
		id:             id,
		bookingID:      bookingID,
		schedule:       schedule,
		status:         status,
		createdBy:      createdBy,
		lastModifiedBy: createdBy,
		calculatedCost: pricing.ZeroMoney(),
	}
}

func ReconstructOccurrence(
	id, bookingID uuid.UUID,
	schedule pricing.Schedule,
	status OccurrenceStatus,
	lineItems []pricing.LineItem,
	details Details,
	calculatedCost pricing.Money,
	createdBy, lastModifiedBy Party,
	createdAt, updatedAt time.Time,
) *Occurrence {
	return &Occurrence{
		id:             id,
		bookingID:      bookingID,
		schedule:       schedule,
		status:         status,
		lineItems:      lineItems,
		details:        details,
		calculatedCost: calculatedCost,
		createdBy:      createdBy,
		lastModifiedBy: lastModifiedBy,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (o *Occurrence) ID() uuid.UUID                 { return o.id }
func (o *Occurrence) BookingID() uuid.UUID          { return o.bookingID }
func (o *Occurrence) Schedule() pricing.Schedule    { return o.schedule }
func (o *Occurrence) Status() OccurrenceStatus      { return o.status }
func (o *Occurrence) LineItems() []pricing.LineItem { return o.lineItems }
func (o *Occurrence) Details() Details              { return o.details }
func (o *Occurrence) CalculatedCost() pricing.Money { return o.calculatedCost }
func (o *Occurrence) CreatedBy() Party              { return o.createdBy }
func (o *Occurrence) LastModifiedBy() Party         { return o.lastModifiedBy }
func (o *Occurrence) CreatedAt() time.Time          { return o.createdAt }
func (o *Occurrence) UpdatedAt() time.Time          { return o.updatedAt }

// Reschedule replaces the occurrence interval. The cost fields go stale
// until the next Resync, which callers run in the same transaction.
func (o *Occurrence) Reschedule(schedule pricing.Schedule, by Party) {
	o.schedule = schedule
	o.lastModifiedBy = by
}

// AddLineItem appends a professional-authored item after uniqueness
// validation against the existing list.
func (o *Occurrence) AddLineItem(item pricing.LineItem, by Party) error {
	next := append(append([]pricing.LineItem(nil), o.lineItems...), item)
	if err := pricing.ValidateUniqueTitles(next); err != nil {
		return err
	}
	o.lineItems = next
	o.lastModifiedBy = by
	return nil
}

// Resync recomputes the occurrence against the live pet roster and rate
// plan. Machine-owned line items are replaced wholesale; every
// professional-authored item passes through unchanged. The whole
// computation re-runs on every trigger, so repeated delivery converges to
// the same stored state.
func (o *Occurrence) Resync(plan *pricing.RatePlan, numPets int, prorated bool) error {
	passthrough := make([]pricing.LineItem, 0, len(o.lineItems))
	for _, li := range o.lineItems {
		if !pricing.IsSynchronizerTitle(li.Title()) {
			passthrough = append(passthrough, li)
		}
	}

	quote, err := pricing.Resolve(o.schedule, plan, numPets, prorated, passthrough)
	if err != nil {
		return err
	}

	o.details = DetailsFromPlan(plan, numPets, prorated)
	o.lineItems = pricing.ReplaceSynchronizerItems(o.lineItems, quote.LineItems)
	o.calculatedCost = quote.Total
	return nil
}

// Finalize marks the occurrence as contributing to the booking summary.
func (o *Occurrence) Finalize(by Party) {
	o.status = OccurrenceFinal
	o.lastModifiedBy = by
}
