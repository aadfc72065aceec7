package draft

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"

	"petcare-booking/internal/domain/booking"
	"petcare-booking/internal/domain/pricing"
)

// SchemaVersion is bumped whenever the persisted snapshot shape changes so
// stored blobs can be migrated on read.
const SchemaVersion = 1

var (
	ErrUnknownOccurrence = errors.New("draft does not contain this occurrence")
	ErrStaleSchema       = errors.New("draft snapshot schema is newer than this binary")
)

type PetRef struct {
	ID      uuid.UUID `json:"pet_id"`
	Name    string    `json:"name"`
	Species string    `json:"species"`
	Breed   string    `json:"breed"`
}

// PlanRef freezes the rate-plan values the draft prices against.
type PlanRef struct {
	ID                uuid.UUID           `json:"rate_plan_id"`
	BaseRate          string              `json:"base_rate"`
	AdditionalPetRate string              `json:"additional_pet_rate"`
	HolidayRate       string              `json:"holiday_rate"`
	AppliesAfterPets  int                 `json:"applies_after"`
	Granularity       pricing.Granularity `json:"unit_of_time"`
}

type OccurrenceSnapshot struct {
	ID             uuid.UUID                `json:"occurrence_id"`
	Start          time.Time                `json:"start"`
	End            time.Time                `json:"end"`
	Status         booking.OccurrenceStatus `json:"status"`
	LineItems      []pricing.LineItemRecord `json:"line_items"`
	CalculatedCost string                   `json:"calculated_cost"`
}

// CostSummary is the draft's embedded financial rollup, in wire shape.
type CostSummary struct {
	Subtotal        string `json:"subtotal"`
	PlatformFee     string `json:"platform_fee"`
	Taxes           string `json:"taxes"`
	TotalClientCost string `json:"total_client_cost"`
	TotalProPayout  string `json:"total_sitter_payout"`
	IsProrated      bool   `json:"is_prorated"`
}

// Snapshot is the staged copy of a booking's editable fields. It never
// mutates live occurrence or summary rows; promotion back to the live
// booking happens only through explicit reconciliation.
type Snapshot struct {
	SchemaVersion  int                  `json:"schema_version"`
	BookingID      uuid.UUID            `json:"booking_id"`
	Pets           []PetRef             `json:"pets"`
	RatePlan       PlanRef              `json:"rate_plan"`
	Occurrences    []OccurrenceSnapshot `json:"occurrences"`
	Summary        CostSummary          `json:"cost_summary"`
	OriginalStatus booking.Status       `json:"original_status"`
}

// NewSnapshot captures the live state of a booking into a fresh draft.
// OriginalStatus is set here, exactly once; later patches never overwrite it.
func NewSnapshot(bkg *booking.Booking, plan *pricing.RatePlan, pets []PetRef, occurrences []*booking.Occurrence, summary booking.Summary) *Snapshot {
	occs := make([]OccurrenceSnapshot, len(occurrences))
	for i, occ := range occurrences {
		occs[i] = OccurrenceSnapshot{
			ID:             occ.ID(),
			Start:          occ.Schedule().Start(),
			End:            occ.Schedule().End(),
			Status:         occ.Status(),
			LineItems:      pricing.EncodeLineItems(occ.LineItems()),
			CalculatedCost: occ.CalculatedCost().Text(),
		}
	}

	return &Snapshot{
		SchemaVersion:  SchemaVersion,
		BookingID:      bkg.ID(),
		Pets:           pets,
		RatePlan:       planRef(plan),
		Occurrences:    occs,
		Summary:        EncodeSummary(summary),
		OriginalStatus: bkg.Status(),
	}
}

func planRef(plan *pricing.RatePlan) PlanRef {
	return PlanRef{
		ID:                plan.ID(),
		BaseRate:          plan.BaseRate().Text(),
		AdditionalPetRate: plan.AdditionalPetRate().Text(),
		HolidayRate:       plan.HolidayRate().Text(),
		AppliesAfterPets:  plan.AppliesAfterPets(),
		Granularity:       plan.Granularity(),
	}
}

func EncodeSummary(summary booking.Summary) CostSummary {
	return CostSummary{
		Subtotal:        summary.Subtotal.Text(),
		PlatformFee:     summary.PlatformFee.Text(),
		Taxes:           summary.Taxes.Text(),
		TotalClientCost: summary.TotalClientCost.Text(),
		TotalProPayout:  summary.TotalProPayout.Text(),
		IsProrated:      summary.Prorated,
	}
}

// Clone deep-copies the snapshot so a patch can be applied all-or-nothing:
// the caller mutates the clone and persists it only after recompute
// succeeds, leaving the stored draft untouched on any failure.
func (s *Snapshot) Clone() (*Snapshot, error) {
	var out Snapshot
	if err := copier.CopyWithOption(&out, s, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetPets replaces the staged pet roster.
func (s *Snapshot) SetPets(pets []PetRef) {
	s.Pets = append([]PetRef(nil), pets...)
}

// SetRatePlan re-freezes the staged plan values from a different plan.
func (s *Snapshot) SetRatePlan(plan *pricing.RatePlan) {
	s.RatePlan = planRef(plan)
}

// Reschedule updates the interval of one staged occurrence.
func (s *Snapshot) Reschedule(occurrenceID uuid.UUID, start, end time.Time) error {
	if _, err := pricing.NewSchedule(start, end); err != nil {
		return err
	}
	for i := range s.Occurrences {
		if s.Occurrences[i].ID == occurrenceID {
			s.Occurrences[i].Start = start
			s.Occurrences[i].End = end
			return nil
		}
	}
	return ErrUnknownOccurrence
}

// SortedPets returns the roster ordered by pet id, the normalization both
// sides of reconciliation share.
func (s *Snapshot) SortedPets() []PetRef {
	return SortPets(s.Pets)
}

func SortPets(pets []PetRef) []PetRef {
	out := append([]PetRef(nil), pets...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

// Recompute re-derives every staged occurrence cost and the embedded cost
// summary using the staged plan and pet roster. It is the draft-side run of
// the same resolver and aggregation the live records use.
func (s *Snapshot) Recompute(feePct, taxPct decimal.Decimal, prorated bool) error {
	plan, err := s.stagedPlan()
	if err != nil {
		return err
	}

	occs := make([]*booking.Occurrence, len(s.Occurrences))
	for i := range s.Occurrences {
		occ, err := s.occurrenceEntity(&s.Occurrences[i])
		if err != nil {
			return err
		}
		if err := occ.Resync(plan, len(s.Pets), prorated); err != nil {
			return err
		}
		s.Occurrences[i].LineItems = pricing.EncodeLineItems(occ.LineItems())
		s.Occurrences[i].CalculatedCost = occ.CalculatedCost().Text()
		occs[i] = occ
	}

	s.Summary = EncodeSummary(booking.AggregateSummary(s.BookingID, occs, feePct, taxPct, prorated))
	return nil
}

func (s *Snapshot) stagedPlan() (*pricing.RatePlan, error) {
	baseRate, err := pricing.ParseMoney(s.RatePlan.BaseRate)
	if err != nil {
		return nil, err
	}
	additional, err := pricing.ParseMoney(s.RatePlan.AdditionalPetRate)
	if err != nil {
		return nil, err
	}
	holiday, err := pricing.ParseMoney(s.RatePlan.HolidayRate)
	if err != nil {
		return nil, err
	}
	return pricing.ReconstructRatePlan(
		s.RatePlan.ID, uuid.Nil,
		"staged", "",
		pricing.AnimalOther,
		baseRate, additional, holiday,
		s.RatePlan.AppliesAfterPets,
		s.RatePlan.Granularity,
		time.Time{}, time.Time{},
	), nil
}

func (s *Snapshot) occurrenceEntity(snap *OccurrenceSnapshot) (*booking.Occurrence, error) {
	schedule, err := pricing.NewSchedule(snap.Start, snap.End)
	if err != nil {
		return nil, err
	}
	items, err := pricing.DecodeLineItems(snap.LineItems)
	if err != nil {
		return nil, err
	}
	cost, err := pricing.ParseMoney(snap.CalculatedCost)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructOccurrence(
		snap.ID, s.BookingID,
		schedule,
		snap.Status,
		items,
		booking.Details{},
		cost,
		booking.PartyProfessional, booking.PartyProfessional,
		time.Time{}, time.Time{},
	), nil
}
