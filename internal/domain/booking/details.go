package booking

import (
	"time"

	"github.com/google/uuid"

	"petcare-booking/internal/domain/pricing"
)

// Details is the frozen-at-compute-time copy of the rate values and pet
// count that applied when an occurrence's cost was last computed. It is a
// copy, not a live pointer, so historical costs stay stable if the rate
// plan is edited later.
type Details struct {
	NumPets           int
	BaseRate          pricing.Money
	AdditionalPetRate pricing.Money
	HolidayRate       pricing.Money
	AppliesAfterPets  int
	Granularity       pricing.Granularity
	Prorated          bool
}

func DetailsFromPlan(plan *pricing.RatePlan, numPets int, prorated bool) Details {
	return Details{
		NumPets:           numPets,
		BaseRate:          plan.BaseRate(),
		AdditionalPetRate: plan.AdditionalPetRate(),
		HolidayRate:       plan.HolidayRate(),
		AppliesAfterPets:  plan.AppliesAfterPets(),
		Granularity:       plan.Granularity(),
		Prorated:          prorated,
	}
}

// Plan rebuilds a throwaway rate plan from the frozen values so stored
// details can be re-priced without touching the live plan.
func (d Details) Plan() *pricing.RatePlan {
	return pricing.ReconstructRatePlan(
		uuid.Nil, uuid.Nil,
		"frozen", "",
		pricing.AnimalOther,
		d.BaseRate, d.AdditionalPetRate, d.HolidayRate,
		d.AppliesAfterPets,
		d.Granularity,
		time.Time{}, time.Time{},
	)
}
