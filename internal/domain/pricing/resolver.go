package pricing

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidSchedule = errors.New("schedule end must be after start")

// Schedule is one scheduled interval of an occurrence.
type Schedule struct {
	start time.Time
	end   time.Time
}

func NewSchedule(start, end time.Time) (Schedule, error) {
	if !end.After(start) {
		return Schedule{}, ErrInvalidSchedule
	}
	return Schedule{start: start, end: end}, nil
}

func (s Schedule) Start() time.Time        { return s.start }
func (s Schedule) End() time.Time          { return s.end }
func (s Schedule) Duration() time.Duration { return s.end.Sub(s.start) }

// Quote is the resolved cost of a single occurrence.
//
// TimeUnits carries 3 decimal digits when prorated, otherwise a whole
// number. BaseCost and every line-item amount are quantized to 2 decimals.
// LineItems holds only the machine-generated items; Total additionally
// includes professional-authored items supplied via extra.
type Quote struct {
	TimeUnits decimal.Decimal
	BaseCost  Money
	LineItems []LineItem
	Total     Money
}

// Resolve converts a schedule plus a rate plan into line-item costs and a
// total for one occurrence.
//
// The additional-pet surcharge applies only when petCount exceeds the plan
// threshold, and is emitted as its own line item rather than folded into the
// base cost. Professional-authored items (holiday surcharges and the like)
// are passed in via extra and contribute to the total unchanged.
func Resolve(schedule Schedule, plan *RatePlan, petCount int, prorated bool, extra []LineItem) (Quote, error) {
	unitLength, err := plan.Granularity().UnitLength()
	if err != nil {
		return Quote{}, err
	}

	units := timeUnits(schedule.Duration(), unitLength, prorated)

	baseCost := plan.BaseRate().Mul(units)
	baseItem := LineItem{
		title:       TitleBookingDetailsCost,
		description: "Calculated cost of the base rate for the scheduled time",
		amount:      baseCost,
	}

	computed := []LineItem{baseItem}
	if extraPets := petCount - plan.AppliesAfterPets(); extraPets > 0 {
		surcharge := plan.AdditionalPetRate().Mul(decimal.NewFromInt(int64(extraPets))).Mul(units)
		computed = append(computed, LineItem{
			title:       TitleAdditionalPetRate,
			description: "Additional rate for pets beyond the plan threshold",
			amount:      surcharge,
		})
	}

	total := baseCost
	for _, li := range computed[1:] {
		total = total.Add(li.amount)
	}
	for _, li := range extra {
		if li.amount.IsNegative() {
			return Quote{}, ErrNegativeAmount
		}
		total = total.Add(li.amount)
	}

	return Quote{
		TimeUnits: units,
		BaseCost:  baseCost,
		LineItems: computed,
		Total:     total,
	}, nil
}

// timeUnits divides the occurrence duration by the billing unit length.
// Prorated keeps 3 decimal digits (half-up); otherwise the value rounds to
// the nearest whole unit.
func timeUnits(duration, unitLength time.Duration, prorated bool) decimal.Decimal {
	units := decimal.NewFromInt(int64(duration / time.Second)).
		Div(decimal.NewFromInt(int64(unitLength / time.Second)))
	if prorated {
		return units.Round(3)
	}
	return units.Round(0)
}
