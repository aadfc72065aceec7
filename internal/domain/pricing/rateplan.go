package pricing

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUnsupportedGranularity = errors.New("unsupported time-unit granularity")
	ErrMissingPlanField       = errors.New("missing required rate plan field")
)

// Granularity is the billing time unit of a rate plan.
type Granularity string

const (
	GranularityFifteenMin Granularity = "15_MIN"
	GranularityThirtyMin  Granularity = "30_MIN"
	GranularityHour       Granularity = "1_HOUR"
	GranularityDay        Granularity = "DAY"
	GranularityWeek       Granularity = "WEEK"
)

// UnitLength returns the wall-clock length of one billing unit. Callers must
// surface ErrUnsupportedGranularity, never substitute a default unit.
func (g Granularity) UnitLength() (time.Duration, error) {
	switch g {
	case GranularityFifteenMin:
		return 15 * time.Minute, nil
	case GranularityThirtyMin:
		return 30 * time.Minute, nil
	case GranularityHour:
		return time.Hour, nil
	case GranularityDay:
		return 24 * time.Hour, nil
	case GranularityWeek:
		return 7 * 24 * time.Hour, nil
	default:
		return 0, ErrUnsupportedGranularity
	}
}

func (g Granularity) IsValid() bool {
	_, err := g.UnitLength()
	return err == nil
}

type AnimalType string

const (
	AnimalDog    AnimalType = "DOG"
	AnimalCat    AnimalType = "CAT"
	AnimalExotic AnimalType = "EXOTIC"
	AnimalFarm   AnimalType = "FARM"
	AnimalOther  AnimalType = "OTHER"
)

// RatePlan is a professional-owned pricing template. Once a booking
// references a plan the values frozen into its occurrence details stay
// stable; only an explicit professional edit changes the plan itself.
type RatePlan struct {
	id                uuid.UUID
	professionalID    uuid.UUID
	name              string
	description       string
	animalType        AnimalType
	baseRate          Money
	additionalPetRate Money
	holidayRate       Money
	appliesAfterPets  int
	granularity       Granularity
	createdAt         time.Time
	updatedAt         time.Time
}

func NewRatePlan(
	id, professionalID uuid.UUID,
	name, description string,
	animalType AnimalType,
	baseRate, additionalPetRate, holidayRate Money,
	appliesAfterPets int,
	granularity Granularity,
) (*RatePlan, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingPlanField
	}
	if !granularity.IsValid() {
		return nil, ErrUnsupportedGranularity
	}
	if baseRate.IsNegative() || additionalPetRate.IsNegative() || holidayRate.IsNegative() {
		return nil, ErrNegativeAmount
	}
	if appliesAfterPets < 1 {
		appliesAfterPets = 1
	}
	return &RatePlan{
		id:                id,
		professionalID:    professionalID,
		name:              name,
		description:       description,
		animalType:        animalType,
		baseRate:          baseRate,
		additionalPetRate: additionalPetRate,
		holidayRate:       holidayRate,
		appliesAfterPets:  appliesAfterPets,
		granularity:       granularity,
	}, nil
}

func ReconstructRatePlan(
	id, professionalID uuid.UUID,
	name, description string,
	animalType AnimalType,
	baseRate, additionalPetRate, holidayRate Money,
	appliesAfterPets int,
	granularity Granularity,
	createdAt, updatedAt time.Time,
) *RatePlan {
	return &RatePlan{
		id:                id,
		professionalID:    professionalID,
		name:              name,
		description:       description,
		animalType:        animalType,
		baseRate:          baseRate,
		additionalPetRate: additionalPetRate,
		holidayRate:       holidayRate,
		appliesAfterPets:  appliesAfterPets,
		granularity:       granularity,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (p *RatePlan) ID() uuid.UUID             { return p.id }
func (p *RatePlan) ProfessionalID() uuid.UUID { return p.professionalID }
func (p *RatePlan) Name() string              { return p.name }
func (p *RatePlan) Description() string       { return p.description }
func (p *RatePlan) AnimalType() AnimalType    { return p.animalType }
func (p *RatePlan) BaseRate() Money           { return p.baseRate }
func (p *RatePlan) AdditionalPetRate() Money  { return p.additionalPetRate }
func (p *RatePlan) HolidayRate() Money        { return p.holidayRate }
func (p *RatePlan) AppliesAfterPets() int     { return p.appliesAfterPets }
func (p *RatePlan) Granularity() Granularity  { return p.granularity }
func (p *RatePlan) CreatedAt() time.Time      { return p.createdAt }
func (p *RatePlan) UpdatedAt() time.Time      { return p.updatedAt }

// UpdateRates applies a professional edit to the plan's pricing fields.
func (p *RatePlan) UpdateRates(baseRate, additionalPetRate, holidayRate Money, appliesAfterPets int, granularity Granularity) error {
	if !granularity.IsValid() {
		return ErrUnsupportedGranularity
	}
	if baseRate.IsNegative() || additionalPetRate.IsNegative() || holidayRate.IsNegative() {
		return ErrNegativeAmount
	}
	if appliesAfterPets < 1 {
		appliesAfterPets = 1
	}
	p.baseRate = baseRate
	p.additionalPetRate = additionalPetRate
	p.holidayRate = holidayRate
	p.appliesAfterPets = appliesAfterPets
	p.granularity = granularity
	return nil
}
