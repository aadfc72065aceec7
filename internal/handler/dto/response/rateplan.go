package response

import (
	"time"

	"github.com/google/uuid"

	"petcare-booking/internal/domain/pricing"
)

type RatePlanResponse struct {
	ID                uuid.UUID `json:"rate_plan_id"`
	ProfessionalID    uuid.UUID `json:"professional_id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	AnimalType        string    `json:"animal_type"`
	BaseRate          string    `json:"base_rate"`
	AdditionalPetRate string    `json:"additional_pet_rate"`
	HolidayRate       string    `json:"holiday_rate"`
	AppliesAfterPets  int       `json:"applies_after"`
	Granularity       string    `json:"unit_of_time"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromRatePlan(plan *pricing.RatePlan) *RatePlanResponse {
	return &RatePlanResponse{
		ID:                plan.ID(),
		ProfessionalID:    plan.ProfessionalID(),
		Name:              plan.Name(),
		Description:       plan.Description(),
		AnimalType:        string(plan.AnimalType()),
		BaseRate:          plan.BaseRate().Text(),
		AdditionalPetRate: plan.AdditionalPetRate().Text(),
		HolidayRate:       plan.HolidayRate().Text(),
		AppliesAfterPets:  plan.AppliesAfterPets(),
		Granularity:       string(plan.Granularity()),
		CreatedAt:         plan.CreatedAt(),
		UpdatedAt:         plan.UpdatedAt(),
	}
}
