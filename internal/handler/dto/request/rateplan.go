package request

import (
	"petcare-booking/internal/domain/pricing"
	"petcare-booking/internal/usecase/commands"
)

// UpdateRatePlanRequest is a partial update; omitted fields keep their
// current value. Monetary fields are decimal strings, optionally
// currency-prefixed.
type UpdateRatePlanRequest struct {
	BaseRate          *string `json:"base_rate,omitempty"`
	AdditionalPetRate *string `json:"additional_pet_rate,omitempty"`
	HolidayRate       *string `json:"holiday_rate,omitempty"`
	AppliesAfterPets  *int    `json:"applies_after,omitempty"`
	Granularity       *string `json:"unit_of_time,omitempty"`
}

func (r UpdateRatePlanRequest) ToParams() (commands.UpdateRatePlanParams, error) {
	var params commands.UpdateRatePlanParams

	for _, field := range []struct {
		src *string
		dst **pricing.Money
	}{
		{r.BaseRate, &params.BaseRate},
		{r.AdditionalPetRate, &params.AdditionalPetRate},
		{r.HolidayRate, &params.HolidayRate},
	} {
		if field.src == nil {
			continue
		}
		amount, err := pricing.ParseMoney(*field.src)
		if err != nil {
			return commands.UpdateRatePlanParams{}, err
		}
		*field.dst = &amount
	}

	params.AppliesAfterPets = r.AppliesAfterPets

	if r.Granularity != nil {
		g := pricing.Granularity(*r.Granularity)
		if !g.IsValid() {
			return commands.UpdateRatePlanParams{}, pricing.ErrUnsupportedGranularity
		}
		params.Granularity = &g
	}
	return params, nil
}
