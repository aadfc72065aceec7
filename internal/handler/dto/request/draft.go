package request

import (
	"time"

	"github.com/google/uuid"

	"petcare-booking/internal/domain/draft"
)

// DraftPatchRequest stages one edit to the booking draft. Exactly one of
// the three fields may be present; the usecase rejects anything else.
type DraftPatchRequest struct {
	Pets        *[]uuid.UUID          `json:"pets,omitempty"`
	RatePlanID  *uuid.UUID            `json:"rate_plan_id,omitempty"`
	Occurrences *[]OccurrencePatchDTO `json:"occurrences,omitempty"`
}

type OccurrencePatchDTO struct {
	OccurrenceID uuid.UUID `json:"occurrence_id" binding:"required"`
	Start        time.Time `json:"start" binding:"required"`
	End          time.Time `json:"end" binding:"required"`
}

func (r DraftPatchRequest) ToDomain() draft.Patch {
	var p draft.Patch
	if r.Pets != nil {
		refs := make([]draft.PetRef, len(*r.Pets))
		for i, id := range *r.Pets {
			refs[i] = draft.PetRef{ID: id}
		}
		p.Pets = &refs
	}
	if r.RatePlanID != nil {
		p.RatePlanID = r.RatePlanID
	}
	if r.Occurrences != nil {
		patches := make([]draft.SchedulePatch, len(*r.Occurrences))
		for i, o := range *r.Occurrences {
			patches[i] = draft.SchedulePatch{
				OccurrenceID: o.OccurrenceID,
				Start:        o.Start,
				End:          o.End,
			}
		}
		p.Occurrences = &patches
	}
	return p
}
