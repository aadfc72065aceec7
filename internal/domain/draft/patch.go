package draft

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrMultiFieldPatch = errors.New("patch must set exactly one of pets, rate_plan_id, or occurrences")

type PatchKind string

const (
	PatchPets     PatchKind = "pets"
	PatchRatePlan PatchKind = "rate_plan"
	PatchSchedule PatchKind = "schedule"
)

type SchedulePatch struct {
	OccurrenceID uuid.UUID
	Start        time.Time
	End          time.Time
}

// Patch is a single-field edit to the staged snapshot. Exactly one of the
// three pointers may be set.
type Patch struct {
	Pets        *[]PetRef
	RatePlanID  *uuid.UUID
	Occurrences *[]SchedulePatch
}

func (p Patch) Validate() error {
	set := 0
	if p.Pets != nil {
		set++
	}
	if p.RatePlanID != nil {
		set++
	}
	if p.Occurrences != nil {
		set++
	}
	if set != 1 {
		return ErrMultiFieldPatch
	}
	return nil
}

// Kind reports which field the patch stages. Only meaningful after
// Validate has passed.
func (p Patch) Kind() PatchKind {
	switch {
	case p.Pets != nil:
		return PatchPets
	case p.RatePlanID != nil:
		return PatchRatePlan
	default:
		return PatchSchedule
	}
}
