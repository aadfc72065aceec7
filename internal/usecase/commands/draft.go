package commands

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"petcare-booking/internal/domain/booking"
	"petcare-booking/internal/domain/draft"
	"petcare-booking/internal/domain/pricing"
	"petcare-booking/internal/infra"
	"petcare-booking/internal/pkg/errs"
	"petcare-booking/internal/usecase/shared"
)

type PatchResult struct {
	BookingStatus booking.Status
	StatusChanged bool
	Draft         *draft.Snapshot
}

type DraftCommands interface {
	// ApplyPatch stages a single-field edit, re-derives the draft's
	// occurrence costs and cost summary, and reconciles the staged pet
	// roster against the live one to drive the booking status.
	ApplyPatch(ctx context.Context, bookingID, actorID uuid.UUID, patch draft.Patch) (*PatchResult, error)
	// PromoteDraft writes the staged roster, plan ref, and occurrence
	// schedules back to the live booking, recomputes the live summary,
	// and deletes the draft.
	PromoteDraft(ctx context.Context, bookingID, actorID uuid.UUID) error
	// DiscardDraft drops the staged snapshot without touching live rows.
	DiscardDraft(ctx context.Context, bookingID, actorID uuid.UUID) error
}

type draftCommandsImpl struct {
	uow    shared.UnitOfWork
	policy PricingPolicy
}

func NewDraftCommands(uow shared.UnitOfWork, policy PricingPolicy) DraftCommands {
	return &draftCommandsImpl{uow: uow, policy: policy}
}

func (c *draftCommandsImpl) ApplyPatch(ctx context.Context, bookingID, actorID uuid.UUID, patch draft.Patch) (*PatchResult, error) {
	if err := patch.Validate(); err != nil {
		return nil, errs.Mark(err, errs.ErrMultiFieldPatch)
	}

	var result *PatchResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		bkg, err := c.lockEditableBooking(ctx, tx, bookingID, actorID)
		if err != nil {
			return err
		}

		snap, err := c.loadOrCreateDraft(ctx, tx, bkg)
		if err != nil {
			return err
		}

		// Patch a deep copy so a failed recompute leaves the persisted
		// draft exactly as it was.
		work, err := snap.Clone()
		if err != nil {
			return errs.Mark(err, errs.ErrComputation)
		}
		if err := c.applyToSnapshot(ctx, tx, bkg, work, patch); err != nil {
			return err
		}
		if err := work.Recompute(c.policy.FeePct, c.policy.TaxPct, c.policy.Prorated); err != nil {
			return errs.Mark(err, errs.ErrComputation)
		}

		livePets, err := tx.Pets().ListByBooking(ctx, bookingID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		decision := draft.ReconcileStatus(work.Pets, livePets, bkg.Status(), work.OriginalStatus)
		if decision.Status != bkg.Status() {
			if err := bkg.SetStatus(decision.Status); err != nil {
				return errs.Mark(err, errs.ErrComputation)
			}
			if err := tx.Bookings().UpdateStatus(ctx, bookingID, decision.Status); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		if err := tx.Drafts().Save(ctx, work); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		result = &PatchResult{
			BookingStatus: bkg.Status(),
			StatusChanged: decision.Changed,
			Draft:         work,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *draftCommandsImpl) PromoteDraft(ctx context.Context, bookingID, actorID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		bkg, err := c.lockEditableBooking(ctx, tx, bookingID, actorID)
		if err != nil {
			return err
		}

		snap, err := tx.Drafts().FindByBooking(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrDraftNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		occs, err := tx.Occurrences().ListByBooking(ctx, bookingID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		byID := make(map[uuid.UUID]*booking.Occurrence, len(occs))
		for _, occ := range occs {
			byID[occ.ID()] = occ
		}

		// Staged pets replace the live roster before the live records are
		// re-derived from it.
		if err := c.replaceLivePets(ctx, tx, bookingID, snap.Pets); err != nil {
			return err
		}

		for i := range snap.Occurrences {
			staged := &snap.Occurrences[i]
			occ, ok := byID[staged.ID]
			if !ok {
				return errs.ErrOccurrenceNotFound
			}
			schedule, err := pricing.NewSchedule(staged.Start, staged.End)
			if err != nil {
				return errs.Mark(err, errs.ErrComputation)
			}
			occ.Reschedule(schedule, booking.PartyProfessional)
		}

		// A staged plan switch must land on the live booking before the
		// resync below re-prices from bkg's plan ref.
		if snap.RatePlan.ID != bkg.RatePlanID() {
			bkg.SetRatePlanRef(snap.RatePlan.ID)
			if err := tx.Bookings().UpdateRatePlanRef(ctx, bookingID, snap.RatePlan.ID); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		if err := resyncAndAggregate(ctx, tx, bkg, c.policy); err != nil {
			return err
		}

		if bkg.Status() != booking.StatusPendingClientApproval {
			if err := bkg.SetStatus(booking.StatusPendingClientApproval); err != nil {
				return errs.Mark(err, errs.ErrComputation)
			}
			if err := tx.Bookings().UpdateStatus(ctx, bookingID, booking.StatusPendingClientApproval); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		if err := tx.Drafts().DeleteByBooking(ctx, bookingID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *draftCommandsImpl) DiscardDraft(ctx context.Context, bookingID, actorID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		bkg, err := findBookingForUpdate(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if !bkg.IsParty(actorID) {
			return errs.ErrNotBookingParty
		}
		if err := tx.Drafts().DeleteByBooking(ctx, bookingID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *draftCommandsImpl) lockEditableBooking(ctx context.Context, tx shared.Tx, bookingID, actorID uuid.UUID) (*booking.Booking, error) {
	bkg, err := findBookingForUpdate(ctx, tx, bookingID)
	if err != nil {
		return nil, err
	}
	if !bkg.IsProfessional(actorID) {
		return nil, errs.ErrNotBookingParty
	}
	if !bkg.Status().IsEditable() {
		return nil, errs.ErrBookingNotEditable
	}
	return bkg, nil
}

// loadOrCreateDraft returns the stored snapshot unchanged when one exists,
// otherwise captures the live booking into a fresh one. original_status is
// recorded only on this first capture.
func (c *draftCommandsImpl) loadOrCreateDraft(ctx context.Context, tx shared.Tx, bkg *booking.Booking) (*draft.Snapshot, error) {
	snap, err := tx.Drafts().FindByBooking(ctx, bkg.ID())
	if err == nil {
		return snap, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	plan, err := tx.RatePlans().FindByID(ctx, bkg.RatePlanID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRatePlanNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	pets, err := tx.Pets().ListByBooking(ctx, bkg.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	occs, err := tx.Occurrences().ListByBooking(ctx, bkg.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	summary := booking.AggregateSummary(bkg.ID(), occs, c.policy.FeePct, c.policy.TaxPct, c.policy.Prorated)
	return draft.NewSnapshot(bkg, plan, pets, occs, summary), nil
}

func (c *draftCommandsImpl) applyToSnapshot(ctx context.Context, tx shared.Tx, bkg *booking.Booking, work *draft.Snapshot, patch draft.Patch) error {
	switch patch.Kind() {
	case draft.PatchPets:
		// Requests carry pet ids only; resolve them against the client's
		// roster so the snapshot stores full refs.
		roster, err := tx.Pets().ListByClient(ctx, bkg.ClientID())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		byID := make(map[uuid.UUID]draft.PetRef, len(roster))
		for _, p := range roster {
			byID[p.ID] = p
		}
		resolved := make([]draft.PetRef, 0, len(*patch.Pets))
		for _, p := range *patch.Pets {
			ref, ok := byID[p.ID]
			if !ok {
				return errs.ErrPetNotFound
			}
			resolved = append(resolved, ref)
		}
		work.SetPets(resolved)
	case draft.PatchRatePlan:
		plan, err := tx.RatePlans().FindByID(ctx, *patch.RatePlanID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrRatePlanNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if plan.ProfessionalID() != bkg.ProfessionalID() {
			return errs.ErrNotPlanOwner
		}
		work.SetRatePlan(plan)
	case draft.PatchSchedule:
		for _, sp := range *patch.Occurrences {
			if err := work.Reschedule(sp.OccurrenceID, sp.Start, sp.End); err != nil {
				if errors.Is(err, draft.ErrUnknownOccurrence) {
					return errs.ErrOccurrenceNotFound
				}
				return errs.Mark(err, errs.ErrDomainValidation)
			}
		}
	}
	return nil
}

func (c *draftCommandsImpl) replaceLivePets(ctx context.Context, tx shared.Tx, bookingID uuid.UUID, staged []draft.PetRef) error {
	live, err := tx.Pets().ListByBooking(ctx, bookingID)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	stagedIDs := make(map[uuid.UUID]struct{}, len(staged))
	for _, p := range staged {
		stagedIDs[p.ID] = struct{}{}
	}
	liveIDs := make(map[uuid.UUID]struct{}, len(live))
	for _, p := range live {
		liveIDs[p.ID] = struct{}{}
		if _, keep := stagedIDs[p.ID]; !keep {
			if err := tx.Pets().Remove(ctx, bookingID, p.ID); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
	}
	for _, p := range staged {
		if _, present := liveIDs[p.ID]; !present {
			if err := tx.Pets().Add(ctx, bookingID, p.ID); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
	}
	return nil
}
