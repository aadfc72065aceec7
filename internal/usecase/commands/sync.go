package commands

import (
	"context"

	"github.com/google/uuid"

	"petcare-booking/internal/domain/booking"
	"petcare-booking/internal/infra"
	"petcare-booking/internal/pkg/errs"
	"petcare-booking/internal/usecase/shared"
)

// BookingSyncCommands covers live (non-draft) mutations that must keep the
// booking's derived records consistent: every trigger re-runs the full
// occurrence resync and the summary rollup inside one transaction.
type BookingSyncCommands interface {
	AddPet(ctx context.Context, bookingID, actorID, petID uuid.UUID) error
	RemovePet(ctx context.Context, bookingID, actorID, petID uuid.UUID) error
	// Resync re-derives all occurrences and the summary from current
	// stored inputs. Safe to deliver more than once.
	Resync(ctx context.Context, bookingID, actorID uuid.UUID) error
}

type bookingSyncImpl struct {
	uow    shared.UnitOfWork
	policy PricingPolicy
}

func NewBookingSyncCommands(uow shared.UnitOfWork, policy PricingPolicy) BookingSyncCommands {
	return &bookingSyncImpl{uow: uow, policy: policy}
}

func (c *bookingSyncImpl) AddPet(ctx context.Context, bookingID, actorID, petID uuid.UUID) error {
	return c.mutateRoster(ctx, bookingID, actorID, func(ctx context.Context, tx shared.Tx) error {
		return tx.Pets().Add(ctx, bookingID, petID)
	})
}

func (c *bookingSyncImpl) RemovePet(ctx context.Context, bookingID, actorID, petID uuid.UUID) error {
	return c.mutateRoster(ctx, bookingID, actorID, func(ctx context.Context, tx shared.Tx) error {
		return tx.Pets().Remove(ctx, bookingID, petID)
	})
}

func (c *bookingSyncImpl) Resync(ctx context.Context, bookingID, actorID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		bkg, err := findBookingForUpdate(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if !bkg.IsParty(actorID) {
			return errs.ErrNotBookingParty
		}
		return resyncAndAggregate(ctx, tx, bkg, c.policy)
	})
}

func (c *bookingSyncImpl) mutateRoster(ctx context.Context, bookingID, actorID uuid.UUID, mutate func(ctx context.Context, tx shared.Tx) error) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		bkg, err := findBookingForUpdate(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if !bkg.IsParty(actorID) {
			return errs.ErrNotBookingParty
		}
		if !bkg.Status().IsEditable() {
			return errs.ErrBookingNotEditable
		}
		if err := mutate(ctx, tx); err != nil {
			switch {
			case infra.IsKind(err, infra.KindDuplicateKey):
				// roster already holds the pet; the resync below still
				// converges derived records
			case infra.IsKind(err, infra.KindNotFound), infra.IsKind(err, infra.KindForeignKeyViolated):
				return errs.ErrPetNotFound
			default:
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
		return resyncAndAggregate(ctx, tx, bkg, c.policy)
	})
}

func findBookingForUpdate(ctx context.Context, tx shared.Tx, bookingID uuid.UUID) (*booking.Booking, error) {
	bkg, err := tx.Bookings().FindForUpdate(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return bkg, nil
}

// resyncAndAggregate is the explicit trigger chain:
// pets -> details -> line items -> summary -> booking financial mirror,
// run deterministically by the mutating call site instead of implicit
// save hooks.
func resyncAndAggregate(ctx context.Context, tx shared.Tx, bkg *booking.Booking, policy PricingPolicy) error {
	plan, err := tx.RatePlans().FindByID(ctx, bkg.RatePlanID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrRatePlanNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	pets, err := tx.Pets().ListByBooking(ctx, bkg.ID())
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	occs, err := tx.Occurrences().ListByBooking(ctx, bkg.ID())
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	for _, occ := range occs {
		if err := occ.Resync(plan, len(pets), policy.Prorated); err != nil {
			return errs.Mark(err, errs.ErrComputation)
		}
		if err := tx.Occurrences().Save(ctx, occ); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	summary := booking.AggregateSummary(bkg.ID(), occs, policy.FeePct, policy.TaxPct, policy.Prorated)
	if err := tx.Summaries().Upsert(ctx, summary); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	bkg.ApplyFinancials(summary)
	if err := tx.Bookings().UpdateFinancials(ctx, bkg); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
