package commands

import (
	"context"

	"github.com/google/uuid"

	"petcare-booking/internal/domain/booking"
	"petcare-booking/internal/domain/pricing"
	"petcare-booking/internal/infra"
	"petcare-booking/internal/pkg/errs"
	"petcare-booking/internal/pkg/patch"
	"petcare-booking/internal/usecase/shared"
)

// UpdateRatePlanParams is a partial update: nil fields keep the plan's
// current value.
type UpdateRatePlanParams struct {
	BaseRate          *pricing.Money
	AdditionalPetRate *pricing.Money
	HolidayRate       *pricing.Money
	AppliesAfterPets  *int
	Granularity       *pricing.Granularity
}

type RatePlanCommands interface {
	// UpdateRatePlan applies a professional edit and propagates it through
	// every active booking referencing the plan: full occurrence resync
	// plus summary rollup, one transaction per booking.
	UpdateRatePlan(ctx context.Context, planID, actorID uuid.UUID, params UpdateRatePlanParams) (*pricing.RatePlan, error)
}

type ratePlanCommandsImpl struct {
	uow    shared.UnitOfWork
	policy PricingPolicy
}

func NewRatePlanCommands(uow shared.UnitOfWork, policy PricingPolicy) RatePlanCommands {
	return &ratePlanCommandsImpl{uow: uow, policy: policy}
}

func (c *ratePlanCommandsImpl) UpdateRatePlan(ctx context.Context, planID, actorID uuid.UUID, params UpdateRatePlanParams) (*pricing.RatePlan, error) {
	var (
		plan       *pricing.RatePlan
		bookingIDs []uuid.UUID
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		plan, err = tx.RatePlans().FindByID(ctx, planID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrRatePlanNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if plan.ProfessionalID() != actorID {
			return errs.ErrNotPlanOwner
		}
		if err := plan.UpdateRates(
			patch.Coalesce(params.BaseRate, plan.BaseRate()),
			patch.Coalesce(params.AdditionalPetRate, plan.AdditionalPetRate()),
			patch.Coalesce(params.HolidayRate, plan.HolidayRate()),
			patch.Coalesce(params.AppliesAfterPets, plan.AppliesAfterPets()),
			patch.Coalesce(params.Granularity, plan.Granularity()),
		); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.RatePlans().Update(ctx, plan); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		bookingIDs, err = tx.Bookings().ListIDsByRatePlan(ctx, planID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// One transaction per booking keeps the plan edit and each booking's
	// derived rewrite independently atomic; a replay converges because the
	// resync is idempotent.
	for _, bookingID := range bookingIDs {
		err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			bkg, err := findBookingForUpdate(ctx, tx, bookingID)
			if err != nil {
				return err
			}
			if bkg.Status().IsTerminal() && bkg.Status() != booking.StatusConfirmed {
				// Cancelled, denied, and completed bookings keep their
				// historical costs.
				return nil
			}
			return resyncAndAggregate(ctx, tx, bkg, c.policy)
		})
		if err != nil {
			return nil, err
		}
	}
	return plan, nil
}
