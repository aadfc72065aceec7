//go:build unit

package commands_test

import (
	"context"
	"testing"

	"petcare-booking/internal/domain/booking"
	"petcare-booking/internal/domain/pricing"
	"petcare-booking/internal/pkg/errs"
	"petcare-booking/internal/usecase/commands"
	"petcare-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateRatePlan(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update keeps omitted fields and reprices active bookings", func(t *testing.T) {
		fx := syncFixture(t)
		cmds := commands.NewRatePlanCommands(fx.uow(), testPolicy())

		newBase := mustMoney(t, "40.00")
		plan, err := cmds.UpdateRatePlan(ctx, fx.booking.RatePlanID(), fx.booking.ProfessionalID(),
			commands.UpdateRatePlanParams{BaseRate: &newBase})
		require.NoError(t, err)

		assert.Equal(t, "40.00", plan.BaseRate().Text())
		assert.Equal(t, "5.00", plan.AdditionalPetRate().Text())
		assert.Equal(t, pricing.GranularityHour, plan.Granularity())

		// the booking on the plan was re-derived under the new base rate
		require.Len(t, fx.summaryUpserts, 1)
		assert.Equal(t, "40.00", fx.summaryUpserts[0].Subtotal.Text())
		assert.Equal(t, "40.00", fx.booking.Subtotal().Text())
	})

	t.Run("cancelled bookings keep their historical costs", func(t *testing.T) {
		fx := syncFixture(t)
		require.NoError(t, fx.booking.SetStatus(booking.StatusCancelled))
		cmds := commands.NewRatePlanCommands(fx.uow(), testPolicy())

		newBase := mustMoney(t, "40.00")
		_, err := cmds.UpdateRatePlan(ctx, fx.booking.RatePlanID(), fx.booking.ProfessionalID(),
			commands.UpdateRatePlanParams{BaseRate: &newBase})
		require.NoError(t, err)

		assert.Empty(t, fx.summaryUpserts)
		assert.Zero(t, fx.occurrenceSaves)
	})

	t.Run("confirmed bookings are still repriced", func(t *testing.T) {
		fx := syncFixture(t)
		require.NoError(t, fx.booking.SetStatus(booking.StatusConfirmed))
		cmds := commands.NewRatePlanCommands(fx.uow(), testPolicy())

		granularity := pricing.GranularityThirtyMin
		_, err := cmds.UpdateRatePlan(ctx, fx.booking.RatePlanID(), fx.booking.ProfessionalID(),
			commands.UpdateRatePlanParams{Granularity: &granularity})
		require.NoError(t, err)

		// one hour at $20.00 per 30-minute unit
		require.Len(t, fx.summaryUpserts, 1)
		assert.Equal(t, "40.00", fx.summaryUpserts[0].Subtotal.Text())
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		fx := syncFixture(t)
		cmds := commands.NewRatePlanCommands(fx.uow(), testPolicy())

		newBase := mustMoney(t, "40.00")
		_, err := cmds.UpdateRatePlan(ctx, fx.booking.RatePlanID(), uuid.New(),
			commands.UpdateRatePlanParams{BaseRate: &newBase})
		assert.ErrorIs(t, err, errs.ErrNotPlanOwner)
	})

	t.Run("negative rate fails domain validation", func(t *testing.T) {
		fx := syncFixture(t)
		cmds := commands.NewRatePlanCommands(fx.uow(), testPolicy())

		negative := mustMoney(t, "-5.00")
		_, err := cmds.UpdateRatePlan(ctx, fx.booking.RatePlanID(), fx.booking.ProfessionalID(),
			commands.UpdateRatePlanParams{HolidayRate: &negative})
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("unknown plan", func(t *testing.T) {
		fx := syncFixture(t)
		cmds := commands.NewRatePlanCommands(fx.uow(), testPolicy())

		newPlan := builder.NewRatePlanBuilder().BuildDomain()
		newBase := mustMoney(t, "40.00")
		_, err := cmds.UpdateRatePlan(ctx, newPlan.ID(), fx.booking.ProfessionalID(),
			commands.UpdateRatePlanParams{BaseRate: &newBase})
		assert.ErrorIs(t, err, errs.ErrRatePlanNotFound)
	})
}
