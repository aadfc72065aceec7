//go:build unit

package commands_test

import (
	"context"
	"testing"

	"petcare-booking/internal/domain/booking"
	"petcare-booking/internal/pkg/errs"
	"petcare-booking/internal/usecase/commands"
	"petcare-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func syncFixture(t *testing.T) *fixture {
	t.Helper()
	fx := newFixture()
	fx.attachPet(builder.NewPetRef("Mochi"))

	occ, err := builder.NewOccurrenceBuilder(fx.booking.ID()).BuildDomain()
	require.NoError(t, err)
	fx.addOccurrence(occ)
	return fx
}

func TestAddPet(t *testing.T) {
	ctx := context.Background()

	t.Run("attaches the pet and re-derives everything", func(t *testing.T) {
		fx := syncFixture(t)
		extra := builder.NewPetRef("Pip")
		fx.ownPet(extra)
		cmds := commands.NewBookingSyncCommands(fx.uow(), testPolicy())

		require.NoError(t, cmds.AddPet(ctx, fx.booking.ID(), fx.booking.ClientID(), extra.ID))

		assert.Len(t, fx.live, 2)
		assert.Equal(t, 1, fx.occurrenceSaves)
		require.Len(t, fx.summaryUpserts, 1)
		// $20.00 base + $5.00 second-pet surcharge, 10% fee, 8% tax
		assert.Equal(t, "25.00", fx.summaryUpserts[0].Subtotal.Text())
		assert.Equal(t, "29.50", fx.summaryUpserts[0].TotalClientCost.Text())
		assert.Equal(t, "22.50", fx.summaryUpserts[0].TotalProPayout.Text())
		assert.Equal(t, "25.00", fx.booking.Subtotal().Text())
	})

	t.Run("re-adding an attached pet still converges", func(t *testing.T) {
		fx := syncFixture(t)
		cmds := commands.NewBookingSyncCommands(fx.uow(), testPolicy())

		require.NoError(t, cmds.AddPet(ctx, fx.booking.ID(), fx.booking.ClientID(), fx.live[0].ID))

		assert.Len(t, fx.live, 1)
		assert.Equal(t, 1, fx.occurrenceSaves)
		require.Len(t, fx.summaryUpserts, 1)
		assert.Equal(t, "20.00", fx.summaryUpserts[0].Subtotal.Text())
	})

	t.Run("unknown pet", func(t *testing.T) {
		fx := syncFixture(t)
		cmds := commands.NewBookingSyncCommands(fx.uow(), testPolicy())

		err := cmds.AddPet(ctx, fx.booking.ID(), fx.booking.ClientID(), uuid.New())
		assert.ErrorIs(t, err, errs.ErrPetNotFound)
		assert.Zero(t, fx.occurrenceSaves)
	})

	t.Run("completed booking rejects roster edits", func(t *testing.T) {
		fx := syncFixture(t)
		require.NoError(t, fx.booking.SetStatus(booking.StatusCompleted))
		cmds := commands.NewBookingSyncCommands(fx.uow(), testPolicy())

		err := cmds.AddPet(ctx, fx.booking.ID(), fx.booking.ClientID(), fx.live[0].ID)
		assert.ErrorIs(t, err, errs.ErrBookingNotEditable)
	})

	t.Run("outsider is rejected", func(t *testing.T) {
		fx := syncFixture(t)
		cmds := commands.NewBookingSyncCommands(fx.uow(), testPolicy())

		err := cmds.AddPet(ctx, fx.booking.ID(), uuid.New(), fx.live[0].ID)
		assert.ErrorIs(t, err, errs.ErrNotBookingParty)
	})
}

func TestRemovePet(t *testing.T) {
	ctx := context.Background()

	t.Run("detaches the pet and re-derives everything", func(t *testing.T) {
		fx := syncFixture(t)
		extra := builder.NewPetRef("Pip")
		fx.attachPet(extra)
		cmds := commands.NewBookingSyncCommands(fx.uow(), testPolicy())

		require.NoError(t, cmds.RemovePet(ctx, fx.booking.ID(), fx.booking.ClientID(), extra.ID))

		assert.Len(t, fx.live, 1)
		require.Len(t, fx.summaryUpserts, 1)
		assert.Equal(t, "20.00", fx.summaryUpserts[0].Subtotal.Text())
	})

	t.Run("pet not on the booking", func(t *testing.T) {
		fx := syncFixture(t)
		cmds := commands.NewBookingSyncCommands(fx.uow(), testPolicy())

		err := cmds.RemovePet(ctx, fx.booking.ID(), fx.booking.ClientID(), uuid.New())
		assert.ErrorIs(t, err, errs.ErrPetNotFound)
	})
}

func TestResync(t *testing.T) {
	ctx := context.Background()

	t.Run("repeated delivery converges", func(t *testing.T) {
		fx := syncFixture(t)
		cmds := commands.NewBookingSyncCommands(fx.uow(), testPolicy())

		require.NoError(t, cmds.Resync(ctx, fx.booking.ID(), fx.booking.ProfessionalID()))
		require.NoError(t, cmds.Resync(ctx, fx.booking.ID(), fx.booking.ProfessionalID()))

		require.Len(t, fx.summaryUpserts, 2)
		assert.Equal(t, fx.summaryUpserts[0].Subtotal.Text(), fx.summaryUpserts[1].Subtotal.Text())
		assert.Equal(t, 2, fx.occurrenceSaves)
		assert.Equal(t, "20.00", fx.booking.Subtotal().Text())
	})

	t.Run("works in any status", func(t *testing.T) {
		fx := syncFixture(t)
		require.NoError(t, fx.booking.SetStatus(booking.StatusCompleted))
		cmds := commands.NewBookingSyncCommands(fx.uow(), testPolicy())

		require.NoError(t, cmds.Resync(ctx, fx.booking.ID(), fx.booking.ClientID()))
	})

	t.Run("unknown booking", func(t *testing.T) {
		fx := syncFixture(t)
		cmds := commands.NewBookingSyncCommands(fx.uow(), testPolicy())

		err := cmds.Resync(ctx, uuid.New(), fx.booking.ClientID())
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})
}
