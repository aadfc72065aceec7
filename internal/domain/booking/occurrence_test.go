//go:build unit

package booking_test

import (
	"testing"
	"time"

	"petcare-booking/internal/domain/booking"
	"petcare-booking/internal/domain/pricing"
	"petcare-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOccurrenceResync(t *testing.T) {
	plan := builder.NewRatePlanBuilder().BuildDomain() // $20.00 hourly, surcharge $5.00 after 1 pet
	bookingID := uuid.New()

	newOcc := func(t *testing.T) *booking.Occurrence {
		occ, err := builder.NewOccurrenceBuilder(bookingID).BuildDomain()
		require.NoError(t, err)
		return occ
	}

	t.Run("derives line items and cost from the plan", func(t *testing.T) {
		occ := newOcc(t)
		require.NoError(t, occ.Resync(plan, 3, true))

		require.Len(t, occ.LineItems(), 2)
		assert.Equal(t, pricing.TitleBookingDetailsCost, occ.LineItems()[0].Title())
		assert.Equal(t, pricing.TitleAdditionalPetRate, occ.LineItems()[1].Title())
		assert.Equal(t, "30.00", occ.CalculatedCost().Text())
		assert.Equal(t, 3, occ.Details().NumPets)
	})

	t.Run("repeated resync converges to the same state", func(t *testing.T) {
		occ := newOcc(t)
		require.NoError(t, occ.Resync(plan, 2, true))
		first := occ.CalculatedCost()
		firstItems := len(occ.LineItems())

		require.NoError(t, occ.Resync(plan, 2, true))
		assert.True(t, occ.CalculatedCost().Equal(first))
		assert.Len(t, occ.LineItems(), firstItems)
	})

	t.Run("professional items survive resync and count toward the cost", func(t *testing.T) {
		occ := newOcc(t)
		holiday, err := pricing.NewLineItem("Holiday Surcharge", "", builderMoney(t, "10.00"))
		require.NoError(t, err)
		require.NoError(t, occ.AddLineItem(holiday, booking.PartyProfessional))

		require.NoError(t, occ.Resync(plan, 1, true))

		titles := make([]string, 0, len(occ.LineItems()))
		for _, li := range occ.LineItems() {
			titles = append(titles, li.Title())
		}
		assert.Contains(t, titles, "Holiday Surcharge")
		assert.Equal(t, "30.00", occ.CalculatedCost().Text())
	})

	t.Run("roster shrink drops the surcharge item", func(t *testing.T) {
		occ := newOcc(t)
		require.NoError(t, occ.Resync(plan, 3, true))
		require.Len(t, occ.LineItems(), 2)

		require.NoError(t, occ.Resync(plan, 1, true))
		require.Len(t, occ.LineItems(), 1)
		assert.Equal(t, "20.00", occ.CalculatedCost().Text())
	})
}

func TestOccurrenceLineItems(t *testing.T) {
	occ, err := builder.NewOccurrenceBuilder(uuid.New()).BuildDomain()
	require.NoError(t, err)

	item, err := pricing.NewLineItem("Travel Fee", "", builderMoney(t, "3.00"))
	require.NoError(t, err)
	require.NoError(t, occ.AddLineItem(item, booking.PartyProfessional))

	dup, err := pricing.NewLineItem("Travel Fee", "second", builderMoney(t, "4.00"))
	require.NoError(t, err)
	assert.ErrorIs(t, occ.AddLineItem(dup, booking.PartyProfessional), pricing.ErrDuplicateLineItem)
}

func TestOccurrenceReschedule(t *testing.T) {
	occ, err := builder.NewOccurrenceBuilder(uuid.New()).BuildDomain()
	require.NoError(t, err)

	start := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	sched, err := pricing.NewSchedule(start, start.Add(2*time.Hour))
	require.NoError(t, err)

	occ.Reschedule(sched, booking.PartyClient)
	assert.Equal(t, start, occ.Schedule().Start())
	assert.Equal(t, booking.PartyClient, occ.LastModifiedBy())
}

func builderMoney(t *testing.T, s string) pricing.Money {
	t.Helper()
	m, err := pricing.ParseMoney(s)
	require.NoError(t, err)
	return m
}
