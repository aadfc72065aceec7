//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"petcare-booking/internal/domain/pricing"
	"petcare-booking/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func daySchedule(t *testing.T, hours int) pricing.Schedule {
	t.Helper()
	start := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	sched, err := pricing.NewSchedule(start, start.Add(time.Duration(hours)*time.Hour))
	require.NoError(t, err)
	return sched
}

func TestNewSchedule(t *testing.T) {
	start := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	_, err := pricing.NewSchedule(start, start)
	assert.ErrorIs(t, err, pricing.ErrInvalidSchedule)

	_, err = pricing.NewSchedule(start, start.Add(-time.Hour))
	assert.ErrorIs(t, err, pricing.ErrInvalidSchedule)
}

func TestResolve(t *testing.T) {
	plan := builder.NewRatePlanBuilder().With(func(b *builder.RatePlanBuilder) {
		b.BaseRate = mustMoney(t, "20.00")
		b.AdditionalPetRate = mustMoney(t, "5.00")
		b.AppliesAfterPets = 1
		b.Granularity = pricing.GranularityDay
	}).BuildDomain()

	t.Run("prorated keeps fractional units at 3 decimals", func(t *testing.T) {
		quote, err := pricing.Resolve(daySchedule(t, 36), plan, 1, true, nil)
		require.NoError(t, err)

		assert.True(t, quote.TimeUnits.Equal(decimal.RequireFromString("1.5")))
		assert.Equal(t, "30.00", quote.BaseCost.Text())
		assert.Equal(t, "30.00", quote.Total.Text())
		require.Len(t, quote.LineItems, 1)
		assert.Equal(t, pricing.TitleBookingDetailsCost, quote.LineItems[0].Title())
	})

	t.Run("whole units round half-up when not prorated", func(t *testing.T) {
		quote, err := pricing.Resolve(daySchedule(t, 36), plan, 1, false, nil)
		require.NoError(t, err)

		assert.True(t, quote.TimeUnits.Equal(decimal.NewFromInt(2)))
		assert.Equal(t, "40.00", quote.BaseCost.Text())
		assert.Equal(t, "40.00", quote.Total.Text())
	})

	t.Run("additional pet surcharge beyond the threshold", func(t *testing.T) {
		quote, err := pricing.Resolve(daySchedule(t, 36), plan, 3, true, nil)
		require.NoError(t, err)

		require.Len(t, quote.LineItems, 2)
		assert.Equal(t, pricing.TitleAdditionalPetRate, quote.LineItems[1].Title())
		assert.Equal(t, "15.00", quote.LineItems[1].Amount().Text())
		assert.Equal(t, "45.00", quote.Total.Text())
	})

	t.Run("no surcharge at or below the threshold", func(t *testing.T) {
		quote, err := pricing.Resolve(daySchedule(t, 36), plan, 1, true, nil)
		require.NoError(t, err)
		require.Len(t, quote.LineItems, 1)
	})

	t.Run("professional items contribute to the total but not to LineItems", func(t *testing.T) {
		holiday, err := pricing.NewLineItem("Holiday Surcharge", "July 4th", mustMoney(t, "10.00"))
		require.NoError(t, err)

		quote, err := pricing.Resolve(daySchedule(t, 36), plan, 1, true, []pricing.LineItem{holiday})
		require.NoError(t, err)

		assert.Equal(t, "40.00", quote.Total.Text())
		require.Len(t, quote.LineItems, 1)
	})

	t.Run("negative passthrough amount fails the whole quote", func(t *testing.T) {
		bad := pricing.ReconstructLineItem("Adjustment", "", mustMoney(t, "-1.00"))
		_, err := pricing.Resolve(daySchedule(t, 36), plan, 1, true, []pricing.LineItem{bad})
		assert.ErrorIs(t, err, pricing.ErrNegativeAmount)
	})

	t.Run("unsupported granularity", func(t *testing.T) {
		odd := builder.NewRatePlanBuilder().With(func(b *builder.RatePlanBuilder) {
			b.Granularity = pricing.Granularity("FORTNIGHT")
		}).BuildDomain()

		_, err := pricing.Resolve(daySchedule(t, 36), odd, 1, true, nil)
		assert.ErrorIs(t, err, pricing.ErrUnsupportedGranularity)
	})
}

func mustMoney(t *testing.T, s string) pricing.Money {
	t.Helper()
	m, err := pricing.ParseMoney(s)
	require.NoError(t, err)
	return m
}
