//go:build unit

package pricing_test

import (
	"testing"

	"petcare-booking/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItem(t *testing.T) {
	cases := []struct {
		name  string
		title string
		errIs error
	}{
		{name: "professional item", title: "Holiday Surcharge"},
		{name: "empty title", title: "", errIs: pricing.ErrEmptyLineItemTitle},
		{name: "whitespace title", title: "   ", errIs: pricing.ErrEmptyLineItemTitle},
		{name: "reserved base title", title: pricing.TitleBookingDetailsCost, errIs: pricing.ErrReservedLineItemEdit},
		{name: "reserved surcharge title", title: pricing.TitleAdditionalPetRate, errIs: pricing.ErrReservedLineItemEdit},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pricing.NewLineItem(tc.title, "desc", mustMoney(t, "5.00"))
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
		})
	}

	t.Run("negative amount", func(t *testing.T) {
		_, err := pricing.NewLineItem("Adjustment", "", mustMoney(t, "-1.00"))
		assert.ErrorIs(t, err, pricing.ErrNegativeAmount)
	})
}

func TestReplaceSynchronizerItems(t *testing.T) {
	existing := []pricing.LineItem{
		pricing.ReconstructLineItem(pricing.TitleBookingDetailsCost, "", mustMoney(t, "20.00")),
		pricing.ReconstructLineItem("Holiday Surcharge", "", mustMoney(t, "10.00")),
		pricing.ReconstructLineItem(pricing.TitleAdditionalPetRate, "", mustMoney(t, "5.00")),
		pricing.ReconstructLineItem("Travel Fee", "", mustMoney(t, "3.00")),
	}
	computed := []pricing.LineItem{
		pricing.ReconstructLineItem(pricing.TitleBookingDetailsCost, "", mustMoney(t, "30.00")),
	}

	out := pricing.ReplaceSynchronizerItems(existing, computed)

	require.Len(t, out, 3)
	assert.Equal(t, "Holiday Surcharge", out[0].Title())
	assert.Equal(t, "Travel Fee", out[1].Title())
	assert.Equal(t, pricing.TitleBookingDetailsCost, out[2].Title())
	assert.Equal(t, "30.00", out[2].Amount().Text())
}

func TestLineItemRoundTrip(t *testing.T) {
	items := []pricing.LineItem{
		pricing.ReconstructLineItem(pricing.TitleBookingDetailsCost, "Base walk cost", mustMoney(t, "30.00")),
		pricing.ReconstructLineItem("Holiday Surcharge", "", mustMoney(t, "10.50")),
	}

	records := pricing.EncodeLineItems(items)
	require.Len(t, records, 2)
	assert.Equal(t, "$30.00", records[0].Amount)

	decoded, err := pricing.DecodeLineItems(records)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	for i := range items {
		assert.Equal(t, items[i].Title(), decoded[i].Title())
		assert.True(t, items[i].Amount().Equal(decoded[i].Amount()))
	}

	t.Run("malformed stored amount", func(t *testing.T) {
		records := []pricing.LineItemRecord{{Title: "Travel Fee", Amount: "ten"}}
		_, err := pricing.DecodeLineItems(records)
		assert.ErrorIs(t, err, pricing.ErrMalformedAmount)
	})
}

func TestValidateUniqueTitles(t *testing.T) {
	unique := []pricing.LineItem{
		pricing.ReconstructLineItem("Holiday Surcharge", "", mustMoney(t, "10.00")),
		pricing.ReconstructLineItem("Travel Fee", "", mustMoney(t, "3.00")),
	}
	assert.NoError(t, pricing.ValidateUniqueTitles(unique))

	dup := append(unique, pricing.ReconstructLineItem("Travel Fee", "", mustMoney(t, "4.00")))
	assert.ErrorIs(t, pricing.ValidateUniqueTitles(dup), pricing.ErrDuplicateLineItem)
}
