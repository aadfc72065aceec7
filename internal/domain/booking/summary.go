package booking

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"petcare-booking/internal/domain/pricing"
)

// Canonical platform percentages. Tax is computed on the subtotal alone and
// payout is subtotal minus fee; both choices are deliberate product
// decisions, not derivations (the fee/tax formulas have shipped in two
// variants before, so the percentages used are stored on the row for audit).
var (
	DefaultFeePct = decimal.RequireFromString("0.10")
	DefaultTaxPct = decimal.RequireFromString("0.08")
)

// Summary is the booking-level financial rollup, derived solely from FINAL
// occurrences.
type Summary struct {
	BookingID       uuid.UUID
	Subtotal        pricing.Money
	PlatformFee     pricing.Money
	Taxes           pricing.Money
	TotalClientCost pricing.Money
	TotalProPayout  pricing.Money
	FeePct          decimal.Decimal
	TaxPct          decimal.Decimal
	Prorated        bool
}

// AggregateSummary rolls all FINAL occurrences of a booking into a Summary.
// DRAFT occurrences never contribute. Zero FINAL occurrences produce an
// all-zero summary, not an error.
func AggregateSummary(bookingID uuid.UUID, occurrences []*Occurrence, feePct, taxPct decimal.Decimal, prorated bool) Summary {
	subtotal := pricing.ZeroMoney()
	for _, occ := range occurrences {
		if occ.Status().IsFinal() {
			subtotal = subtotal.Add(occ.CalculatedCost())
		}
	}

	fee := subtotal.Mul(feePct)
	taxes := subtotal.Mul(taxPct)

	return Summary{
		BookingID:       bookingID,
		Subtotal:        subtotal,
		PlatformFee:     fee,
		Taxes:           taxes,
		TotalClientCost: subtotal.Add(fee).Add(taxes),
		TotalProPayout:  subtotal.Sub(fee),
		FeePct:          feePct,
		TaxPct:          taxPct,
		Prorated:        prorated,
	}
}
