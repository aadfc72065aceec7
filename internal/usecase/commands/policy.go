package commands

import (
	"github.com/shopspring/decimal"

	"petcare-booking/internal/pkg/config"
	"petcare-booking/internal/pkg/errs"
)

// PricingPolicy carries the platform percentages applied by the cost
// aggregator. The values used for a given rollup are stored on the summary
// row, so changing the policy never rewrites history.
type PricingPolicy struct {
	FeePct   decimal.Decimal
	TaxPct   decimal.Decimal
	Prorated bool
}

func NewPricingPolicy(cfg config.Config) (PricingPolicy, error) {
	feePct, err := decimal.NewFromString(cfg.Pricing.FeePct)
	if err != nil {
		return PricingPolicy{}, errs.Wrap(err, "invalid platform fee percentage")
	}
	taxPct, err := decimal.NewFromString(cfg.Pricing.TaxPct)
	if err != nil {
		return PricingPolicy{}, errs.Wrap(err, "invalid tax percentage")
	}
	if feePct.IsNegative() || taxPct.IsNegative() {
		return PricingPolicy{}, errs.New("pricing percentages cannot be negative")
	}
	return PricingPolicy{FeePct: feePct, TaxPct: taxPct, Prorated: cfg.Pricing.Prorated}, nil
}
