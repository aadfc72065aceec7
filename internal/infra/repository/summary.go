package repository

import (
	"context"

	"petcare-booking/internal/domain/booking"
	"petcare-booking/internal/infra"
	"petcare-booking/internal/infra/db"
	"petcare-booking/internal/pkg/clock"
	"petcare-booking/internal/pkg/pgconv"
)

type SummaryRepository struct {
	db    db.DBTX
	clock clock.Clock
}

func NewSummaryRepository(dbtx db.DBTX, clk clock.Clock) *SummaryRepository {
	return &SummaryRepository{db: dbtx, clock: clk}
}

const upsertSummarySQL = `
INSERT INTO booking_summaries (
    booking_id, subtotal, platform_fee, taxes,
    total_client_cost, total_pro_payout, fee_pct, tax_pct, is_prorated, updated_at
) VALUES (
    $1, $2::numeric, $3::numeric, $4::numeric,
    $5::numeric, $6::numeric, $7::numeric, $8::numeric, $9, $10
)
ON CONFLICT (booking_id) DO UPDATE SET
    subtotal          = EXCLUDED.subtotal,
    platform_fee      = EXCLUDED.platform_fee,
    taxes             = EXCLUDED.taxes,
    total_client_cost = EXCLUDED.total_client_cost,
    total_pro_payout  = EXCLUDED.total_pro_payout,
    fee_pct           = EXCLUDED.fee_pct,
    tax_pct           = EXCLUDED.tax_pct,
    is_prorated       = EXCLUDED.is_prorated,
    updated_at        = EXCLUDED.updated_at`

// Upsert keeps exactly one summary row per booking.
func (r *SummaryRepository) Upsert(ctx context.Context, summary booking.Summary) error {
	_, err := r.db.Exec(ctx, upsertSummarySQL,
		summary.BookingID,
		summary.Subtotal.Text(),
		summary.PlatformFee.Text(),
		summary.Taxes.Text(),
		summary.TotalClientCost.Text(),
		summary.TotalProPayout.Text(),
		summary.FeePct.String(),
		summary.TaxPct.String(),
		summary.Prorated,
		r.clock.Now(),
	)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("summary references a missing booking", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to upsert booking summary", err)
	}
	return nil
}
