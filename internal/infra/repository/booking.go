package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"petcare-booking/internal/domain/booking"
	"petcare-booking/internal/domain/pricing"
	"petcare-booking/internal/infra"
	"petcare-booking/internal/infra/db"
	"petcare-booking/internal/pkg/clock"
	"petcare-booking/internal/pkg/pgconv"
)

type BookingRepository struct {
	db    db.DBTX
	clock clock.Clock
}

func NewBookingRepository(dbtx db.DBTX, clk clock.Clock) *BookingRepository {
	return &BookingRepository{db: dbtx, clock: clk}
}

const findBookingForUpdateSQL = `
SELECT id, client_id, professional_id, rate_plan_id, status,
       subtotal::text, total_client_cost::text, total_pro_payout::text,
       created_at, updated_at
FROM bookings
WHERE id = $1
FOR UPDATE`

// FindForUpdate takes the booking row lock for the lifetime of the enclosing
// transaction.
func (r *BookingRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, findBookingForUpdateSQL, id)
	bkg, err := scanBooking(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking for update", err)
	}
	return bkg, nil
}

const updateBookingStatusSQL = `
UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	tag, err := r.db.Exec(ctx, updateBookingStatusSQL, id, string(status), r.clock.Now())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

const updateBookingRatePlanRefSQL = `
UPDATE bookings SET rate_plan_id = $2, updated_at = $3 WHERE id = $1`

func (r *BookingRepository) UpdateRatePlanRef(ctx context.Context, id, ratePlanID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, updateBookingRatePlanRefSQL, id, ratePlanID, r.clock.Now())
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("rate plan does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to update booking rate plan", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

const updateBookingFinancialsSQL = `
UPDATE bookings
SET subtotal = $2::numeric, total_client_cost = $3::numeric, total_pro_payout = $4::numeric, updated_at = $5
WHERE id = $1`

func (r *BookingRepository) UpdateFinancials(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx, updateBookingFinancialsSQL,
		b.ID(),
		b.Subtotal().Text(),
		b.TotalClientCost().Text(),
		b.TotalProPayout().Text(),
		r.clock.Now(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking financials", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

const listBookingIDsByRatePlanSQL = `
SELECT id FROM bookings WHERE rate_plan_id = $1 ORDER BY created_at`

func (r *BookingRepository) ListIDsByRatePlan(ctx context.Context, ratePlanID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, listBookingIDsByRatePlanSQL, ratePlanID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by rate plan", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking ids", err)
	}
	return ids, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*booking.Booking, error) {
	var (
		id, clientID, professionalID, ratePlanID  uuid.UUID
		status                                    string
		subtotal, totalClientCost, totalProPayout string
		createdAt, updatedAt                      time.Time
	)
	if err := row.Scan(
		&id, &clientID, &professionalID, &ratePlanID, &status,
		&subtotal, &totalClientCost, &totalProPayout,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	sub, err := pricing.ParseMoney(subtotal)
	if err != nil {
		return nil, err
	}
	clientCost, err := pricing.ParseMoney(totalClientCost)
	if err != nil {
		return nil, err
	}
	payout, err := pricing.ParseMoney(totalProPayout)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		id, clientID, professionalID, ratePlanID,
		booking.Status(status),
		sub, clientCost, payout,
		createdAt, updatedAt,
	), nil
}
