package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"petcare-booking/internal/domain/draft"
	"petcare-booking/internal/infra"
	"petcare-booking/internal/infra/db"
	"petcare-booking/internal/pkg/clock"
	"petcare-booking/internal/pkg/pgconv"
)

type DraftRepository struct {
	db    db.DBTX
	clock clock.Clock
}

func NewDraftRepository(dbtx db.DBTX, clk clock.Clock) *DraftRepository {
	return &DraftRepository{db: dbtx, clock: clk}
}

const findDraftByBookingSQL = `
SELECT snapshot FROM booking_drafts WHERE booking_id = $1`

func (r *DraftRepository) FindByBooking(ctx context.Context, bookingID uuid.UUID) (*draft.Snapshot, error) {
	var raw []byte
	if err := r.db.QueryRow(ctx, findDraftByBookingSQL, bookingID).Scan(&raw); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("draft not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find draft", err)
	}

	var snap draft.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, infra.WrapRepoErr("failed to decode draft snapshot", err)
	}
	if snap.SchemaVersion > draft.SchemaVersion {
		return nil, infra.WrapRepoErr("draft snapshot schema is unreadable", draft.ErrStaleSchema)
	}
	return &snap, nil
}

const saveDraftSQL = `
INSERT INTO booking_drafts (booking_id, snapshot, created_at, updated_at)
VALUES ($1, $2, $3, $3)
ON CONFLICT (booking_id) DO UPDATE SET
    snapshot   = EXCLUDED.snapshot,
    updated_at = EXCLUDED.updated_at`

func (r *DraftRepository) Save(ctx context.Context, snap *draft.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return infra.WrapRepoErr("failed to encode draft snapshot", err)
	}

	if _, err := r.db.Exec(ctx, saveDraftSQL, snap.BookingID, raw, r.clock.Now()); err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("draft references a missing booking", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to save draft", err)
	}
	return nil
}

const deleteDraftByBookingSQL = `
DELETE FROM booking_drafts WHERE booking_id = $1`

// DeleteByBooking is a no-op when the booking has no draft.
func (r *DraftRepository) DeleteByBooking(ctx context.Context, bookingID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, deleteDraftByBookingSQL, bookingID); err != nil {
		return infra.WrapRepoErr("failed to delete draft", err)
	}
	return nil
}
