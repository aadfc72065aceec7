package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"petcare-booking/internal/domain/booking"
	"petcare-booking/internal/domain/pricing"
	"petcare-booking/internal/infra"
	"petcare-booking/internal/infra/db"
	"petcare-booking/internal/pkg/clock"
	"petcare-booking/internal/pkg/pgconv"
)

type OccurrenceRepository struct {
	db    db.DBTX
	clock clock.Clock
}

func NewOccurrenceRepository(dbtx db.DBTX, clk clock.Clock) *OccurrenceRepository {
	return &OccurrenceRepository{db: dbtx, clock: clk}
}

const listOccurrencesByBookingSQL = `
SELECT id, booking_id, start_at, end_at, status, line_items,
       num_pets, base_rate::text, additional_pet_rate::text, holiday_rate::text,
       applies_after_pets, granularity, prorated, calculated_cost::text,
       created_by, last_modified_by, created_at, updated_at
FROM occurrences
WHERE booking_id = $1
ORDER BY start_at`

func (r *OccurrenceRepository) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*booking.Occurrence, error) {
	rows, err := r.db.Query(ctx, listOccurrencesByBookingSQL, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occurrences", err)
	}
	defer rows.Close()

	var occs []*booking.Occurrence
	for rows.Next() {
		occ, err := scanOccurrence(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan occurrence", err)
		}
		occs = append(occs, occ)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate occurrences", err)
	}
	return occs, nil
}

const saveOccurrenceSQL = `
INSERT INTO occurrences (
    id, booking_id, start_at, end_at, status, line_items,
    num_pets, base_rate, additional_pet_rate, holiday_rate,
    applies_after_pets, granularity, prorated, calculated_cost,
    created_by, last_modified_by, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6,
    $7, $8::numeric, $9::numeric, $10::numeric,
    $11, $12, $13, $14::numeric,
    $15, $16, $17, $17
)
ON CONFLICT (id) DO UPDATE SET
    start_at            = EXCLUDED.start_at,
    end_at              = EXCLUDED.end_at,
    status              = EXCLUDED.status,
    line_items          = EXCLUDED.line_items,
    num_pets            = EXCLUDED.num_pets,
    base_rate           = EXCLUDED.base_rate,
    additional_pet_rate = EXCLUDED.additional_pet_rate,
    holiday_rate        = EXCLUDED.holiday_rate,
    applies_after_pets  = EXCLUDED.applies_after_pets,
    granularity         = EXCLUDED.granularity,
    prorated            = EXCLUDED.prorated,
    calculated_cost     = EXCLUDED.calculated_cost,
    last_modified_by    = EXCLUDED.last_modified_by,
    updated_at          = EXCLUDED.updated_at`

// Save upserts so repeated synchronizer runs converge on the same row.
func (r *OccurrenceRepository) Save(ctx context.Context, occ *booking.Occurrence) error {
	items, err := json.Marshal(pricing.EncodeLineItems(occ.LineItems()))
	if err != nil {
		return infra.WrapRepoErr("failed to encode line items", err)
	}

	details := occ.Details()
	_, err = r.db.Exec(ctx, saveOccurrenceSQL,
		occ.ID(), occ.BookingID(),
		occ.Schedule().Start(), occ.Schedule().End(),
		string(occ.Status()), items,
		details.NumPets,
		details.BaseRate.Text(), details.AdditionalPetRate.Text(), details.HolidayRate.Text(),
		details.AppliesAfterPets, string(details.Granularity), details.Prorated,
		occ.CalculatedCost().Text(),
		string(occ.CreatedBy()), string(occ.LastModifiedBy()),
		r.clock.Now(),
	)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("occurrence references a missing booking", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to save occurrence", err)
	}
	return nil
}

func scanOccurrence(row rowScanner) (*booking.Occurrence, error) {
	var (
		id, bookingID                     uuid.UUID
		startAt, endAt                    time.Time
		status                            string
		rawItems                          []byte
		numPets, appliesAfterPets         int
		baseRate, additionalRate, holiday string
		granularity                       string
		prorated                          bool
		calculatedCost                    string
		createdBy, lastModifiedBy         string
		createdAt, updatedAt              time.Time
	)
	if err := row.Scan(
		&id, &bookingID, &startAt, &endAt, &status, &rawItems,
		&numPets, &baseRate, &additionalRate, &holiday,
		&appliesAfterPets, &granularity, &prorated, &calculatedCost,
		&createdBy, &lastModifiedBy, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	var records []pricing.LineItemRecord
	if err := json.Unmarshal(rawItems, &records); err != nil {
		return nil, err
	}
	items, err := pricing.DecodeLineItems(records)
	if err != nil {
		return nil, err
	}

	schedule, err := pricing.NewSchedule(startAt, endAt)
	if err != nil {
		return nil, err
	}

	base, err := pricing.ParseMoney(baseRate)
	if err != nil {
		return nil, err
	}
	additional, err := pricing.ParseMoney(additionalRate)
	if err != nil {
		return nil, err
	}
	holidayRate, err := pricing.ParseMoney(holiday)
	if err != nil {
		return nil, err
	}
	cost, err := pricing.ParseMoney(calculatedCost)
	if err != nil {
		return nil, err
	}

	details := booking.Details{
		NumPets:           numPets,
		BaseRate:          base,
		AdditionalPetRate: additional,
		HolidayRate:       holidayRate,
		AppliesAfterPets:  appliesAfterPets,
		Granularity:       pricing.Granularity(granularity),
		Prorated:          prorated,
	}

	return booking.ReconstructOccurrence(
		id, bookingID,
		schedule,
		booking.OccurrenceStatus(status),
		items,
		details,
		cost,
		booking.Party(createdBy), booking.Party(lastModifiedBy),
		createdAt, updatedAt,
	), nil
}
