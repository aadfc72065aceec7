package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"petcare-booking/internal/domain/pricing"
	"petcare-booking/internal/infra"
	"petcare-booking/internal/infra/db"
	"petcare-booking/internal/pkg/clock"
	"petcare-booking/internal/pkg/pgconv"
)

type RatePlanRepository struct {
	db    db.DBTX
	clock clock.Clock
}

func NewRatePlanRepository(dbtx db.DBTX, clk clock.Clock) *RatePlanRepository {
	return &RatePlanRepository{db: dbtx, clock: clk}
}

const findRatePlanByIDSQL = `
SELECT id, professional_id, name, description, animal_type,
       base_rate::text, additional_pet_rate::text, holiday_rate::text,
       applies_after_pets, granularity, created_at, updated_at
FROM rate_plans
WHERE id = $1`

func (r *RatePlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*pricing.RatePlan, error) {
	row := r.db.QueryRow(ctx, findRatePlanByIDSQL, id)
	plan, err := scanRatePlan(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rate plan not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rate plan", err)
	}
	return plan, nil
}

const updateRatePlanSQL = `
UPDATE rate_plans
SET base_rate = $2::numeric, additional_pet_rate = $3::numeric, holiday_rate = $4::numeric,
    applies_after_pets = $5, granularity = $6, updated_at = $7
WHERE id = $1`

func (r *RatePlanRepository) Update(ctx context.Context, plan *pricing.RatePlan) error {
	tag, err := r.db.Exec(ctx, updateRatePlanSQL,
		plan.ID(),
		plan.BaseRate().Text(),
		plan.AdditionalPetRate().Text(),
		plan.HolidayRate().Text(),
		plan.AppliesAfterPets(),
		string(plan.Granularity()),
		r.clock.Now(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update rate plan", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("rate plan not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanRatePlan(row rowScanner) (*pricing.RatePlan, error) {
	var (
		id, professionalID                uuid.UUID
		name, description, animalType     string
		baseRate, additionalRate, holiday string
		appliesAfterPets                  int
		granularity                       string
		createdAt, updatedAt              time.Time
	)
	if err := row.Scan(
		&id, &professionalID, &name, &description, &animalType,
		&baseRate, &additionalRate, &holiday,
		&appliesAfterPets, &granularity, &createdAt, &updatedAt,
	); err != nil {
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

	return pricing.ReconstructRatePlan(
		id, professionalID,
		name, description,
		pricing.AnimalType(animalType),
		base, additional, holidayRate,
		appliesAfterPets,
		pricing.Granularity(granularity),
		createdAt, updatedAt,
	), nil
}
