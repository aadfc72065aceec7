package repository

import (
	"context"

	"github.com/google/uuid"

	"petcare-booking/internal/domain/draft"
	"petcare-booking/internal/infra"
	"petcare-booking/internal/infra/db"
	"petcare-booking/internal/pkg/pgconv"
)

type PetRepository struct {
	db db.DBTX
}

func NewPetRepository(dbtx db.DBTX) *PetRepository {
	return &PetRepository{db: dbtx}
}

const listPetsByBookingSQL = `
SELECT p.id, p.name, p.species, p.breed
FROM pets p
JOIN booking_pets bp ON bp.pet_id = p.id
WHERE bp.booking_id = $1
ORDER BY p.id`

func (r *PetRepository) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]draft.PetRef, error) {
	return r.listPets(ctx, listPetsByBookingSQL, bookingID)
}

const listPetsByClientSQL = `
SELECT id, name, species, breed
FROM pets
WHERE client_id = $1
ORDER BY name, id`

func (r *PetRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]draft.PetRef, error) {
	return r.listPets(ctx, listPetsByClientSQL, clientID)
}

const addBookingPetSQL = `
INSERT INTO booking_pets (booking_id, pet_id) VALUES ($1, $2)`

// Add attaches a pet to the booking roster. Re-adding an attached pet
// surfaces as DUPLICATE_KEY; whether that is an error is the caller's call.
func (r *PetRepository) Add(ctx context.Context, bookingID, petID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, addBookingPetSQL, bookingID, petID); err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("pet already on the booking", err, infra.KindDuplicateKey)
		}
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("pet or booking does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to add pet to booking", err)
	}
	return nil
}

const removeBookingPetSQL = `
DELETE FROM booking_pets WHERE booking_id = $1 AND pet_id = $2`

func (r *PetRepository) Remove(ctx context.Context, bookingID, petID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, removeBookingPetSQL, bookingID, petID)
	if err != nil {
		return infra.WrapRepoErr("failed to remove pet from booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pet is not on the booking", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PetRepository) listPets(ctx context.Context, query string, arg uuid.UUID) ([]draft.PetRef, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pets", err)
	}
	defer rows.Close()

	var pets []draft.PetRef
	for rows.Next() {
		var ref draft.PetRef
		if err := rows.Scan(&ref.ID, &ref.Name, &ref.Species, &ref.Breed); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pet", err)
		}
		pets = append(pets, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pets", err)
	}
	return pets, nil
}
