package shared

import (
	"context"

	"github.com/google/uuid"

	"petcare-booking/internal/domain/booking"
	"petcare-booking/internal/domain/draft"
	"petcare-booking/internal/domain/pricing"
)

// UnitOfWork runs every derived write for one triggering event inside a
// single transaction: either all of a trigger's writes commit or none do.
type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Occurrences() OccurrenceRepository
	Drafts() DraftRepository
	Summaries() SummaryRepository
	RatePlans() RatePlanRepository
	Pets() PetRepository
}

type BookingRepository interface {
	// FindForUpdate takes the booking row lock, serializing concurrent
	// edits to the same booking. Edits to different bookings stay
	// independent.
	FindForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
	UpdateRatePlanRef(ctx context.Context, id, ratePlanID uuid.UUID) error
	UpdateFinancials(ctx context.Context, b *booking.Booking) error
	ListIDsByRatePlan(ctx context.Context, ratePlanID uuid.UUID) ([]uuid.UUID, error)
}

type OccurrenceRepository interface {
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*booking.Occurrence, error)
	Save(ctx context.Context, occ *booking.Occurrence) error
}

type DraftRepository interface {
	FindByBooking(ctx context.Context, bookingID uuid.UUID) (*draft.Snapshot, error)
	Save(ctx context.Context, snap *draft.Snapshot) error
	DeleteByBooking(ctx context.Context, bookingID uuid.UUID) error
}

type SummaryRepository interface {
	Upsert(ctx context.Context, summary booking.Summary) error
}

type RatePlanRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*pricing.RatePlan, error)
	Update(ctx context.Context, plan *pricing.RatePlan) error
}

type PetRepository interface {
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]draft.PetRef, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]draft.PetRef, error)
	Add(ctx context.Context, bookingID, petID uuid.UUID) error
	Remove(ctx context.Context, bookingID, petID uuid.UUID) error
}
