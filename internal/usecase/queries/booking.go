package queries

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"petcare-booking/internal/domain/draft"
	"petcare-booking/internal/domain/pricing"
	"petcare-booking/internal/pkg/errs"
)

// Read models (DTO for read side)

type OccurrenceView struct {
	ID             uuid.UUID                `json:"occurrence_id"`
	Start          time.Time                `json:"start"`
	End            time.Time                `json:"end"`
	Status         string                   `json:"status"`
	LineItems      []pricing.LineItemRecord `json:"line_items"`
	CalculatedCost string                   `json:"calculated_cost"`
}

// CostSummaryView renders monetary fields as bare 2-decimal numbers.
type CostSummaryView struct {
	Subtotal          json.Number `json:"subtotal"`
	PlatformFee       json.Number `json:"platform_fee"`
	Taxes             json.Number `json:"taxes"`
	TotalClientCost   json.Number `json:"total_client_cost"`
	TotalSitterPayout json.Number `json:"total_sitter_payout"`
	IsProrated        bool        `json:"is_prorated"`
}

type BookingDetailView struct {
	ID             uuid.UUID        `json:"booking_id"`
	ClientID       uuid.UUID        `json:"client_id"`
	ProfessionalID uuid.UUID        `json:"professional_id"`
	RatePlanID     uuid.UUID        `json:"rate_plan_id"`
	Status         string           `json:"status"`
	StatusDisplay  string           `json:"status_display"`
	Occurrences    []OccurrenceView `json:"occurrences"`
	Summary        *CostSummaryView `json:"cost_summary,omitempty"`
	Pets           []PetView        `json:"pets"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

type BookingListItem struct {
	ID                uuid.UUID   `json:"booking_id"`
	Status            string      `json:"status"`
	StatusDisplay     string      `json:"status_display"`
	FirstOccurrence   *time.Time  `json:"first_occurrence,omitempty"`
	TotalClientCost   json.Number `json:"total_client_cost"`
	TotalSitterPayout json.Number `json:"total_sitter_payout"`
	CreatedAt         time.Time   `json:"created_at"`
}

type PetView struct {
	ID      uuid.UUID `json:"pet_id"`
	Name    string    `json:"name"`
	Species string    `json:"species"`
	Breed   string    `json:"breed"`
}

type BookingPage struct {
	Bookings []*BookingListItem `json:"bookings"`
	HasNext  bool               `json:"-"`
}

type BookingQueries interface {
	GetBooking(ctx context.Context, bookingID, actorID uuid.UUID) (*BookingDetailView, error)
	ListBookings(ctx context.Context, actorID uuid.UUID, page, pageSize int) (*BookingPage, error)
	// AvailablePets lists the client's full pet roster for the draft pet
	// picker.
	AvailablePets(ctx context.Context, bookingID, actorID uuid.UUID) ([]PetView, error)
	GetDraft(ctx context.Context, bookingID, actorID uuid.UUID) (*draft.Snapshot, error)
}

// BookingViewRepo is the read-side storage seam implemented by the
// Postgres read store.
type BookingViewRepo interface {
	FindDetail(ctx context.Context, bookingID uuid.UUID) (*BookingDetailView, error)
	FindPageByUser(ctx context.Context, userID uuid.UUID, limit, offset int32) ([]*BookingListItem, error)
	FindParties(ctx context.Context, bookingID uuid.UUID) (clientID, professionalID uuid.UUID, err error)
	FindPetsByClient(ctx context.Context, clientID uuid.UUID) ([]PetView, error)
	FindDraft(ctx context.Context, bookingID uuid.UUID) (*draft.Snapshot, error)
}

const defaultPageSize = 20

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, bookingID, actorID uuid.UUID) (*BookingDetailView, error) {
	view, err := q.repo.FindDetail(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if actorID != view.ClientID && actorID != view.ProfessionalID {
		return nil, errs.Mark(errs.New("actor is neither client nor professional"), errs.ErrNotBookingParty)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListBookings(ctx context.Context, actorID uuid.UUID, page, pageSize int) (*BookingPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	// One extra row answers HasNext without a count query.
	offset := (page - 1) * pageSize
	items, err := q.repo.FindPageByUser(ctx, actorID, int32(pageSize)+1, int32(offset))
	if err != nil {
		return nil, err
	}

	hasNext := len(items) > pageSize
	if hasNext {
		items = items[:pageSize]
	}
	return &BookingPage{Bookings: items, HasNext: hasNext}, nil
}

func (q *bookingQueriesImpl) AvailablePets(ctx context.Context, bookingID, actorID uuid.UUID) ([]PetView, error) {
	clientID, professionalID, err := q.repo.FindParties(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if actorID != clientID && actorID != professionalID {
		return nil, errs.Mark(errs.New("actor is neither client nor professional"), errs.ErrNotBookingParty)
	}
	return q.repo.FindPetsByClient(ctx, clientID)
}

func (q *bookingQueriesImpl) GetDraft(ctx context.Context, bookingID, actorID uuid.UUID) (*draft.Snapshot, error) {
	clientID, professionalID, err := q.repo.FindParties(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if actorID != clientID && actorID != professionalID {
		return nil, errs.Mark(errs.New("actor is neither client nor professional"), errs.ErrNotBookingParty)
	}
	return q.repo.FindDraft(ctx, bookingID)
}
