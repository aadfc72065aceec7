package readstore

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"petcare-booking/internal/domain/booking"
	"petcare-booking/internal/domain/draft"
	"petcare-booking/internal/domain/pricing"
	"petcare-booking/internal/infra"
	"petcare-booking/internal/infra/db"
	"petcare-booking/internal/pkg/pgconv"
	"petcare-booking/internal/usecase/queries"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const findBookingDetailSQL = `
SELECT id, client_id, professional_id, rate_plan_id, status, created_at, updated_at
FROM bookings
WHERE id = $1`

func (r *BookingReadStore) FindDetail(ctx context.Context, bookingID uuid.UUID) (*queries.BookingDetailView, error) {
	var view queries.BookingDetailView
	var status string
	err := r.db.QueryRow(ctx, findBookingDetailSQL, bookingID).Scan(
		&view.ID, &view.ClientID, &view.ProfessionalID, &view.RatePlanID,
		&status, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	view.Status = status
	view.StatusDisplay = booking.Status(status).Display()

	if view.Occurrences, err = r.findOccurrenceViews(ctx, bookingID); err != nil {
		return nil, err
	}
	if view.Summary, err = r.findSummaryView(ctx, bookingID); err != nil {
		return nil, err
	}
	if view.Pets, err = r.findPetsByBooking(ctx, bookingID); err != nil {
		return nil, err
	}
	return &view, nil
}

const findOccurrenceViewsSQL = `
SELECT id, start_at, end_at, status, line_items, calculated_cost::text
FROM occurrences
WHERE booking_id = $1
ORDER BY start_at`

func (r *BookingReadStore) findOccurrenceViews(ctx context.Context, bookingID uuid.UUID) ([]queries.OccurrenceView, error) {
	rows, err := r.db.Query(ctx, findOccurrenceViewsSQL, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occurrences", err)
	}
	defer rows.Close()

	views := []queries.OccurrenceView{}
	for rows.Next() {
		var v queries.OccurrenceView
		var rawItems []byte
		if err := rows.Scan(&v.ID, &v.Start, &v.End, &v.Status, &rawItems, &v.CalculatedCost); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occurrence", err)
		}
		if err := json.Unmarshal(rawItems, &v.LineItems); err != nil {
			return nil, infra.WrapRepoErr("failed to decode line items", err)
		}
		if v.LineItems == nil {
			v.LineItems = []pricing.LineItemRecord{}
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate occurrences", err)
	}
	return views, nil
}

const findSummaryViewSQL = `
SELECT subtotal::text, platform_fee::text, taxes::text,
       total_client_cost::text, total_pro_payout::text, is_prorated
FROM booking_summaries
WHERE booking_id = $1`

func (r *BookingReadStore) findSummaryView(ctx context.Context, bookingID uuid.UUID) (*queries.CostSummaryView, error) {
	var subtotal, fee, taxes, clientCost, payout string
	var prorated bool
	err := r.db.QueryRow(ctx, findSummaryViewSQL, bookingID).Scan(
		&subtotal, &fee, &taxes, &clientCost, &payout, &prorated,
	)
	if err != nil {
		// A booking that was never priced simply has no summary row.
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find booking summary", err)
	}
	return &queries.CostSummaryView{
		Subtotal:          json.Number(subtotal),
		PlatformFee:       json.Number(fee),
		Taxes:             json.Number(taxes),
		TotalClientCost:   json.Number(clientCost),
		TotalSitterPayout: json.Number(payout),
		IsProrated:        prorated,
	}, nil
}

const findPageByUserSQL = `
SELECT b.id, b.status,
       (SELECT min(o.start_at) FROM occurrences o WHERE o.booking_id = b.id),
       b.total_client_cost::text, b.total_pro_payout::text, b.created_at
FROM bookings b
WHERE b.client_id = $1 OR b.professional_id = $1
ORDER BY b.created_at DESC, b.id DESC
LIMIT $2 OFFSET $3`

// FindPageByUser reads the financial mirror columns, not booking_summaries,
// so listing stays a single-table scan.
func (r *BookingReadStore) FindPageByUser(ctx context.Context, userID uuid.UUID, limit, offset int32) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, findPageByUserSQL, userID, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	items := []*queries.BookingListItem{}
	for rows.Next() {
		var item queries.BookingListItem
		var status string
		var clientCost, payout string
		if err := rows.Scan(&item.ID, &status, &item.FirstOccurrence, &clientCost, &payout, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking list item", err)
		}
		item.Status = status
		item.StatusDisplay = booking.Status(status).Display()
		item.TotalClientCost = json.Number(clientCost)
		item.TotalSitterPayout = json.Number(payout)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return items, nil
}

const findPartiesSQL = `
SELECT client_id, professional_id FROM bookings WHERE id = $1`

func (r *BookingReadStore) FindParties(ctx context.Context, bookingID uuid.UUID) (uuid.UUID, uuid.UUID, error) {
	var clientID, professionalID uuid.UUID
	if err := r.db.QueryRow(ctx, findPartiesSQL, bookingID).Scan(&clientID, &professionalID); err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, uuid.Nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return uuid.Nil, uuid.Nil, infra.WrapRepoErr("failed to find booking parties", err)
	}
	return clientID, professionalID, nil
}

const findPetsByClientSQL = `
SELECT id, name, species, breed
FROM pets
WHERE client_id = $1
ORDER BY name, id`

func (r *BookingReadStore) FindPetsByClient(ctx context.Context, clientID uuid.UUID) ([]queries.PetView, error) {
	return r.listPetViews(ctx, findPetsByClientSQL, clientID)
}

const findPetsByBookingSQL = `
SELECT p.id, p.name, p.species, p.breed
FROM pets p
JOIN booking_pets bp ON bp.pet_id = p.id
WHERE bp.booking_id = $1
ORDER BY p.id`

func (r *BookingReadStore) findPetsByBooking(ctx context.Context, bookingID uuid.UUID) ([]queries.PetView, error) {
	return r.listPetViews(ctx, findPetsByBookingSQL, bookingID)
}

func (r *BookingReadStore) listPetViews(ctx context.Context, query string, arg uuid.UUID) ([]queries.PetView, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pets", err)
	}
	defer rows.Close()

	views := []queries.PetView{}
	for rows.Next() {
		var v queries.PetView
		if err := rows.Scan(&v.ID, &v.Name, &v.Species, &v.Breed); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pet", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pets", err)
	}
	return views, nil
}

const findDraftSQL = `
SELECT snapshot FROM booking_drafts WHERE booking_id = $1`

func (r *BookingReadStore) FindDraft(ctx context.Context, bookingID uuid.UUID) (*draft.Snapshot, error) {
	var raw []byte
	if err := r.db.QueryRow(ctx, findDraftSQL, bookingID).Scan(&raw); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("draft not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find draft", err)
	}

	var snap draft.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, infra.WrapRepoErr("failed to decode draft snapshot", err)
	}
	return &snap, nil
}
