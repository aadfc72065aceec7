//go:build unit

package commands_test

import (
	"context"
	"testing"

	"petcare-booking/internal/domain/booking"
	"petcare-booking/internal/domain/draft"
	"petcare-booking/internal/domain/pricing"
	"petcare-booking/internal/infra"
	"petcare-booking/internal/usecase/commands"
	"petcare-booking/internal/usecase/shared"
	"petcare-booking/tests/common/builder"

	"github.com/google/uuid"
)

// fixture is the in-memory storage state shared by the fake repositories.
// Commands see the same consistency the real unit of work provides because
// every fake reads and writes this one struct.
type fixture struct {
	booking *booking.Booking
	plans   map[uuid.UUID]*pricing.RatePlan
	occs    []*booking.Occurrence
	draft   *draft.Snapshot
	roster  []draft.PetRef // every pet the client owns
	live    []draft.PetRef // pets attached to the booking

	statusWrites     []booking.Status
	planRefWrites    []uuid.UUID
	occurrenceSaves  int
	summaryUpserts   []booking.Summary
	financialsWrites int
	draftSaves       int
	draftDeletes     int
}

func newFixture() *fixture {
	bkg := builder.NewBookingBuilder().BuildDomain()
	plan := builder.NewRatePlanBuilder().With(func(b *builder.RatePlanBuilder) {
		b.ID = bkg.RatePlanID()
		b.ProfessionalID = bkg.ProfessionalID()
	}).BuildDomain()

	return &fixture{
		booking: bkg,
		plans:   map[uuid.UUID]*pricing.RatePlan{plan.ID(): plan},
	}
}

func (f *fixture) plan() *pricing.RatePlan {
	return f.plans[f.booking.RatePlanID()]
}

func (f *fixture) addOccurrence(occ *booking.Occurrence) {
	f.occs = append(f.occs, occ)
}

func (f *fixture) attachPet(ref draft.PetRef) {
	f.roster = append(f.roster, ref)
	f.live = append(f.live, ref)
}

func (f *fixture) ownPet(ref draft.PetRef) {
	f.roster = append(f.roster, ref)
}

func (f *fixture) uow() shared.UnitOfWork {
	return &fakeUoW{fx: f}
}

func mustMoney(t *testing.T, s string) pricing.Money {
	t.Helper()
	m, err := pricing.ParseMoney(s)
	if err != nil {
		t.Fatalf("parse money %q: %v", s, err)
	}
	return m
}

func testPolicy() commands.PricingPolicy {
	return commands.PricingPolicy{
		FeePct:   booking.DefaultFeePct,
		TaxPct:   booking.DefaultTaxPct,
		Prorated: true,
	}
}

type fakeUoW struct {
	fx *fixture
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{fx: u.fx})
}

type fakeTx struct {
	fx *fixture
}

func (t *fakeTx) Bookings() shared.BookingRepository       { return &fakeBookings{fx: t.fx} }
func (t *fakeTx) Occurrences() shared.OccurrenceRepository { return &fakeOccurrences{fx: t.fx} }
func (t *fakeTx) Drafts() shared.DraftRepository           { return &fakeDrafts{fx: t.fx} }
func (t *fakeTx) Summaries() shared.SummaryRepository      { return &fakeSummaries{fx: t.fx} }
func (t *fakeTx) RatePlans() shared.RatePlanRepository     { return &fakeRatePlans{fx: t.fx} }
func (t *fakeTx) Pets() shared.PetRepository               { return &fakePets{fx: t.fx} }

type fakeBookings struct {
	fx *fixture
}

func (r *fakeBookings) FindForUpdate(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	if r.fx.booking == nil || r.fx.booking.ID() != id {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return r.fx.booking, nil
}

func (r *fakeBookings) UpdateStatus(_ context.Context, id uuid.UUID, status booking.Status) error {
	if r.fx.booking == nil || r.fx.booking.ID() != id {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	r.fx.statusWrites = append(r.fx.statusWrites, status)
	return nil
}

func (r *fakeBookings) UpdateRatePlanRef(_ context.Context, id, ratePlanID uuid.UUID) error {
	if r.fx.booking == nil || r.fx.booking.ID() != id {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	if _, ok := r.fx.plans[ratePlanID]; !ok {
		return infra.WrapRepoErr("rate plan does not exist", nil, infra.KindForeignKeyViolated)
	}
	r.fx.planRefWrites = append(r.fx.planRefWrites, ratePlanID)
	return nil
}

func (r *fakeBookings) UpdateFinancials(_ context.Context, b *booking.Booking) error {
	if r.fx.booking == nil || r.fx.booking.ID() != b.ID() {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	r.fx.financialsWrites++
	return nil
}

func (r *fakeBookings) ListIDsByRatePlan(_ context.Context, ratePlanID uuid.UUID) ([]uuid.UUID, error) {
	if r.fx.booking != nil && r.fx.booking.RatePlanID() == ratePlanID {
		return []uuid.UUID{r.fx.booking.ID()}, nil
	}
	return nil, nil
}

type fakeOccurrences struct {
	fx *fixture
}

func (r *fakeOccurrences) ListByBooking(_ context.Context, bookingID uuid.UUID) ([]*booking.Occurrence, error) {
	out := make([]*booking.Occurrence, 0, len(r.fx.occs))
	for _, occ := range r.fx.occs {
		if occ.BookingID() == bookingID {
			out = append(out, occ)
		}
	}
	return out, nil
}

func (r *fakeOccurrences) Save(_ context.Context, _ *booking.Occurrence) error {
	r.fx.occurrenceSaves++
	return nil
}

type fakeDrafts struct {
	fx *fixture
}

func (r *fakeDrafts) FindByBooking(_ context.Context, bookingID uuid.UUID) (*draft.Snapshot, error) {
	if r.fx.draft == nil || r.fx.draft.BookingID != bookingID {
		return nil, infra.WrapRepoErr("draft not found", nil, infra.KindNotFound)
	}
	return r.fx.draft, nil
}

func (r *fakeDrafts) Save(_ context.Context, snap *draft.Snapshot) error {
	r.fx.draft = snap
	r.fx.draftSaves++
	return nil
}

func (r *fakeDrafts) DeleteByBooking(_ context.Context, _ uuid.UUID) error {
	r.fx.draft = nil
	r.fx.draftDeletes++
	return nil
}

type fakeSummaries struct {
	fx *fixture
}

func (r *fakeSummaries) Upsert(_ context.Context, summary booking.Summary) error {
	r.fx.summaryUpserts = append(r.fx.summaryUpserts, summary)
	return nil
}

type fakeRatePlans struct {
	fx *fixture
}

func (r *fakeRatePlans) FindByID(_ context.Context, id uuid.UUID) (*pricing.RatePlan, error) {
	plan, ok := r.fx.plans[id]
	if !ok {
		return nil, infra.WrapRepoErr("rate plan not found", nil, infra.KindNotFound)
	}
	return plan, nil
}

func (r *fakeRatePlans) Update(_ context.Context, plan *pricing.RatePlan) error {
	if _, ok := r.fx.plans[plan.ID()]; !ok {
		return infra.WrapRepoErr("rate plan not found", nil, infra.KindNotFound)
	}
	r.fx.plans[plan.ID()] = plan
	return nil
}

type fakePets struct {
	fx *fixture
}

func (r *fakePets) ListByBooking(_ context.Context, _ uuid.UUID) ([]draft.PetRef, error) {
	return append([]draft.PetRef(nil), r.fx.live...), nil
}

func (r *fakePets) ListByClient(_ context.Context, _ uuid.UUID) ([]draft.PetRef, error) {
	return append([]draft.PetRef(nil), r.fx.roster...), nil
}

func (r *fakePets) Add(_ context.Context, _, petID uuid.UUID) error {
	for _, p := range r.fx.live {
		if p.ID == petID {
			return infra.WrapRepoErr("pet already on the booking", nil, infra.KindDuplicateKey)
		}
	}
	for _, p := range r.fx.roster {
		if p.ID == petID {
			r.fx.live = append(r.fx.live, p)
			return nil
		}
	}
	return infra.WrapRepoErr("pet not found", nil, infra.KindForeignKeyViolated)
}

func (r *fakePets) Remove(_ context.Context, _, petID uuid.UUID) error {
	for i, p := range r.fx.live {
		if p.ID == petID {
			r.fx.live = append(r.fx.live[:i], r.fx.live[i+1:]...)
			return nil
		}
	}
	return infra.WrapRepoErr("pet is not on the booking", nil, infra.KindNotFound)
}
