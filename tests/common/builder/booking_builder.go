//go:build unit || e2e

package builder

import (
	"time"

	dombooking "petcare-booking/internal/domain/booking"
	"petcare-booking/internal/domain/draft"
	"petcare-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID             uuid.UUID
	ClientID       uuid.UUID
	ProfessionalID uuid.UUID
	RatePlanID     uuid.UUID
	Status         dombooking.Status
	Subtotal       pricing.Money
	ClientCost     pricing.Money
	ProPayout      pricing.Money
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:             uuid.New(),
		ClientID:       uuid.New(),
		ProfessionalID: uuid.New(),
		RatePlanID:     uuid.New(),
		Status:         dombooking.StatusConfirmed,
		Subtotal:       mustMoney("50.00"),
		ClientCost:     mustMoney("59.00"),
		ProPayout:      mustMoney("45.00"),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() *dombooking.Booking {
	return dombooking.ReconstructBooking(
		b.ID, b.ClientID, b.ProfessionalID, b.RatePlanID,
		b.Status,
		b.Subtotal, b.ClientCost, b.ProPayout,
		b.CreatedAt, b.UpdatedAt,
	)
}

type OccurrenceBuilder struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	Start     time.Time
	End       time.Time
	Status    dombooking.OccurrenceStatus
	CreatedBy dombooking.Party
}

func NewOccurrenceBuilder(bookingID uuid.UUID) *OccurrenceBuilder {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	return &OccurrenceBuilder{
		ID:        uuid.New(),
		BookingID: bookingID,
		Start:     start,
		End:       start.Add(time.Hour),
		Status:    dombooking.OccurrenceFinal,
		CreatedBy: dombooking.PartyClient,
	}
}

func (o *OccurrenceBuilder) With(mutate func(*OccurrenceBuilder)) *OccurrenceBuilder {
	mutate(o)
	return o
}

func (o *OccurrenceBuilder) BuildDomain() (*dombooking.Occurrence, error) {
	sched, err := pricing.NewSchedule(o.Start, o.End)
	if err != nil {
		return nil, err
	}
	return dombooking.NewOccurrence(o.ID, o.BookingID, sched, o.Status, o.CreatedBy), nil
}

type RatePlanBuilder struct {
	ID                uuid.UUID
	ProfessionalID    uuid.UUID
	Name              string
	Description       string
	AnimalType        pricing.AnimalType
	BaseRate          pricing.Money
	AdditionalPetRate pricing.Money
	HolidayRate       pricing.Money
	AppliesAfterPets  int
	Granularity       pricing.Granularity
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewRatePlanBuilder() *RatePlanBuilder {
	now := time.Now()
	return &RatePlanBuilder{
		ID:                uuid.New(),
		ProfessionalID:    uuid.New(),
		Name:              "Dog Walking",
		Description:       "Standard hourly dog walking",
		AnimalType:        pricing.AnimalDog,
		BaseRate:          mustMoney("20.00"),
		AdditionalPetRate: mustMoney("5.00"),
		HolidayRate:       mustMoney("30.00"),
		AppliesAfterPets:  1,
		Granularity:       pricing.GranularityHour,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (r *RatePlanBuilder) With(mutate func(*RatePlanBuilder)) *RatePlanBuilder {
	mutate(r)
	return r
}

func (r *RatePlanBuilder) BuildDomain() *pricing.RatePlan {
	return pricing.ReconstructRatePlan(
		r.ID, r.ProfessionalID,
		r.Name, r.Description,
		r.AnimalType,
		r.BaseRate, r.AdditionalPetRate, r.HolidayRate,
		r.AppliesAfterPets, r.Granularity,
		r.CreatedAt, r.UpdatedAt,
	)
}

func NewPetRef(name string) draft.PetRef {
	return draft.PetRef{
		ID:      uuid.New(),
		Name:    name,
		Species: "Dog",
		Breed:   "Shiba Inu",
	}
}

func mustMoney(s string) pricing.Money {
	m, err := pricing.ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}
