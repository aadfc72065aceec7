package response

import (
	"petcare-booking/internal/usecase/queries"
)

type BookingDetailResponse struct {
	*queries.BookingDetailView
}

func FromBookingDetailView(view *queries.BookingDetailView) *BookingDetailResponse {
	return &BookingDetailResponse{BookingDetailView: view}
}

type BookingListResponse struct {
	Bookings []*queries.BookingListItem `json:"bookings"`
	Page     int                        `json:"page"`
	PageSize int                        `json:"page_size"`
	HasNext  bool                       `json:"has_next"`
}

func FromBookingPage(page *queries.BookingPage, pageNum, pageSize int) *BookingListResponse {
	items := page.Bookings
	if items == nil {
		items = []*queries.BookingListItem{}
	}
	return &BookingListResponse{
		Bookings: items,
		Page:     pageNum,
		PageSize: pageSize,
		HasNext:  page.HasNext,
	}
}

type AvailablePetsResponse struct {
	Pets []queries.PetView `json:"pets"`
}

func FromPetViews(pets []queries.PetView) *AvailablePetsResponse {
	if pets == nil {
		pets = []queries.PetView{}
	}
	return &AvailablePetsResponse{Pets: pets}
}
