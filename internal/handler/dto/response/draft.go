package response

import (
	"petcare-booking/internal/domain/draft"
	"petcare-booking/internal/usecase/commands"
)

// DraftPatchResponse reports the staged snapshot after a patch together
// with the booking-status outcome of reconciliation.
type DraftPatchResponse struct {
	BookingStatus string          `json:"booking_status"`
	StatusDisplay string          `json:"status_display"`
	StatusChanged bool            `json:"status_changed"`
	Draft         *draft.Snapshot `json:"draft"`
}

func FromPatchResult(result *commands.PatchResult) *DraftPatchResponse {
	return &DraftPatchResponse{
		BookingStatus: string(result.BookingStatus),
		StatusDisplay: result.BookingStatus.Display(),
		StatusChanged: result.StatusChanged,
		Draft:         result.Draft,
	}
}

type DraftResponse struct {
	Draft *draft.Snapshot `json:"draft"`
}

func FromSnapshot(snap *draft.Snapshot) *DraftResponse {
	return &DraftResponse{Draft: snap}
}
