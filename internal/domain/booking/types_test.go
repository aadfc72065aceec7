//go:build unit

package booking_test

import (
	"testing"

	"petcare-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		status   booking.Status
		editable bool
		terminal bool
	}{
		{booking.StatusDraft, true, false},
		{booking.StatusPendingInitialProChanges, true, false},
		{booking.StatusPendingProChanges, true, false},
		{booking.StatusPendingClientApproval, false, false},
		{booking.StatusConfirmedPendingProChanges, true, false},
		{booking.StatusConfirmed, true, true},
		{booking.StatusDenied, false, true},
		{booking.StatusCancelled, false, true},
		{booking.StatusCompleted, false, true},
	}

	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.True(t, tc.status.IsValid())
			assert.Equal(t, tc.editable, tc.status.IsEditable())
			assert.Equal(t, tc.terminal, tc.status.IsTerminal())
		})
	}

	t.Run("unknown status", func(t *testing.T) {
		unknown := booking.Status("ARCHIVED")
		assert.False(t, unknown.IsValid())
		assert.False(t, unknown.IsEditable())
		assert.Equal(t, "ARCHIVED", unknown.Display())
	})

	t.Run("display strings", func(t *testing.T) {
		assert.Equal(t, "Confirmed", booking.StatusConfirmed.Display())
		assert.Equal(t, "Confirmed Pending Professional Changes", booking.StatusConfirmedPendingProChanges.Display())
	})
}
