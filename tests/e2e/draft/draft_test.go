//go:build e2e

package draft_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"petcare-booking/internal/handler/dto/request"
	"petcare-booking/internal/handler/dto/response"
	"petcare-booking/internal/handler/middleware"
	"petcare-booking/tests/common/authtest"
	"petcare-booking/tests/common/dbtest"
	"petcare-booking/tests/common/httptest"
	"petcare-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	draftURL   = "/api/bookings/%s/draft"
	promoteURL = "/api/bookings/%s/draft/promote"
)

type DraftFlowSuite struct {
	e2e.SharedSuite
}

func (s *DraftFlowSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestDraftFlowSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(DraftFlowSuite))
}

// seeded is one confirmed booking with a single attached pet and one FINAL
// occurrence, the minimal live state a draft can stage edits against.
type seeded struct {
	clientID uuid.UUID
	proID    uuid.UUID
	planID   uuid.UUID
	booking  uuid.UUID
	mochi    uuid.UUID
}

func (s *DraftFlowSuite) seedConfirmedBooking(t *testing.T) seeded {
	t.Helper()

	sd := seeded{clientID: uuid.New(), proID: uuid.New()}
	sd.planID = dbtest.CreateTestRatePlan(t, s.DB, sd.proID, "20.00")
	sd.booking = dbtest.CreateTestBooking(t, s.DB, sd.clientID, sd.proID, sd.planID, "CONFIRMED")
	sd.mochi = dbtest.CreateTestPet(t, s.DB, sd.clientID, "Mochi")
	dbtest.AttachBookingPet(t, s.DB, sd.booking, sd.mochi)

	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	dbtest.CreateTestOccurrence(t, s.DB, sd.booking, start, start.Add(time.Hour), "FINAL")
	return sd
}

func (s *DraftFlowSuite) bookingStatus(t *testing.T, bookingID uuid.UUID) string {
	t.Helper()

	var status string
	err := s.DB.QueryRow(context.Background(),
		"SELECT status FROM bookings WHERE id = $1", bookingID).Scan(&status)
	require.NoError(t, err)
	return status
}

func (s *DraftFlowSuite) draftCount(t *testing.T, bookingID uuid.UUID) int {
	t.Helper()

	var n int
	err := s.DB.QueryRow(context.Background(),
		"SELECT count(*) FROM booking_drafts WHERE booking_id = $1", bookingID).Scan(&n)
	require.NoError(t, err)
	return n
}

func (s *DraftFlowSuite) TestDraftPatchReconciliation() {
	s.Run("roster change stages costs and flips the live status", func() {
		t := s.T()

		sd := s.seedConfirmedBooking(t)
		pip := dbtest.CreateTestPet(t, s.DB, sd.clientID, "Pip")
		token := authtest.IssueToken(t, s.Config.JWT, sd.proID, middleware.RoleProfessional)

		pets := []uuid.UUID{sd.mochi, pip}
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(draftURL, sd.booking), request.DraftPatchRequest{Pets: &pets}, token)

		var res response.DraftPatchResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "CONFIRMED_PENDING_PROFESSIONAL_CHANGES", res.BookingStatus)
		require.True(t, res.StatusChanged)
		// $20.00 base + $5.00 second-pet surcharge, priced on the draft copy
		require.Equal(t, "25.00", res.Draft.Summary.Subtotal)

		require.Equal(t, "CONFIRMED_PENDING_PROFESSIONAL_CHANGES", s.bookingStatus(t, sd.booking))
		require.Equal(t, 1, s.draftCount(t, sd.booking))

		// Live derived records stay untouched while edits are staged.
		var liveCost string
		err := s.DB.QueryRow(context.Background(),
			"SELECT calculated_cost::text FROM occurrences WHERE booking_id = $1", sd.booking).Scan(&liveCost)
		require.NoError(t, err)
		require.Equal(t, "0.00", liveCost)
	})

	s.Run("restoring the live roster reverts the status", func() {
		t := s.T()

		sd := s.seedConfirmedBooking(t)
		pip := dbtest.CreateTestPet(t, s.DB, sd.clientID, "Pip")
		token := authtest.IssueToken(t, s.Config.JWT, sd.proID, middleware.RoleProfessional)

		grown := []uuid.UUID{sd.mochi, pip}
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(draftURL, sd.booking), request.DraftPatchRequest{Pets: &grown}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		original := []uuid.UUID{sd.mochi}
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(draftURL, sd.booking), request.DraftPatchRequest{Pets: &original}, token)

		var res response.DraftPatchResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "CONFIRMED", res.BookingStatus)
		require.True(t, res.StatusChanged)
		require.Equal(t, "CONFIRMED", s.bookingStatus(t, sd.booking))
	})

	s.Run("client cannot stage draft edits", func() {
		t := s.T()

		sd := s.seedConfirmedBooking(t)
		token := authtest.IssueToken(t, s.Config.JWT, sd.clientID, middleware.RoleClient)

		pets := []uuid.UUID{sd.mochi}
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(draftURL, sd.booking), request.DraftPatchRequest{Pets: &pets}, token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

func (s *DraftFlowSuite) TestDraftPromotion() {
	s.Run("staged plan switch lands on the live booking", func() {
		t := s.T()

		sd := s.seedConfirmedBooking(t)
		pricier := dbtest.CreateTestRatePlan(t, s.DB, sd.proID, "40.00")
		token := authtest.IssueToken(t, s.Config.JWT, sd.proID, middleware.RoleProfessional)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(draftURL, sd.booking), request.DraftPatchRequest{RatePlanID: &pricier}, token)

		var res response.DraftPatchResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "40.00", res.Draft.Summary.Subtotal)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(promoteURL, sd.booking), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		var livePlanID uuid.UUID
		var subtotal string
		err := s.DB.QueryRow(context.Background(),
			"SELECT rate_plan_id FROM bookings WHERE id = $1", sd.booking).Scan(&livePlanID)
		require.NoError(t, err)
		require.Equal(t, pricier, livePlanID)

		err = s.DB.QueryRow(context.Background(),
			"SELECT subtotal::text FROM booking_summaries WHERE booking_id = $1", sd.booking).Scan(&subtotal)
		require.NoError(t, err)
		require.Equal(t, "40.00", subtotal)

		require.Equal(t, "PENDING_CLIENT_APPROVAL", s.bookingStatus(t, sd.booking))
		require.Equal(t, 0, s.draftCount(t, sd.booking))
	})

	s.Run("promotion without a draft is a 404", func() {
		t := s.T()

		sd := s.seedConfirmedBooking(t)
		token := authtest.IssueToken(t, s.Config.JWT, sd.proID, middleware.RoleProfessional)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(promoteURL, sd.booking), nil, token)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})
}
