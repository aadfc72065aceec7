package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	resdto "petcare-booking/internal/handler/dto/response"
	"petcare-booking/internal/handler/httperr"
	"petcare-booking/internal/handler/middleware"
	"petcare-booking/internal/pkg/errs"
	"petcare-booking/internal/usecase/commands"
	"petcare-booking/internal/usecase/queries"
)

type BookingHandler struct {
	sync commands.BookingSyncCommands
	q    queries.BookingQueries
}

func NewBookingHandler(sync commands.BookingSyncCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{sync: sync, q: q}
}

// @Summary Get booking
// @Description Get booking detail with occurrences, pets and cost summary
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingDetailResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	bookingID, actorID, ok := bookingActor(c)
	if !ok {
		return
	}
	view, err := h.q.GetBooking(c.Request.Context(), bookingID, actorID)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingDetailView(view))
}

// @Summary List bookings
// @Description List the caller's bookings, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user in context"), "Unauthorized", nil)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	result, err := h.q.ListBookings(c.Request.Context(), actorID, page, pageSize)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingPage(result, page, pageSize))
}

// @Summary Add pet to booking
// @Description Attach a pet to the live roster and re-derive costs
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param pet_id path string true "Pet ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/pets/{pet_id} [put]
func (h *BookingHandler) AddPet(c *gin.Context) {
	bookingID, actorID, ok := bookingActor(c)
	if !ok {
		return
	}
	petID, err := uuid.Parse(c.Param("pet_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pet ID format", nil)
		return
	}
	if err := h.sync.AddPet(c.Request.Context(), bookingID, actorID, petID); err != nil {
		abortDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Remove pet from booking
// @Description Detach a pet from the live roster and re-derive costs
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param pet_id path string true "Pet ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/pets/{pet_id} [delete]
func (h *BookingHandler) RemovePet(c *gin.Context) {
	bookingID, actorID, ok := bookingActor(c)
	if !ok {
		return
	}
	petID, err := uuid.Parse(c.Param("pet_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pet ID format", nil)
		return
	}
	if err := h.sync.RemovePet(c.Request.Context(), bookingID, actorID, petID); err != nil {
		abortDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Resync booking costs
// @Description Re-run occurrence pricing and the summary rollup
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/resync [post]
func (h *BookingHandler) Resync(c *gin.Context) {
	bookingID, actorID, ok := bookingActor(c)
	if !ok {
		return
	}
	if err := h.sync.Resync(c.Request.Context(), bookingID, actorID); err != nil {
		abortDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// bookingActor parses the booking path param and pulls the authenticated
// user, aborting the request itself on failure.
func bookingActor(c *gin.Context) (bookingID, actorID uuid.UUID, ok bool) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return uuid.Nil, uuid.Nil, false
	}
	actorID, found := middleware.GetUserID(c)
	if !found {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user in context"), "Unauthorized", nil)
		return uuid.Nil, uuid.Nil, false
	}
	return bookingID, actorID, true
}
