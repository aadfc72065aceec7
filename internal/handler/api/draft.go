package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "petcare-booking/internal/handler/dto/request"
	resdto "petcare-booking/internal/handler/dto/response"
	"petcare-booking/internal/handler/httperr"
	"petcare-booking/internal/usecase/commands"
	"petcare-booking/internal/usecase/queries"
)

type DraftHandler struct {
	cmds commands.DraftCommands
	q    queries.BookingQueries
}

func NewDraftHandler(cmds commands.DraftCommands, q queries.BookingQueries) *DraftHandler {
	return &DraftHandler{cmds: cmds, q: q}
}

// @Summary Patch booking draft
// @Description Stage one edit (pets, rate plan, or occurrence schedule) and recompute draft costs
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.DraftPatchRequest true "Draft patch"
// @Success 200 {object} resdto.DraftPatchResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/draft [patch]
func (h *DraftHandler) Patch(c *gin.Context) {
	bookingID, actorID, ok := bookingActor(c)
	if !ok {
		return
	}

	var req reqdto.DraftPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.ApplyPatch(c.Request.Context(), bookingID, actorID, req.ToDomain())
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPatchResult(result))
}

// @Summary Get booking draft
// @Description Get the staged snapshot for a booking
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/draft [get]
func (h *DraftHandler) Get(c *gin.Context) {
	bookingID, actorID, ok := bookingActor(c)
	if !ok {
		return
	}
	snap, err := h.q.GetDraft(c.Request.Context(), bookingID, actorID)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSnapshot(snap))
}

// @Summary Promote booking draft
// @Description Write the staged edits back to the live booking and delete the draft
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/draft/promote [post]
func (h *DraftHandler) Promote(c *gin.Context) {
	bookingID, actorID, ok := bookingActor(c)
	if !ok {
		return
	}
	if err := h.cmds.PromoteDraft(c.Request.Context(), bookingID, actorID); err != nil {
		abortDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Discard booking draft
// @Description Drop the staged snapshot without touching the live booking
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/draft [delete]
func (h *DraftHandler) Discard(c *gin.Context) {
	bookingID, actorID, ok := bookingActor(c)
	if !ok {
		return
	}
	if err := h.cmds.DiscardDraft(c.Request.Context(), bookingID, actorID); err != nil {
		abortDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Available pets
// @Description List the client's pets available for the draft roster
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.AvailablePetsResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/available-pets [get]
func (h *DraftHandler) AvailablePets(c *gin.Context) {
	bookingID, actorID, ok := bookingActor(c)
	if !ok {
		return
	}
	pets, err := h.q.AvailablePets(c.Request.Context(), bookingID, actorID)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPetViews(pets))
}
