package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "petcare-booking/internal/handler/dto/request"
	resdto "petcare-booking/internal/handler/dto/response"
	"petcare-booking/internal/handler/httperr"
	"petcare-booking/internal/handler/middleware"
	"petcare-booking/internal/pkg/errs"
	"petcare-booking/internal/usecase/commands"
)

type RatePlanHandler struct {
	cmds commands.RatePlanCommands
}

func NewRatePlanHandler(cmds commands.RatePlanCommands) *RatePlanHandler {
	return &RatePlanHandler{cmds: cmds}
}

// @Summary Update rate plan
// @Description Edit plan pricing and propagate the change through every active booking on the plan
// @Tags rate-plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rate plan ID"
// @Param request body reqdto.UpdateRatePlanRequest true "Rate plan update"
// @Success 200 {object} resdto.RatePlanResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rate-plans/{id} [patch]
func (h *RatePlanHandler) Update(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rate plan ID format", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user in context"), "Unauthorized", nil)
		return
	}

	var req reqdto.UpdateRatePlanRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}
	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid rate plan values", nil)
		return
	}

	plan, err := h.cmds.UpdateRatePlan(c.Request.Context(), planID, actorID, params)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRatePlan(plan))
}
