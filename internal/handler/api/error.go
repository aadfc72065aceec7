package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"petcare-booking/internal/handler/httperr"
	"petcare-booking/internal/infra"
	"petcare-booking/internal/pkg/errs"
)

// abortDomainError translates usecase sentinels into HTTP statuses. Every
// handler funnels command and query failures through here so the mapping
// stays in one place.
func abortDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, errs.ErrOccurrenceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Occurrence not found", nil)
	case errors.Is(err, errs.ErrRatePlanNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Rate plan not found", nil)
	case errors.Is(err, errs.ErrDraftNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Draft not found", nil)
	case errors.Is(err, errs.ErrPetNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Pet not found", nil)
	case errors.Is(err, errs.ErrNotBookingParty), errors.Is(err, errs.ErrNotPlanOwner):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Forbidden", nil)
	case errors.Is(err, errs.ErrMultiFieldPatch):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Patch must set exactly one field", nil)
	case errors.Is(err, errs.ErrBookingNotEditable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking is not editable in its current status", nil)
	case errors.Is(err, errs.ErrDomainValidation), errors.Is(err, errs.ErrComputation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
	case infra.IsKind(err, infra.KindNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
