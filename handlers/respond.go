package handlers

import (
	"errors"
	"net/http"

	"bookhive/database/repository"
	"bookhive/services/scheduling"
	"bookhive/utils"

	"github.com/gin-gonic/gin"
)

// respondSchedulingError maps the engine's typed failures onto HTTP
// statuses. The engine never formats user-facing text; that happens here.
func respondSchedulingError(c *gin.Context, err error) {
	var (
		notFound   scheduling.NotFoundError
		inactive   scheduling.InactiveResourceError
		capability scheduling.CapabilityMismatchError
		schedule   scheduling.ScheduleUnavailableError
		conflict   scheduling.SchedulingConflictError
		transition scheduling.InvalidTransitionError
		upstream   scheduling.UpstreamError
	)

	switch {
	case errors.As(err, &notFound):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	case errors.As(err, &inactive):
		utils.JSONError(c, http.StatusUnprocessableEntity, "staff member is inactive", err.Error())
	case errors.As(err, &capability):
		utils.JSONError(c, http.StatusUnprocessableEntity, "staff member cannot perform this service", err.Error())
	case errors.As(err, &schedule):
		utils.JSONError(c, http.StatusUnprocessableEntity, "requested time is outside working hours", err.Error())
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{
			"message":  "requested time conflicts with an existing booking",
			"conflict": conflict.Conflict,
		})
	case errors.As(err, &transition):
		utils.JSONError(c, http.StatusConflict, "invalid booking status transition", err.Error())
	case errors.As(err, &upstream):
		utils.JSONError(c, http.StatusBadGateway, "storage unavailable", err.Error())
	case errors.Is(err, repository.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	default:
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
	}
}
