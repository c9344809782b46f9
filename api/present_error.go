package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/voxdrive/voxdrive-backend/dto"
	"github.com/voxdrive/voxdrive-backend/models"
	"github.com/voxdrive/voxdrive-backend/utils"
)

// presentError maps domain errors to HTTP responses and reports whether an
// error was rendered.
func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, models.ErrInvalidPriority):
		c.JSON(http.StatusBadRequest, dto.APIErrorResponse{
			Message:   err.Error(),
			ErrorCode: dto.InvalidPriority,
		})
	case errors.Is(err, models.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, dto.APIErrorResponse{
			Message:   err.Error(),
			ErrorCode: dto.InvalidStatus,
		})
	case errors.Is(err, models.ErrUnknownQueueEntry):
		c.JSON(http.StatusNotFound, dto.APIErrorResponse{
			Message:   err.Error(),
			ErrorCode: dto.UnknownQueueEntry,
		})
	case errors.Is(err, models.ErrEntryNotResumable):
		c.JSON(http.StatusConflict, dto.APIErrorResponse{
			Message:   err.Error(),
			ErrorCode: dto.EntryNotResumable,
		})
	case errors.Is(err, models.BadParameterError):
		c.JSON(http.StatusBadRequest, dto.APIErrorResponse{Message: err.Error()})
	case errors.Is(err, models.NotFoundError):
		c.JSON(http.StatusNotFound, dto.APIErrorResponse{Message: err.Error()})
	case errors.Is(err, models.ConflictError):
		c.JSON(http.StatusConflict, dto.APIErrorResponse{Message: err.Error()})
	default:
		utils.LoggerFromContext(ctx).ErrorContext(ctx, fmt.Sprintf("Unexpected error: %+v", err))
		c.JSON(http.StatusInternalServerError, dto.APIErrorResponse{
			Message:   "an unexpected error occurred",
			ErrorCode: dto.UnknownError,
		})
	}
	return true
}
