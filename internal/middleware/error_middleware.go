package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shinystarlight00/papi2/internal/app/models/dto"
	"github.com/shinystarlight00/papi2/internal/pkg/apperrors"
	"github.com/shinystarlight00/papi2/internal/pkg/logger"
)

// HandleAPIError maps a service error onto the response envelope. Every
// domain outcome is written with HTTP 200; clients branch on the body's
// status field, not on the transport code. Underlying error detail goes
// to the log only.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusOK, dto.Error(dto.StatusNotFound, "not found"))
	case apperrors.Is(err, apperrors.ErrNoFieldsToUpdate):
		c.JSON(http.StatusOK, dto.Error(dto.StatusValidationError, "no fields to update"))
	case apperrors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusOK, dto.Error(dto.StatusValidationError, err.Error()))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled service error")
		c.JSON(http.StatusOK, dto.Error(dto.StatusInternalError, "internal error"))
	}
}
