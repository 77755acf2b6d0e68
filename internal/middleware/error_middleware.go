package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/studenthub/internal/app/models/dto"
	"github.com/campushq/studenthub/internal/pkg/apperrors"
	"github.com/campushq/studenthub/internal/pkg/logger"
)

// HandleAPIError translates service and repository errors into API
// responses. Unexpected errors are logged once here and surfaced as a
// generic server failure; nothing is retried.
func HandleAPIError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError

	switch {
	case errors.As(err, &validationErr):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").
			WithDetails(validationErr.Violations)
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))

	case errors.Is(err, apperrors.ErrInvalidStudentID):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidID, "Invalid student ID")
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))

	case errors.Is(err, apperrors.ErrStudentNotFound):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student not found")
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid username or password")
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))

	case errors.Is(err, apperrors.ErrPermissionDenied):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))

	case errors.Is(err, apperrors.ErrStorageUnavailable):
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Storage operation failed")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Storage unavailable")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
	}
}
