package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/yigit/clubr/internal/app/models/dto"
	"github.com/yigit/clubr/internal/pkg/apperrors"
)

// HandleAPIError maps an error to its status code and error envelope
func HandleAPIError(c *gin.Context, err error) {
	status, detail := errorDetailFor(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

// HandleBindingError answers 400 for a request body or query that failed binding
func HandleBindingError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
}

func errorDetailFor(err error) (int, *dto.ErrorDetail) {
	message := err.Error()

	switch {
	case apperrors.Is(err, apperrors.ErrSessionNotFound):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeSessionNotFound, "Session not found or expired")
	case apperrors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Session token has expired")
	case apperrors.Is(err, apperrors.ErrTokenInvalid, apperrors.ErrInvalidFormat):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid session token")
	case apperrors.Is(err, apperrors.ErrResourceNotFound, apperrors.ErrClubNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message)
	case apperrors.Is(err, apperrors.ErrPermissionDenied, apperrors.ErrNotClubAdmin):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, message)
	case apperrors.Is(err, apperrors.ErrConflict, apperrors.ErrNoClubSelected):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeConflict, message)
	case apperrors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)
	case apperrors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, message)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Request cancelled")
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
			WithSeverity(dto.ErrorSeverityCritical)
	}
}
