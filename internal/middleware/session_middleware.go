package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/clubr/internal/app/models/dto"
	"github.com/yigit/clubr/internal/pkg/apperrors"
	"github.com/yigit/clubr/internal/pkg/auth"
)

// ContextKeySessionID is the gin context key holding the resolved session id.
const ContextKeySessionID = "sessionID"

// SessionResolver maps a token to a live session id
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (string, error)
}

// SessionMiddleware binds requests to their session
type SessionMiddleware struct {
	resolver SessionResolver
}

// NewSessionMiddleware creates a new SessionMiddleware
func NewSessionMiddleware(resolver SessionResolver) *SessionMiddleware {
	return &SessionMiddleware{resolver: resolver}
}

// TokenFromRequest returns the session token from the Authorization header,
// or from the token query parameter when the header is absent.
func TokenFromRequest(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		header = c.Query("token")
	}
	token, err := auth.ExtractBearerToken(header)
	if err != nil {
		return ""
	}
	return token
}

// RequireSession aborts with 401 unless the request carries a token for a live session
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c)
		if token == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeTokenNotFound, "Session token required").
				WithDetails("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		sessionID, err := m.resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			message := "Invalid session token"
			switch {
			case errors.Is(err, apperrors.ErrTokenExpired):
				errorCode, message = dto.ErrorCodeExpiredToken, "Session token has expired"
			case errors.Is(err, apperrors.ErrSessionNotFound):
				errorCode, message = dto.ErrorCodeSessionNotFound, "Session not found or expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(errorCode, message)))
			return
		}

		c.Set(ContextKeySessionID, sessionID)
		c.Next()
	}
}

// SessionIDFromContext returns the session id set by RequireSession
func SessionIDFromContext(c *gin.Context) (string, bool) {
	id := c.GetString(ContextKeySessionID)
	return id, id != ""
}
