package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/clubr/internal/app/models/dto"
	"github.com/yigit/clubr/internal/app/services"
	"github.com/yigit/clubr/internal/app/session"
	"github.com/yigit/clubr/internal/middleware"
	"github.com/yigit/clubr/internal/pkg/apperrors"
)

// sessionController carries what every session-bound controller needs
type sessionController struct {
	sessionService services.SessionService
}

// sessionID returns the id bound by RequireSession. A missing id means the
// route was registered without the middleware.
func sessionID(ctx *gin.Context) (string, bool) {
	id, ok := middleware.SessionIDFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrSessionNotFound)
	}
	return id, ok
}

// dispatch runs in against the caller's session and writes the result
func (c *sessionController) dispatch(ctx *gin.Context, in services.Intent) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	response, err := c.sessionService.Dispatch(ctx.Request.Context(), id, in)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	status := http.StatusOK
	if response.Ref != "" {
		status = http.StatusCreated
	}
	ctx.JSON(status, dto.NewSuccessResponse(response))
}

// snapshot loads the caller's session state, answering with an error when it is gone
func (c *sessionController) snapshot(ctx *gin.Context) (session.State, bool) {
	id, ok := sessionID(ctx)
	if !ok {
		return session.State{}, false
	}

	st, err := c.sessionService.Snapshot(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return session.State{}, false
	}
	return st, true
}
