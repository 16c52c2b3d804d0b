package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/clubr/internal/app/models"
	"github.com/yigit/clubr/internal/app/models/dto"
	"github.com/yigit/clubr/internal/app/services"
	"github.com/yigit/clubr/internal/middleware"
)

// SessionController handles session lifecycle and navigation
type SessionController struct {
	sessionController
}

// NewSessionController creates a new SessionController
func NewSessionController(sessionService services.SessionService) *SessionController {
	return &SessionController{sessionController{sessionService: sessionService}}
}

// Login signs in. A valid token resumes its session, anything else opens a new one.
// POST /session/login
func (c *SessionController) Login(ctx *gin.Context) {
	response, err := c.sessionService.Login(ctx.Request.Context(), middleware.TokenFromRequest(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// SignUp opens a new session on the interest-selection screen.
// POST /session/signup
func (c *SessionController) SignUp(ctx *gin.Context) {
	response, err := c.sessionService.SignUp(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(response))
}

// GetSession returns the current view.
// GET /session
func (c *SessionController) GetSession(ctx *gin.Context) {
	st, ok := c.snapshot(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewSessionView(st)))
}

// EndSession discards the session and drops its live connections.
// DELETE /session
func (c *SessionController) EndSession(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}
	if err := c.sessionService.Close(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Session ended"))
}

// Logout returns to the login screen, keeping the session.
// POST /session/logout
func (c *SessionController) Logout(ctx *gin.Context) {
	c.dispatch(ctx, services.LogoutIntent())
}

// GetInterests lists the selectable tags and the current choice.
// GET /interests
func (c *SessionController) GetInterests(ctx *gin.Context) {
	st, ok := c.snapshot(ctx)
	if !ok {
		return
	}
	selected := st.User.Interests
	if selected == nil {
		selected = []string{}
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.InterestsResponse{
		Available: st.Interests,
		Selected:  selected,
	}))
}

// CompleteInterests records the chosen interests and moves to discovery.
// POST /session/interests
func (c *SessionController) CompleteInterests(ctx *gin.Context) {
	var req dto.InterestsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}
	c.dispatch(ctx, services.CompleteInterestsIntent(req.Interests))
}

// Navigate switches to another screen.
// POST /session/navigate
func (c *SessionController) Navigate(ctx *gin.Context) {
	var req dto.NavigateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}
	c.dispatch(ctx, services.NavigateIntent(models.Screen(req.Screen)))
}

// MessageAdmin opens the messages screen.
// POST /session/message-admin
func (c *SessionController) MessageAdmin(ctx *gin.Context) {
	c.dispatch(ctx, services.MessageAdminIntent())
}
