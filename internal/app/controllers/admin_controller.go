package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/clubr/internal/app/models/dto"
	"github.com/yigit/clubr/internal/app/services"
	"github.com/yigit/clubr/internal/middleware"
)

// AdminController handles admin mode and the admin club's content
type AdminController struct {
	sessionController
}

// NewAdminController creates a new AdminController
func NewAdminController(sessionService services.SessionService) *AdminController {
	return &AdminController{sessionController{sessionService: sessionService}}
}

// ToggleMode enters admin mode for clubId, or leaves it when clubId is empty.
// POST /admin/mode
func (c *AdminController) ToggleMode(ctx *gin.Context) {
	var req dto.AdminModeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}
	c.dispatch(ctx, services.ToggleAdminModeIntent(req.ClubID))
}

// CreatePost publishes a post as the admin club.
// POST /admin/posts
func (c *AdminController) CreatePost(ctx *gin.Context) {
	var req dto.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}
	c.dispatch(ctx, services.CreatePostIntent(req.Content, req.Image))
}

// CreateEvent schedules an event for the admin club.
// POST /admin/events
func (c *AdminController) CreateEvent(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}
	c.dispatch(ctx, services.CreateEventIntent(req.ToDetails()))
}

// UpdateClub edits the admin club.
// PATCH /admin/club
func (c *AdminController) UpdateClub(ctx *gin.Context) {
	var req dto.UpdateClubRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}
	c.dispatch(ctx, services.UpdateClubIntent(req.ToPatch()))
}
