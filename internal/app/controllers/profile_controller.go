package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/clubr/internal/app/models/dto"
	"github.com/yigit/clubr/internal/app/services"
	"github.com/yigit/clubr/internal/middleware"
)

// ProfileController handles the profile screen
type ProfileController struct {
	sessionController
}

// NewProfileController creates a new ProfileController
func NewProfileController(sessionService services.SessionService) *ProfileController {
	return &ProfileController{sessionController{sessionService: sessionService}}
}

// GetProfile returns the user with followed and administered clubs.
// GET /profile
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	st, ok := c.snapshot(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewProfileResponse(st)))
}

// UpdateProfile edits name, bio and location.
// PATCH /profile
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}
	c.dispatch(ctx, services.UpdateProfileIntent(req.ToPatch()))
}
