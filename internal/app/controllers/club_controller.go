package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/clubr/internal/app/models/dto"
	"github.com/yigit/clubr/internal/app/services"
	"github.com/yigit/clubr/internal/middleware"
	"github.com/yigit/clubr/internal/pkg/apperrors"
	"github.com/yigit/clubr/internal/pkg/helpers"
)

// ClubController handles club browsing, following and the feed
type ClubController struct {
	sessionController
}

// NewClubController creates a new ClubController
func NewClubController(sessionService services.SessionService) *ClubController {
	return &ClubController{sessionController{sessionService: sessionService}}
}

// GetDiscovery lists clubs the user does not follow, filtered by the search
// query parameter and paginated.
// GET /clubs/discovery?search=&page=&size=
func (c *ClubController) GetDiscovery(ctx *gin.Context) {
	st, ok := c.snapshot(ctx)
	if !ok {
		return
	}
	page, size := helpers.ParsePaginationParams(ctx)
	clubs, pagination := helpers.Paginate(st.SearchDiscovery(ctx.Query("search")), page, size)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PaginatedResponse{
		Items:      clubs,
		Pagination: pagination,
	}))
}

// GetRecommended lists discovery clubs, those matching the user's interests first.
// GET /clubs/recommended
func (c *ClubController) GetRecommended(ctx *gin.Context) {
	st, ok := c.snapshot(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(st.RecommendedClubs()))
}

// GetFollowing lists followed clubs.
// GET /clubs/following
func (c *ClubController) GetFollowing(ctx *gin.Context) {
	st, ok := c.snapshot(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(st.FollowedClubs()))
}

// GetAdminClubs lists clubs the user administers.
// GET /clubs/admin
func (c *ClubController) GetAdminClubs(ctx *gin.Context) {
	st, ok := c.snapshot(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(st.AdminClubs()))
}

// GetClubByID returns a club with its posts and events without selecting it.
// GET /clubs/:id
func (c *ClubController) GetClubByID(ctx *gin.Context) {
	st, ok := c.snapshot(ctx)
	if !ok {
		return
	}
	club, found := st.Club(ctx.Param("id"))
	if !found {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrClubNotFound, "Club not found"))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewClubDetail(&st, club)))
}

// SelectClub opens a club screen.
// POST /clubs/:id/select
func (c *ClubController) SelectClub(ctx *gin.Context) {
	c.dispatch(ctx, services.SelectClubIntent(ctx.Param("id")))
}

// ToggleFollow follows or unfollows a club.
// POST /clubs/:id/follow
func (c *ClubController) ToggleFollow(ctx *gin.Context) {
	c.dispatch(ctx, services.ToggleFollowIntent(ctx.Param("id")))
}

// GetFeed returns posts and events of followed clubs. Pagination applies to posts.
// GET /feed?page=&size=
func (c *ClubController) GetFeed(ctx *gin.Context) {
	st, ok := c.snapshot(ctx)
	if !ok {
		return
	}
	page, size := helpers.ParsePaginationParams(ctx)
	posts, pagination := helpers.Paginate(st.FollowedPosts(), page, size)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FeedResponse{
		Posts:      posts,
		Events:     st.FollowedEvents(),
		Pagination: pagination,
	}))
}

// GetEvents lists every event in collection order.
// GET /events
func (c *ClubController) GetEvents(ctx *gin.Context) {
	st, ok := c.snapshot(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(st.Events))
}

// OpenPost opens the club that published a post.
// POST /posts/:id/open
func (c *ClubController) OpenPost(ctx *gin.Context) {
	c.dispatch(ctx, services.OpenPostIntent(ctx.Param("id")))
}

// OpenEvent opens the club hosting an event.
// POST /events/:id/open
func (c *ClubController) OpenEvent(ctx *gin.Context) {
	c.dispatch(ctx, services.OpenEventIntent(ctx.Param("id")))
}
