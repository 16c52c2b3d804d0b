package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/clubr/internal/app/controllers"
	"github.com/yigit/clubr/internal/middleware"
	"github.com/yigit/clubr/internal/pkg/websocket"
)

// Controllers groups every controller the router needs
type Controllers struct {
	Health  *controllers.HealthController
	Session *controllers.SessionController
	Club    *controllers.ClubController
	Admin   *controllers.AdminController
	Profile *controllers.ProfileController
	Chat    *controllers.ChatController
	Stream  *websocket.Handler
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, sessionMiddleware *middleware.SessionMiddleware) {
	router.GET("/ping", c.Health.Ping)

	// API version group
	v1 := router.Group("/api/v1")
	v1.GET("/health", c.Health.Ping)

	// --- Public session routes ---
	public := v1.Group("/session")
	{
		public.POST("/login", c.Session.Login)
		public.POST("/signup", c.Session.SignUp)
	}

	// --- Session-bound routes ---
	bound := v1.Group("")
	bound.Use(sessionMiddleware.RequireSession())

	sessions := bound.Group("/session")
	{
		sessions.GET("", c.Session.GetSession)
		sessions.DELETE("", c.Session.EndSession)
		sessions.POST("/logout", c.Session.Logout)
		sessions.POST("/interests", c.Session.CompleteInterests)
		sessions.POST("/navigate", c.Session.Navigate)
		sessions.POST("/message-admin", c.Session.MessageAdmin)
		// Browsers cannot set headers on websocket upgrades, so the token may come as ?token=
		sessions.GET("/stream", c.Stream.HandleConnection)
	}

	clubs := bound.Group("/clubs")
	{
		clubs.GET("/discovery", c.Club.GetDiscovery)
		clubs.GET("/recommended", c.Club.GetRecommended)
		clubs.GET("/following", c.Club.GetFollowing)
		clubs.GET("/admin", c.Club.GetAdminClubs)
		clubs.GET("/:id", c.Club.GetClubByID)
		clubs.POST("/:id/select", c.Club.SelectClub)
		clubs.POST("/:id/follow", c.Club.ToggleFollow)
	}

	bound.GET("/interests", c.Session.GetInterests)
	bound.GET("/feed", c.Club.GetFeed)
	bound.GET("/events", c.Club.GetEvents)
	bound.POST("/posts/:id/open", c.Club.OpenPost)
	bound.POST("/events/:id/open", c.Club.OpenEvent)

	admin := bound.Group("/admin")
	{
		admin.POST("/mode", c.Admin.ToggleMode)
		admin.POST("/posts", c.Admin.CreatePost)
		admin.POST("/events", c.Admin.CreateEvent)
		admin.PATCH("/club", c.Admin.UpdateClub)
	}

	profile := bound.Group("/profile")
	{
		profile.GET("", c.Profile.GetProfile)
		profile.PATCH("", c.Profile.UpdateProfile)
	}

	chats := bound.Group("/chats")
	{
		chats.GET("", c.Chat.GetChats)
		chats.GET("/:id", c.Chat.GetChat)
		chats.POST("/:id/messages", c.Chat.SendMessage)
		chats.POST("/:id/read", c.Chat.MarkRead)
	}
}
