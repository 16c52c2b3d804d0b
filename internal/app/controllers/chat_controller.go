package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/clubr/internal/app/models/dto"
	"github.com/yigit/clubr/internal/app/services"
	"github.com/yigit/clubr/internal/middleware"
	"github.com/yigit/clubr/internal/pkg/apperrors"
)

// ChatController handles the messages screen
type ChatController struct {
	sessionController
}

// NewChatController creates a new ChatController
func NewChatController(sessionService services.SessionService) *ChatController {
	return &ChatController{sessionController{sessionService: sessionService}}
}

// GetChats lists chats.
// GET /chats
func (c *ChatController) GetChats(ctx *gin.Context) {
	st, ok := c.snapshot(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ChatListResponse{Chats: st.Chats}))
}

// GetChat returns one chat with its messages.
// GET /chats/:id
func (c *ChatController) GetChat(ctx *gin.Context) {
	st, ok := c.snapshot(ctx)
	if !ok {
		return
	}
	chat, found := st.Chat(ctx.Param("id"))
	if !found {
		middleware.HandleAPIError(ctx, apperrors.NewResourceNotFoundError("Chat not found"))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(chat))
}

// SendMessage appends the user's message to a chat.
// POST /chats/:id/messages
func (c *ChatController) SendMessage(ctx *gin.Context) {
	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}
	c.dispatch(ctx, services.SendMessageIntent(ctx.Param("id"), req.Content))
}

// MarkRead clears the unread badge of a chat.
// POST /chats/:id/read
func (c *ChatController) MarkRead(ctx *gin.Context) {
	c.dispatch(ctx, services.MarkChatReadIntent(ctx.Param("id")))
}
