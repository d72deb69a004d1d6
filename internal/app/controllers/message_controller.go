package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models/dto"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/services"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/middleware"
)

// MessageController handles direct messaging
type MessageController struct {
	messageService *services.MessageService
}

// NewMessageController creates a new MessageController
func NewMessageController(messageService *services.MessageService) *MessageController {
	return &MessageController{messageService: messageService}
}

// Send delivers a message
// @Summary Send a message
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SendMessageRequest true "Message payload"
// @Success 201 {object} dto.APIResponse{data=dto.SendMessageResponse}
// @Failure 404 {object} dto.ErrorResponse "Receiver not found"
// @Router /messages [post]
func (c *MessageController) Send(ctx *gin.Context) {
	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.messageService.Send(ctx.Request.Context(), middleware.CallerID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(resp, "Message sent"))
}

// List returns every message the caller sent or received
// @Summary List messages
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.MessageDetail}
// @Router /messages [get]
func (c *MessageController) List(ctx *gin.Context) {
	messages, err := c.messageService.List(ctx.Request.Context(), middleware.CallerID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(messages, ""))
}

// Conversations returns the caller's inbox rollup
// @Summary List conversations
// @Description Returns one row per counterparty with the last message and unread count.
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.ConversationSummary}
// @Router /messages/conversations [get]
func (c *MessageController) Conversations(ctx *gin.Context) {
	conversations, err := c.messageService.Conversations(ctx.Request.Context(), middleware.CallerID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(conversations, ""))
}

// Conversation returns the two-way history with another user
// @Summary Get a conversation
// @Description Returns the full history with another user, oldest first. Their messages are marked read.
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param otherUserId path int true "Other user ID"
// @Success 200 {object} dto.APIResponse{data=[]models.MessageDetail}
// @Router /messages/conversation/{otherUserId} [get]
func (c *MessageController) Conversation(ctx *gin.Context) {
	otherUserID, ok := parseIDParam(ctx, "otherUserId")
	if !ok {
		return
	}

	messages, err := c.messageService.Conversation(ctx.Request.Context(), middleware.CallerID(ctx), otherUserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(messages, ""))
}

// MarkRead marks the counterparty's messages read
// @Summary Mark a conversation read
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param otherUserId path int true "Other user ID"
// @Success 200 {object} dto.APIResponse{data=dto.MarkReadResponse}
// @Router /messages/conversation/{otherUserId}/read [put]
func (c *MessageController) MarkRead(ctx *gin.Context) {
	otherUserID, ok := parseIDParam(ctx, "otherUserId")
	if !ok {
		return
	}

	resp, err := c.messageService.MarkRead(ctx.Request.Context(), middleware.CallerID(ctx), otherUserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, "Conversation marked read"))
}
