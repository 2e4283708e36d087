package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"nird.dev/outreach/internal/chat"
	"nird.dev/outreach/internal/http/dto"
	"nird.dev/outreach/internal/service"
)

type ChatHandler struct {
	responder service.ChatResponder
}

func NewChatHandler(responder service.ChatResponder) *ChatHandler {
	return &ChatHandler{responder: responder}
}

func (h *ChatHandler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Messages == nil {
		slog.WarnContext(ctx, "invalid chat request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Messages invalides"})
		return
	}

	history := make([]chat.Message, len(req.Messages))
	for i, m := range req.Messages {
		history[i] = chat.Message{Role: m.Role, Content: m.Content}
	}

	c.JSON(http.StatusOK, dto.ChatResponse{
		Message: h.responder.Respond(ctx, history),
	})
}
