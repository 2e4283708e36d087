package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"nird.dev/outreach/internal/http/dto"
	"nird.dev/outreach/internal/service"
)

type IntentHandler struct {
	classifier service.IntentClassifier
}

func NewIntentHandler(classifier service.IntentClassifier) *IntentHandler {
	return &IntentHandler{classifier: classifier}
}

func (h *IntentHandler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.AnalyzeIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid intent request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Intent invalide"})
		return
	}

	result := h.classifier.Classify(ctx, req.Intent)

	c.JSON(http.StatusOK, dto.AnalyzeIntentResponse{
		Mission:     result.Mission.String(),
		Explanation: result.Explanation,
	})
}
