package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"nird.dev/outreach/internal/http/dto"
	"nird.dev/outreach/internal/service"
)

type SubmissionHandler struct {
	submissions service.SubmissionService
}

func NewSubmissionHandler(submissions service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissions: submissions}
}

func (h *SubmissionHandler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid submit request", "error", err)
		c.JSON(http.StatusBadRequest, dto.SubmitErrorResponse{
			Success: false,
			Error:   "Données manquantes",
		})
		return
	}

	result := h.submissions.Submit(ctx, clientID(c), req.Mission, req.Data)

	switch result.Status {
	case service.SubmissionThrottled:
		retryAfter := result.RetryAfterSeconds()
		c.Header("Retry-After", strconv.Itoa(retryAfter))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.JSON(http.StatusTooManyRequests, dto.SubmitErrorResponse{
			Success:    false,
			Error:      "Trop de requêtes. Veuillez patienter quelques instants. ⏳",
			RetryAfter: retryAfter,
		})

	case service.SubmissionMissingData:
		c.JSON(http.StatusBadRequest, dto.SubmitErrorResponse{
			Success: false,
			Error:   "Données manquantes",
		})

	case service.SubmissionInvalid:
		c.JSON(http.StatusBadRequest, dto.SubmitErrorResponse{
			Success: false,
			Error:   "Validation échouée",
			Errors:  result.Errors,
		})

	default:
		c.JSON(http.StatusOK, dto.SubmitSuccessResponse{
			Success:   true,
			Message:   "Soumission réussie ! 🎉",
			Reference: result.Reference,
			Mission:   result.Mission.String(),
			Nom:       result.Nom,
			Montant:   result.Montant,
		})
	}
}

// clientID derives the rate-limit key from request metadata: the first
// forwarded-for hop when present, the direct peer address otherwise.
func clientID(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.SplitN(forwarded, ",", 2)[0])
	}
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}
