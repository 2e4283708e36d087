package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Recovery converts panics into a generic 500 so no internal detail leaks
// to the client. The chat endpoint additionally carries a fallback message
// the widget can render.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.ErrorContext(c.Request.Context(), "panic recovered",
			"panic", recovered,
			"path", c.Request.URL.Path)

		if c.FullPath() == "/api/v1/chat" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":   "Erreur serveur",
				"message": "Les circuits sont perturbés... 🔧",
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur serveur",
		})
	})
}
