package router

import (
	"github.com/gin-gonic/gin"

	"nird.dev/outreach/internal/http/handler"
	"nird.dev/outreach/internal/service"
)

func SetupRoutes(router *gin.Engine, services *service.Services) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		intentHandler := handler.NewIntentHandler(services.Intent())
		IntentRouter(v1.Group("/intent"), intentHandler)

		submissionHandler := handler.NewSubmissionHandler(services.Submissions())
		SubmissionRouter(v1.Group("/submissions"), submissionHandler)

		chatHandler := handler.NewChatHandler(services.Chat())
		ChatRouter(v1.Group("/chat"), chatHandler)
	}
}
