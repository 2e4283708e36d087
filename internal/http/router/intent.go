package router

import (
	"github.com/gin-gonic/gin"

	"nird.dev/outreach/internal/http/handler"
)

func IntentRouter(router *gin.RouterGroup, handler *handler.IntentHandler) {
	router.POST("/analyze", handler.Analyze)
}
