package router

import (
	"github.com/gin-gonic/gin"

	"nird.dev/outreach/internal/http/handler"
)

func ChatRouter(router *gin.RouterGroup, handler *handler.ChatHandler) {
	router.POST("", handler.Chat)
}
