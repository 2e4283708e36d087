package router

import (
	"github.com/gin-gonic/gin"

	"nird.dev/outreach/internal/http/handler"
)

func SubmissionRouter(router *gin.RouterGroup, handler *handler.SubmissionHandler) {
	router.POST("", handler.Submit)
}
