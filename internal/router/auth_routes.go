package router

import (
	"startup-hub-server/internal/middleware"
	userhandler "startup-hub-server/internal/modules/user/handler"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(api *gin.RouterGroup, writeLimiter gin.HandlerFunc, h *userhandler.Handler) {
	api.POST("/auth/register", writeLimiter, h.Register)
	api.POST("/auth/login", writeLimiter, h.Login)

	api.GET("/users/me", middleware.JWTAuth(), h.GetSelfInfo)
}
