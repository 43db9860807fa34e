package router

import (
	"startup-hub-server/internal/middleware"
	publicdatahandler "startup-hub-server/internal/modules/publicdata/handler"

	"github.com/gin-gonic/gin"
)

func registerPublicRoutes(api *gin.RouterGroup, h *publicdatahandler.Handler) {
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api.GET("/public-posts", h.ListPublicPosts)
	api.GET("/startup-places", h.ListStartupPlaces)
}

func registerPublicDataRoutes(api *gin.RouterGroup, writeLimiter gin.HandlerFunc, h *publicdatahandler.Handler) {
	syncGroup := api.Group("/public-data")
	syncGroup.Use(middleware.JWTAuth())

	syncGroup.POST("/notices/sync", writeLimiter, h.SyncNotices)
	syncGroup.POST("/places/sync", writeLimiter, h.SyncPlaces)
}
