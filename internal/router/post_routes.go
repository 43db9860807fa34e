package router

import (
	"startup-hub-server/internal/middleware"
	favoritehandler "startup-hub-server/internal/modules/favorite/handler"
	posthandler "startup-hub-server/internal/modules/post/handler"

	"github.com/gin-gonic/gin"
)

func registerPostRoutes(api *gin.RouterGroup, writeLimiter gin.HandlerFunc, h *posthandler.Handler, fh *favoritehandler.Handler) {
	auth := middleware.JWTAuth()
	uploadBodyLimit := middleware.UploadBodyLimitMiddleware()
	// 收藏切换间隔：读取配置（秒）
	favoriteLimiter := middleware.IntervalRateMiddleware("favorite", middleware.FavoriteInterval)

	posts := api.Group("/posts")
	posts.GET("", middleware.OptionalJWTAuth(), h.ListPosts)
	posts.GET("/:id", middleware.OptionalJWTAuth(), h.GetPost)

	posts.POST("", auth, uploadBodyLimit, writeLimiter, h.CreatePost)
	posts.PATCH("/:id", auth, uploadBodyLimit, writeLimiter, h.UpdatePost)
	posts.DELETE("/:id", auth, writeLimiter, h.DeletePost)

	posts.POST("/:id/favorite", auth, favoriteLimiter, fh.AddFavorite)
	posts.DELETE("/:id/favorite", auth, favoriteLimiter, fh.RemoveFavorite)
}
