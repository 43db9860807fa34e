package router

import (
	"startup-hub-server/internal/middleware"
	reviewhandler "startup-hub-server/internal/modules/review/handler"

	"github.com/gin-gonic/gin"
)

func registerReviewRoutes(api *gin.RouterGroup, writeLimiter gin.HandlerFunc, h *reviewhandler.Handler) {
	reviews := api.Group("/posts/:id/reviews")
	reviews.GET("", h.ListReviews)

	reviews.Use(middleware.JWTAuth())
	reviews.POST("", writeLimiter, h.CreateReview)
	reviews.PATCH("/:rid", writeLimiter, h.UpdateReview)
	reviews.DELETE("/:rid", writeLimiter, h.DeleteReview)
}
