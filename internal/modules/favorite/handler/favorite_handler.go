package handler

import (
	"net/http"

	"startup-hub-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

// AddFavorite 收藏帖子
func (h *Handler) AddFavorite(c *gin.Context) {
	uid, ok := httpx.MustCurrentUserID(c)
	if !ok {
		return
	}
	postID, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}

	state, err := h.favoriteService.Add(c.Request.Context(), uid, postID)
	if err != nil {
		httpx.WriteServiceError(c, err, "收藏失败")
		return
	}
	c.JSON(http.StatusOK, state)
}

// RemoveFavorite 取消收藏
func (h *Handler) RemoveFavorite(c *gin.Context) {
	uid, ok := httpx.MustCurrentUserID(c)
	if !ok {
		return
	}
	postID, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}

	state, err := h.favoriteService.Remove(c.Request.Context(), uid, postID)
	if err != nil {
		httpx.WriteServiceError(c, err, "取消收藏失败")
		return
	}
	c.JSON(http.StatusOK, state)
}
