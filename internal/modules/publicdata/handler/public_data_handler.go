package handler

import (
	"net/http"
	"strconv"

	"startup-hub-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size"))
	return page, pageSize
}

// ListPublicPosts 创业网公告列表
func (h *Handler) ListPublicPosts(c *gin.Context) {
	page, pageSize := pageParams(c)
	posts, total, page, pageSize, err := h.publicDataService.ListNotices(c.Request.Context(), page, pageSize)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取公告失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": posts, "total": total, "page": page, "page_size": pageSize})
}

// ListStartupPlaces 创业支援中心列表，可按 region 筛选
func (h *Handler) ListStartupPlaces(c *gin.Context) {
	page, pageSize := pageParams(c)
	places, total, page, pageSize, err := h.publicDataService.ListPlaces(c.Request.Context(), c.Query("region"), page, pageSize)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取支援中心失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": places, "total": total, "page": page, "page_size": pageSize})
}

func (h *Handler) SyncNotices(c *gin.Context) {
	n, err := h.publicDataService.SyncNotices(c.Request.Context())
	if err != nil {
		httpx.WriteServiceError(c, err, "同步公告失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok", "synced": n})
}

func (h *Handler) SyncPlaces(c *gin.Context) {
	n, err := h.publicDataService.SyncPlaces(c.Request.Context(), c.Query("area"))
	if err != nil {
		httpx.WriteServiceError(c, err, "同步支援中心失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok", "synced": n})
}
