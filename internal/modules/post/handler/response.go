package handler

import (
	"startup-hub-server/internal/model"
	"startup-hub-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

func (h *Handler) writePost(c *gin.Context, status int, viewerID uint, post *model.Post) {
	resp, err := h.postService.ToResponse(c.Request.Context(), viewerID, post)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取帖子失败")
		return
	}
	c.JSON(status, resp)
}
