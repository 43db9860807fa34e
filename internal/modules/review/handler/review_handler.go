package handler

import (
	"net/http"
	"strconv"

	"startup-hub-server/internal/modules/common/httpx"
	moduledto "startup-hub-server/internal/modules/review/dto"
	reviewservice "startup-hub-server/internal/modules/review/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListReviews(c *gin.Context) {
	postID, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size"))

	resp, err := h.reviewService.List(c.Request.Context(), postID, page, pageSize)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取评论失败")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateReview(c *gin.Context) {
	uid, ok := httpx.MustCurrentUserID(c)
	if !ok {
		return
	}
	postID, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req moduledto.ReviewRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), uid, postID, req.Content)
	if err != nil {
		httpx.WriteServiceError(c, err, "评论失败")
		return
	}
	c.JSON(http.StatusCreated, reviewservice.ToResponse(review))
}

func (h *Handler) UpdateReview(c *gin.Context) {
	if _, ok := httpx.MustCurrentUserID(c); !ok {
		return
	}
	postID, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	reviewID, ok := httpx.ParseIDParam(c, "rid")
	if !ok {
		return
	}
	var req moduledto.ReviewRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	review, err := h.reviewService.Update(c.Request.Context(), postID, reviewID, req.Content)
	if err != nil {
		httpx.WriteServiceError(c, err, "保存失败")
		return
	}
	c.JSON(http.StatusOK, reviewservice.ToResponse(review))
}

func (h *Handler) DeleteReview(c *gin.Context) {
	if _, ok := httpx.MustCurrentUserID(c); !ok {
		return
	}
	postID, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	reviewID, ok := httpx.ParseIDParam(c, "rid")
	if !ok {
		return
	}

	if err := h.reviewService.Delete(c.Request.Context(), postID, reviewID); err != nil {
		httpx.WriteServiceError(c, err, "删除失败")
		return
	}
	c.Status(http.StatusNoContent)
}
