package handler

import (
	"net/http"
	"strconv"

	"startup-hub-server/internal/modules/common/httpx"
	moduledto "startup-hub-server/internal/modules/post/dto"

	"github.com/gin-gonic/gin"
)

// ListPosts 分页获取帖子列表，支持 title、author、favorite 筛选
func (h *Handler) ListPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size"))
	viewerID, _ := httpx.CurrentUserID(c)
	favoriteOnly, _ := strconv.ParseBool(c.Query("favorite"))

	posts, total, page, pageSize, err := h.postService.List(c.Request.Context(), moduledto.PostListRequest{
		Page:         page,
		PageSize:     pageSize,
		Title:        c.Query("title"),
		Author:       c.Query("author"),
		FavoriteOnly: favoriteOnly,
		ViewerID:     viewerID,
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "获取帖子列表失败")
		return
	}

	list, err := h.postService.ToResponses(c.Request.Context(), viewerID, posts)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取帖子列表失败")
		return
	}

	c.JSON(http.StatusOK, moduledto.PostListResponse{
		List:     list,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

func (h *Handler) GetPost(c *gin.Context) {
	postID, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	viewerID, _ := httpx.CurrentUserID(c)

	post, err := h.postService.Get(c.Request.Context(), postID)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取帖子失败")
		return
	}
	h.writePost(c, http.StatusOK, viewerID, post)
}

func (h *Handler) CreatePost(c *gin.Context) {
	uid, ok := httpx.MustCurrentUserID(c)
	if !ok {
		return
	}

	image, err := readImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postService.Create(c.Request.Context(), uid, moduledto.CreatePostRequest{
		Title:   c.PostForm("title"),
		Content: c.PostForm("content"),
		Image:   image,
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "发布失败")
		return
	}
	h.writePost(c, http.StatusCreated, uid, post)
}

func (h *Handler) UpdatePost(c *gin.Context) {
	uid, ok := httpx.MustCurrentUserID(c)
	if !ok {
		return
	}
	postID, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}

	image, err := readImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	removeImage, _ := strconv.ParseBool(c.PostForm("remove_image"))

	post, err := h.postService.Update(c.Request.Context(), postID, uid, moduledto.UpdatePostRequest{
		Title:       optionalForm(c, "title"),
		Content:     optionalForm(c, "content"),
		Image:       image,
		RemoveImage: removeImage,
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "保存失败")
		return
	}
	h.writePost(c, http.StatusOK, uid, post)
}

func (h *Handler) DeletePost(c *gin.Context) {
	uid, ok := httpx.MustCurrentUserID(c)
	if !ok {
		return
	}
	postID, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.postService.Delete(c.Request.Context(), postID, uid); err != nil {
		httpx.WriteServiceError(c, err, "删除失败")
		return
	}
	c.Status(http.StatusNoContent)
}
