package handler

import (
	"net/http"

	"startup-hub-server/internal/modules/common/httpx"
	moduledto "startup-hub-server/internal/modules/user/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Register(c *gin.Context) {
	var req moduledto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	profile, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		httpx.WriteServiceError(c, err, "注册失败，请稍后重试")
		return
	}

	c.JSON(http.StatusCreated, profile)
}

func (h *Handler) Login(c *gin.Context) {
	var req moduledto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	resp, err := h.userService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httpx.WriteServiceError(c, err, "登录失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetSelfInfo 获取当前用户信息
func (h *Handler) GetSelfInfo(c *gin.Context) {
	uid, ok := httpx.MustCurrentUserID(c)
	if !ok {
		return
	}

	profile, err := h.userService.GetProfile(c.Request.Context(), uid)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取用户信息失败")
		return
	}

	c.JSON(http.StatusOK, profile)
}
