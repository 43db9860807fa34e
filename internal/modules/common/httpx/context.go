package httpx

import (
	"net/http"
	"strconv"

	"startup-hub-server/internal/consts"

	"github.com/gin-gonic/gin"
)

// CurrentUserID 读取鉴权中间件写入的用户ID，未登录时 ok 为 false
func CurrentUserID(c *gin.Context) (uint, bool) {
	val, exists := c.Get(consts.ContextUserID)
	if !exists {
		return 0, false
	}
	uid, ok := val.(uint)
	return uid, ok && uid != 0
}

// MustCurrentUserID 未登录时直接写入 401 响应
func MustCurrentUserID(c *gin.Context) (uint, bool) {
	uid, ok := CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "获取用户ID失败"})
	}
	return uid, ok
}

// ParseIDParam 解析路径中的正整数ID，失败时写入 400 响应
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的ID"})
		return 0, false
	}
	return uint(id), true
}
