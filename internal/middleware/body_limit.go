package middleware

import (
	"fmt"
	"net/http"

	"startup-hub-server/internal/config"

	"github.com/gin-gonic/gin"
)

const defaultMaxBodyMB = 2

// BodyLimitMiddleware 限制请求体大小，skip 返回 true 的路由交由 UploadBodyLimitMiddleware 处理
func BodyLimitMiddleware(skip func(c *gin.Context) bool) gin.HandlerFunc {
	maxBytes := int64(defaultMaxBodyMB) * 1024 * 1024
	return func(c *gin.Context) {
		if skip != nil && skip(c) {
			c.Next()
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// UploadBodyLimitMiddleware 限制上传接口的请求体大小，额外预留 1MB 给表单字段
func UploadBodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		maxSizeMB := config.Get().Image.MaxUploadMB
		if maxSizeMB <= 0 {
			maxSizeMB = 10
		}
		maxBytes := int64(maxSizeMB+1) * 1024 * 1024

		if c.Request.ContentLength > maxBytes && c.Request.ContentLength != -1 {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("文件大小不能超过 %dMB", maxSizeMB)})
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
