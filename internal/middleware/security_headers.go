package middleware

import "github.com/gin-gonic/gin"

// SecurityHeaders 添加安全相关的 HTTP 响应头
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 防止浏览器猜测内容类型
		c.Header("X-Content-Type-Options", "nosniff")

		// 防止点击劫持 (Clickjacking)
		c.Header("X-Frame-Options", "DENY")

		// 仅提供 API 与图片，不需要加载任何脚本或样式
		c.Header("Content-Security-Policy", "default-src 'none'; img-src 'self' data: blob:; frame-ancestors 'none'")

		c.Header("Referrer-Policy", "no-referrer")

		c.Next()
	}
}

// StaticCacheMiddleware 处理后的图片文件名唯一，可长期缓存
func StaticCacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "public, max-age=31536000, immutable")
		c.Next()
	}
}
