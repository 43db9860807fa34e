package middleware

import (
	"net/http"
	"strings"

	"startup-hub-server/internal/consts"
	"startup-hub-server/internal/utils"

	"github.com/gin-gonic/gin"
)

func bearerToken(c *gin.Context) (string, bool) {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "需要认证才能访问"})
			c.Abort()
			return
		}

		// 检查格式是否为 "Bearer <token>"
		token, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token 格式错误"})
			c.Abort()
			return
		}

		claims, err := utils.ParseLoginToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token 无效或已过期"})
			c.Abort()
			return
		}

		c.Set(consts.ContextUserID, claims.ID)
		c.Set(consts.ContextUsername, claims.Username)
		c.Next()
	}
}

// OptionalJWTAuth 携带有效 Token 时写入用户信息，否则按匿名访问放行
func OptionalJWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if claims, err := utils.ParseLoginToken(token); err == nil {
				c.Set(consts.ContextUserID, claims.ID)
				c.Set(consts.ContextUsername, claims.Username)
			}
		}
		c.Next()
	}
}
