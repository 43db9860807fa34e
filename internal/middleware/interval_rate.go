package middleware

import (
	"context"
	"log"
	"strconv"
	"sync"
	"time"

	"startup-hub-server/internal/config"
	"startup-hub-server/internal/consts"
	"startup-hub-server/internal/platform/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type intervalLimiter struct {
	mu   sync.Mutex
	last map[string]time.Time
}

func (l *intervalLimiter) allow(key string, interval time.Duration) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if t, ok := l.last[key]; ok && now.Sub(t) < interval {
		return false
	}
	l.last[key] = now

	// 顺带清理过期记录
	if len(l.last) > 10000 {
		for k, t := range l.last {
			if now.Sub(t) >= interval {
				delete(l.last, k)
			}
		}
	}
	return true
}

func allowByRedisInterval(rdb *redis.Client, key string, interval time.Duration) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	return rdb.SetNX(ctx, key, "1", interval).Result()
}

// intervalKey 已登录用户按用户ID，匿名请求按 IP
func intervalKey(c *gin.Context) string {
	if v, ok := c.Get(consts.ContextUserID); ok {
		if uid, ok := v.(uint); ok && uid != 0 {
			return "u" + strconv.FormatUint(uint64(uid), 10)
		}
	}
	return "ip" + c.ClientIP()
}

// IntervalRateMiddleware 限制同一请求方在 interval 内只能请求一次同一路由。
// interval 返回非正值时不限制。
func IntervalRateMiddleware(scope string, interval func() time.Duration) gin.HandlerFunc {
	local := &intervalLimiter{last: map[string]time.Time{}}

	return func(c *gin.Context) {
		d := interval()
		if d <= 0 {
			c.Next()
			return
		}

		key := intervalKey(c) + ":" + c.Request.Method + ":" + c.Request.URL.Path
		if rdb := service.GetRedisClient(); rdb != nil {
			ok, err := allowByRedisInterval(rdb, service.RedisKey("interval", scope, key), d)
			if err == nil {
				if !ok {
					tooManyRequests(c)
					return
				}
				c.Next()
				return
			}
			log.Printf("⚠️ Redis 间隔限流失败，降级为内存模式: %v", err)
		}

		if !local.allow(key, d) {
			tooManyRequests(c)
			return
		}
		c.Next()
	}
}

// FavoriteInterval 从配置读取收藏操作的最小间隔
func FavoriteInterval() time.Duration {
	return time.Duration(config.Get().RateLimit.FavoriteIntervalSeconds) * time.Second
}
