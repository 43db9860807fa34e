package middleware

import (
	"context"
	"log"
	"math"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"startup-hub-server/internal/config"
	"startup-hub-server/internal/platform/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

type IPRateLimiter struct {
	ips sync.Map
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

type client struct {
	limiter *rate.Limiter
	// lastSeen 以 UnixNano 存储，清理协程会并发读取
	lastSeen atomic.Int64
}

func newClient(limiter *rate.Limiter) *client {
	c := &client{limiter: limiter}
	c.touch()
	return c
}

func (c *client) touch() {
	c.lastSeen.Store(time.Now().UnixNano())
}

func (c *client) idleFor(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, c.lastSeen.Load()))
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{
		r: r,
		b: b,
	}

	go i.cleanupLoop()

	return i
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.touch()
		return c.limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// Double check
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.touch()
		return c.limiter
	}

	limiter := rate.NewLimiter(i.r, i.b)
	i.ips.Store(ip, newClient(limiter))

	return limiter
}

func (i *IPRateLimiter) cleanupLoop() {
	for {
		time.Sleep(1 * time.Minute)
		i.cleanup(time.Now(), 3*time.Minute)
	}
}

// cleanup 删除空闲超过 idle 的 IP 记录
func (i *IPRateLimiter) cleanup(now time.Time, idle time.Duration) {
	i.ips.Range(func(key, value interface{}) bool {
		if value.(*client).idleFor(now) > idle {
			i.ips.Delete(key)
		}
		return true
	})
}

// allowByRedisRateLimit 以秒为窗口计数，多实例共享同一额度。rps 或 burst 非正时不限流。
func allowByRedisRateLimit(rdb *redis.Client, scope, ip string, rps float64, burst int) (bool, error) {
	if rps <= 0 || burst <= 0 {
		return true, nil
	}
	limit := int64(math.Max(math.Ceil(rps), float64(burst)))

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	window := strconv.FormatInt(time.Now().Unix(), 10)
	key := service.RedisKey("rate", scope, ip, window)

	pipe := rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, 2*time.Second)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return incr.Val() <= limit, nil
}

// RateLimitMiddleware 写接口按 IP 限流，参数每次请求从配置读取
func RateLimitMiddleware(scope string) gin.HandlerFunc {
	var limiter *IPRateLimiter
	var once sync.Once

	return func(c *gin.Context) {
		cfg := config.Get().RateLimit
		if !cfg.Enabled || cfg.WriteBurst <= 0 {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if rdb := service.GetRedisClient(); rdb != nil {
			ok, err := allowByRedisRateLimit(rdb, scope, ip, cfg.WriteRPS, cfg.WriteBurst)
			if err == nil {
				if !ok {
					tooManyRequests(c)
					return
				}
				c.Next()
				return
			}
			log.Printf("⚠️ Redis 限流失败，降级为内存限流: %v", err)
		}

		once.Do(func() {
			limiter = NewIPRateLimiter(rate.Limit(cfg.WriteRPS), cfg.WriteBurst)
		})

		l := limiter.getLimiter(ip)
		// 动态更新 limit 和 burst (如果配置发生变更)
		if l.Limit() != rate.Limit(cfg.WriteRPS) {
			l.SetLimit(rate.Limit(cfg.WriteRPS))
		}
		if l.Burst() != cfg.WriteBurst {
			l.SetBurst(cfg.WriteBurst)
		}

		if !l.Allow() {
			tooManyRequests(c)
			return
		}
		c.Next()
	}
}

func tooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, gin.H{"error": "请求过于频繁，请稍后再试"})
	c.Abort()
}
