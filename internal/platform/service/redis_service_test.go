package service

import (
	"testing"

	"startup-hub-server/internal/config"
)

// 测试内容：验证 Redis 键名按配置前缀拼接，未配置时使用默认前缀。
func TestRedisKey(t *testing.T) {
	config.Set(config.Config{Redis: config.RedisConfig{Prefix: "hub"}})
	if got := RedisKey("rate", "favorite", "1.2.3.4"); got != "hub:rate:favorite:1.2.3.4" {
		t.Fatalf("unexpected key: %q", got)
	}
	if got := RedisKey(); got != "hub" {
		t.Fatalf("unexpected key: %q", got)
	}

	config.Set(config.Config{})
	if got := RedisKey("a"); got != "startup_hub:a" {
		t.Fatalf("unexpected key: %q", got)
	}
}
