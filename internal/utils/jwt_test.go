package utils

import (
	"testing"
	"time"

	"startup-hub-server/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

func withSecret(t *testing.T, secret string) {
	t.Helper()
	prev := config.Get()
	cfg := prev
	cfg.JWT.Secret = secret
	config.Set(cfg)
	t.Cleanup(func() { config.Set(prev) })
}

// 测试内容：验证登录 Token 生成后可解析出用户信息。
func TestLoginToken_RoundTrip(t *testing.T) {
	withSecret(t, "test-secret")

	token, err := GenerateLoginToken(123, "alice", time.Hour)
	if err != nil {
		t.Fatalf("GenerateLoginToken error: %v", err)
	}
	claims, err := ParseLoginToken(token)
	if err != nil {
		t.Fatalf("ParseLoginToken error: %v", err)
	}
	if claims.ID != 123 || claims.Username != "alice" || claims.Type != "login" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

// 测试内容：验证过期 Token 被拒绝。
func TestParseLoginToken_Expired(t *testing.T) {
	withSecret(t, "test-secret")

	token, err := GenerateLoginToken(1, "alice", -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateLoginToken error: %v", err)
	}
	if _, err := ParseLoginToken(token); err == nil {
		t.Fatalf("expected expired token error")
	}
}

// 测试内容：验证密钥不符或类型不符的 Token 被拒绝。
func TestParseLoginToken_RejectsWrongSecretAndType(t *testing.T) {
	withSecret(t, "test-secret")

	other := jwt.NewWithClaims(jwt.SigningMethodHS256, LoginClaims{
		ID:   1,
		Type: "email_verify",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	wrongType, _ := other.SignedString([]byte("test-secret"))
	if _, err := ParseLoginToken(wrongType); err == nil {
		t.Fatalf("expected error for wrong token type")
	}

	token, _ := GenerateLoginToken(1, "alice", time.Hour)
	withSecret(t, "rotated-secret")
	if _, err := ParseLoginToken(token); err == nil {
		t.Fatalf("expected error for token signed with a different secret")
	}
}
