package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"startup-hub-server/internal/config"
	"startup-hub-server/internal/testutils"
)

func withRateLimit(t *testing.T, cfg config.RateLimitConfig) {
	t.Helper()
	testutils.WithConfig(t, func(c *config.Config) {
		c.Redis.Enabled = false
		c.RateLimit = cfg
	})
}

func doRequest(h http.Handler, method, path, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}
