package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"startup-hub-server/internal/config"
	"startup-hub-server/internal/modules"
	favoriterepo "startup-hub-server/internal/modules/favorite/repo"
	postrepo "startup-hub-server/internal/modules/post/repo"
	"startup-hub-server/internal/modules/publicdata/client"
	publicdatarepo "startup-hub-server/internal/modules/publicdata/repo"
	reviewrepo "startup-hub-server/internal/modules/review/repo"
	userrepo "startup-hub-server/internal/modules/user/repo"
	"startup-hub-server/internal/testutils"

	"github.com/gin-gonic/gin"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	testutils.WithConfig(t, func(c *config.Config) {
		c.Redis.Enabled = false
		c.RateLimit.Enabled = false
	})
	gdb := testutils.SetupDB(t)

	appModules := modules.New(
		modules.Options{MaxImageDimension: 700, DefaultArea: "제주"},
		testutils.NewMemoryBlobStore(),
		client.New(config.Get().PublicData),
		userrepo.NewUserRepository(gdb),
		postrepo.NewPostRepository(gdb),
		favoriterepo.NewFavoriteRepository(gdb),
		reviewrepo.NewReviewRepository(gdb),
		publicdatarepo.NewPublicDataRepository(gdb),
	)

	r := gin.New()
	NewRouter(appModules).Init(r)
	return r
}

// 测试内容：验证核心 API 路由被正确注册。
func TestInitRouter_RegistersCoreRoutes(t *testing.T) {
	r := setupRouter(t)

	type wantRoute struct {
		method string
		path   string
	}
	wants := []wantRoute{
		{method: "GET", path: "/api/ping"},
		{method: "POST", path: "/api/auth/register"},
		{method: "POST", path: "/api/auth/login"},
		{method: "GET", path: "/api/users/me"},
		{method: "GET", path: "/api/posts"},
		{method: "POST", path: "/api/posts"},
		{method: "GET", path: "/api/posts/:id"},
		{method: "PATCH", path: "/api/posts/:id"},
		{method: "DELETE", path: "/api/posts/:id"},
		{method: "POST", path: "/api/posts/:id/favorite"},
		{method: "DELETE", path: "/api/posts/:id/favorite"},
		{method: "GET", path: "/api/posts/:id/reviews"},
		{method: "POST", path: "/api/posts/:id/reviews"},
		{method: "PATCH", path: "/api/posts/:id/reviews/:rid"},
		{method: "DELETE", path: "/api/posts/:id/reviews/:rid"},
		{method: "GET", path: "/api/public-posts"},
		{method: "GET", path: "/api/startup-places"},
		{method: "POST", path: "/api/public-data/notices/sync"},
		{method: "POST", path: "/api/public-data/places/sync"},
	}

	have := make(map[string]bool)
	for _, rt := range r.Routes() {
		have[rt.Method+" "+rt.Path] = true
	}

	for _, w := range wants {
		if !have[w.method+" "+w.path] {
			t.Fatalf("缺少路由: %s %s", w.method, w.path)
		}
	}
}

// 测试内容：验证写接口需要认证，读接口允许匿名访问。
func TestInitRouter_AuthBoundary(t *testing.T) {
	r := setupRouter(t)

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api/posts", http.StatusOK},
		{http.MethodGet, "/api/public-posts", http.StatusOK},
		{http.MethodPost, "/api/posts", http.StatusUnauthorized},
		{http.MethodPost, "/api/posts/1/favorite", http.StatusUnauthorized},
		{http.MethodPost, "/api/posts/1/reviews", http.StatusUnauthorized},
		{http.MethodPost, "/api/public-data/notices/sync", http.StatusUnauthorized},
		{http.MethodGet, "/api/users/me", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(""))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tc.want {
			t.Fatalf("%s %s: 期望 %d，实际为 %d", tc.method, tc.path, tc.want, w.Code)
		}
	}
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get("X-Frame-Options") != "DENY" {
		t.Fatalf("缺少安全响应头")
	}
}
