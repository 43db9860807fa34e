package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"startup-hub-server/internal/consts"
	"startup-hub-server/internal/modules/favorite/repo"
	favoriteservice "startup-hub-server/internal/modules/favorite/service"
	"startup-hub-server/internal/testutils"

	"github.com/gin-gonic/gin"
)

// 测试内容：验证收藏与取消收藏接口返回最新状态，未知帖子返回 404。
func TestFavoriteHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := testutils.SetupDB(t)
	author := testutils.CreateUser(t, gdb, "author")
	fan := testutils.CreateUser(t, gdb, "fan")
	post := testutils.CreatePost(t, gdb, author.ID, "p")

	h := New(favoriteservice.New(repo.NewFavoriteRepository(gdb)))
	r := gin.New()
	auth := func(c *gin.Context) { c.Set(consts.ContextUserID, fan.ID) }
	r.POST("/posts/:id/favorite", auth, h.AddFavorite)
	r.DELETE("/posts/:id/favorite", auth, h.RemoveFavorite)
	r.POST("/anon/:id/favorite", h.AddFavorite)

	do := func(method, path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
		return w
	}

	w := do(http.MethodPost, fmt.Sprintf("/posts/%d/favorite", post.ID))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w.Code, w.Body.String())
	}
	var state struct {
		HasFavorite   bool `json:"has_favorite"`
		FavoriteCount uint `json:"favorite_count"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &state)
	if !state.HasFavorite || state.FavoriteCount != 1 {
		t.Fatalf("状态不符: %+v", state)
	}

	if w := do(http.MethodDelete, fmt.Sprintf("/posts/%d/favorite", post.ID)); w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}
	if w := do(http.MethodPost, "/posts/999/favorite"); w.Code != http.StatusNotFound {
		t.Fatalf("期望 404，实际为 %d", w.Code)
	}
	if w := do(http.MethodPost, "/posts/abc/favorite"); w.Code != http.StatusBadRequest {
		t.Fatalf("期望 400，实际为 %d", w.Code)
	}
	if w := do(http.MethodPost, fmt.Sprintf("/anon/%d/favorite", post.ID)); w.Code != http.StatusUnauthorized {
		t.Fatalf("期望 401，实际为 %d", w.Code)
	}
}
