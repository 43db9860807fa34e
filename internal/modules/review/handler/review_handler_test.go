package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"startup-hub-server/internal/consts"
	moduledto "startup-hub-server/internal/modules/review/dto"
	"startup-hub-server/internal/modules/review/repo"
	reviewservice "startup-hub-server/internal/modules/review/service"
	"startup-hub-server/internal/testutils"

	"github.com/gin-gonic/gin"
)

// 测试内容：验证评论的创建、列表、修改与删除接口。
func TestReviewHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := testutils.SetupDB(t)
	u := testutils.CreateUser(t, gdb, "reviewer")
	post := testutils.CreatePost(t, gdb, u.ID, "p")

	h := New(reviewservice.New(repo.NewReviewRepository(gdb)))
	r := gin.New()
	auth := func(c *gin.Context) { c.Set(consts.ContextUserID, u.ID) }
	r.GET("/posts/:id/reviews", h.ListReviews)
	r.POST("/posts/:id/reviews", auth, h.CreateReview)
	r.PATCH("/posts/:id/reviews/:rid", auth, h.UpdateReview)
	r.DELETE("/posts/:id/reviews/:rid", auth, h.DeleteReview)

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := do(http.MethodPost, fmt.Sprintf("/posts/%d/reviews", post.ID), `{"content":"응원합니다"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("期望 201，实际为 %d body=%s", w.Code, w.Body.String())
	}
	var created moduledto.ReviewResponse
	_ = json.Unmarshal(w.Body.Bytes(), &created)

	if w := do(http.MethodPost, "/posts/999/reviews", `{"content":"x"}`); w.Code != http.StatusNotFound {
		t.Fatalf("期望 404，实际为 %d", w.Code)
	}

	w = do(http.MethodGet, fmt.Sprintf("/posts/%d/reviews", post.ID), "")
	var list moduledto.ReviewListResponse
	_ = json.Unmarshal(w.Body.Bytes(), &list)
	if w.Code != http.StatusOK || list.Total != 1 || list.List[0].Content != "응원합니다" {
		t.Fatalf("列表不符: %d %+v", w.Code, list)
	}

	if w := do(http.MethodPatch, fmt.Sprintf("/posts/%d/reviews/%d", post.ID, created.ID), `{"content":"수정"}`); w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}
	if w := do(http.MethodPatch, fmt.Sprintf("/posts/%d/reviews/%d", post.ID+1, created.ID), `{"content":"수정"}`); w.Code != http.StatusNotFound {
		t.Fatalf("期望 404，实际为 %d", w.Code)
	}
	if w := do(http.MethodDelete, fmt.Sprintf("/posts/%d/reviews/%d", post.ID, created.ID), ""); w.Code != http.StatusNoContent {
		t.Fatalf("期望 204，实际为 %d", w.Code)
	}
}
