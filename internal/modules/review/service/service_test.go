package service

import (
	"context"
	"testing"
	"time"

	"startup-hub-server/internal/model"
	"startup-hub-server/internal/modules/review/repo"
	platformservice "startup-hub-server/internal/platform/service"
	"startup-hub-server/internal/testutils"
)

// 测试内容：验证为不存在的帖子评论返回 not_found，空内容返回 validation。
func TestCreate_Errors(t *testing.T) {
	gdb := testutils.SetupDB(t)
	svc := New(repo.NewReviewRepository(gdb))
	u := testutils.CreateUser(t, gdb, "reviewer")

	if _, err := svc.Create(context.Background(), u.ID, 404, "hello"); !platformservice.IsCode(err, platformservice.ErrorCodeNotFound) {
		t.Fatalf("期望 not_found，实际为 %v", err)
	}
	p := testutils.CreatePost(t, gdb, u.ID, "p")
	if _, err := svc.Create(context.Background(), u.ID, p.ID, "   "); !platformservice.IsCode(err, platformservice.ErrorCodeValidation) {
		t.Fatalf("期望 validation，实际为 %v", err)
	}
}

// 测试内容：验证评论列表按帖子隔离且按时间倒序。
func TestList_ScopedNewestFirst(t *testing.T) {
	gdb := testutils.SetupDB(t)
	svc := New(repo.NewReviewRepository(gdb))
	ctx := context.Background()
	u := testutils.CreateUser(t, gdb, "reviewer")
	a := testutils.CreatePost(t, gdb, u.ID, "a")
	b := testutils.CreatePost(t, gdb, u.ID, "b")

	first, err := svc.Create(ctx, u.ID, a.ID, "first")
	if err != nil {
		t.Fatalf("Create 返回错误: %v", err)
	}
	second, _ := svc.Create(ctx, u.ID, a.ID, "second")
	if _, err := svc.Create(ctx, u.ID, b.ID, "elsewhere"); err != nil {
		t.Fatalf("Create 返回错误: %v", err)
	}

	resp, err := svc.List(ctx, a.ID, 1, 0)
	if err != nil {
		t.Fatalf("List 返回错误: %v", err)
	}
	if resp.Total != 2 || resp.PageSize != 20 {
		t.Fatalf("列表不符: total=%d size=%d", resp.Total, resp.PageSize)
	}
	if resp.List[0].ID != second.ID || resp.List[1].ID != first.ID {
		t.Fatalf("期望按时间倒序")
	}
	if resp.List[0].Author.Username != "reviewer" {
		t.Fatalf("期望带作者信息: %+v", resp.List[0].Author)
	}

	if _, err := svc.List(ctx, 999, 1, 20); !platformservice.IsCode(err, platformservice.ErrorCodeNotFound) {
		t.Fatalf("期望 not_found，实际为 %v", err)
	}
}

// 测试内容：验证修改刷新 CreatedAt，跨帖子操作评论返回 not_found。
func TestUpdateDelete_ScopedByPost(t *testing.T) {
	gdb := testutils.SetupDB(t)
	svc := New(repo.NewReviewRepository(gdb))
	ctx := context.Background()
	u := testutils.CreateUser(t, gdb, "reviewer")
	a := testutils.CreatePost(t, gdb, u.ID, "a")
	b := testutils.CreatePost(t, gdb, u.ID, "b")

	review, err := svc.Create(ctx, u.ID, a.ID, "before")
	if err != nil {
		t.Fatalf("Create 返回错误: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, err := svc.Update(ctx, b.ID, review.ID, "x"); !platformservice.IsCode(err, platformservice.ErrorCodeNotFound) {
		t.Fatalf("期望 not_found，实际为 %v", err)
	}
	if err := svc.Delete(ctx, b.ID, review.ID); !platformservice.IsCode(err, platformservice.ErrorCodeNotFound) {
		t.Fatalf("期望 not_found，实际为 %v", err)
	}

	updated, err := svc.Update(ctx, a.ID, review.ID, "after")
	if err != nil {
		t.Fatalf("Update 返回错误: %v", err)
	}
	if updated.Content != "after" || !updated.CreatedAt.After(review.CreatedAt) {
		t.Fatalf("修改不符: %+v", updated)
	}

	if err := svc.Delete(ctx, a.ID, review.ID); err != nil {
		t.Fatalf("Delete 返回错误: %v", err)
	}
	resp, _ := svc.List(ctx, a.ID, 1, 20)
	if resp.Total != 0 {
		t.Fatalf("期望评论已删除")
	}
}

// deletingReviewStore 查到评论后立即删除，模拟查询与保存之间评论被并发删除
type deletingReviewStore struct {
	repo.ReviewStore
}

func (s deletingReviewStore) FindByIDAndPostID(ctx context.Context, reviewID, postID uint) (*model.Review, error) {
	review, err := s.ReviewStore.FindByIDAndPostID(ctx, reviewID, postID)
	if err != nil {
		return nil, err
	}
	if err := s.ReviewStore.Delete(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// 测试内容：验证评论在查询后被删除时修改返回 not_found 而不是成功。
func TestUpdate_ReviewDeletedConcurrently(t *testing.T) {
	gdb := testutils.SetupDB(t)
	store := repo.NewReviewRepository(gdb)
	ctx := context.Background()
	u := testutils.CreateUser(t, gdb, "reviewer")
	p := testutils.CreatePost(t, gdb, u.ID, "p")

	review, err := New(store).Create(ctx, u.ID, p.ID, "before")
	if err != nil {
		t.Fatalf("Create 返回错误: %v", err)
	}

	svc := New(deletingReviewStore{store})
	if _, err := svc.Update(ctx, p.ID, review.ID, "after"); !platformservice.IsCode(err, platformservice.ErrorCodeNotFound) {
		t.Fatalf("期望 not_found，实际为 %v", err)
	}
}
