package service

import (
	"bytes"
	"context"
	"log"
	"os"
	"strings"
	"sync"
	"testing"

	"startup-hub-server/internal/model"
	"startup-hub-server/internal/modules/favorite/repo"
	platformservice "startup-hub-server/internal/platform/service"
	"startup-hub-server/internal/testutils"

	"gorm.io/gorm"
)

func favoriteCount(t *testing.T, gdb *gorm.DB, postID uint) (uint, int64) {
	t.Helper()
	var post model.Post
	if err := gdb.First(&post, postID).Error; err != nil {
		t.Fatalf("load post: %v", err)
	}
	var rel int64
	gdb.Model(&model.Favorite{}).Where("post_id = ?", postID).Count(&rel)
	return post.FavoriteCount, rel
}

// 测试内容：验证重复收藏只计数一次，取消未收藏的帖子不改变计数。
func TestAddRemove_Idempotent(t *testing.T) {
	gdb := testutils.SetupDB(t)
	svc := New(repo.NewFavoriteRepository(gdb))
	ctx := context.Background()

	author := testutils.CreateUser(t, gdb, "author")
	fan := testutils.CreateUser(t, gdb, "fan")
	post := testutils.CreatePost(t, gdb, author.ID, "hello")

	for i := 0; i < 2; i++ {
		state, err := svc.Add(ctx, fan.ID, post.ID)
		if err != nil {
			t.Fatalf("Add 返回错误: %v", err)
		}
		if state.FavoriteCount != 1 || !state.HasFavorite {
			t.Fatalf("期望计数为 1，实际为 %+v", state)
		}
	}
	if has, _ := svc.HasFavorite(ctx, fan.ID, post.ID); !has {
		t.Fatalf("期望已收藏")
	}

	if _, err := svc.Remove(ctx, fan.ID, post.ID); err != nil {
		t.Fatalf("Remove 返回错误: %v", err)
	}
	state, err := svc.Remove(ctx, fan.ID, post.ID)
	if err != nil {
		t.Fatalf("Remove 返回错误: %v", err)
	}
	if state.FavoriteCount != 0 {
		t.Fatalf("期望计数为 0，实际为 %d", state.FavoriteCount)
	}
	if count, rel := favoriteCount(t, gdb, post.ID); count != 0 || rel != 0 {
		t.Fatalf("期望 0/0，实际为 %d/%d", count, rel)
	}
}

// 测试内容：验证收藏不存在的帖子返回 not_found。
func TestAddRemove_UnknownPost(t *testing.T) {
	gdb := testutils.SetupDB(t)
	svc := New(repo.NewFavoriteRepository(gdb))
	fan := testutils.CreateUser(t, gdb, "fan")

	if _, err := svc.Add(context.Background(), fan.ID, 404); !platformservice.IsCode(err, platformservice.ErrorCodeNotFound) {
		t.Fatalf("期望 not_found，实际为 %v", err)
	}
	if _, err := svc.Remove(context.Background(), fan.ID, 404); !platformservice.IsCode(err, platformservice.ErrorCodeNotFound) {
		t.Fatalf("期望 not_found，实际为 %v", err)
	}
}

// 测试内容：验证并发切换收藏后计数始终等于关系数。
func TestConcurrentToggles_KeepCountInSync(t *testing.T) {
	gdb := testutils.SetupDB(t)
	svc := New(repo.NewFavoriteRepository(gdb))
	ctx := context.Background()

	author := testutils.CreateUser(t, gdb, "author")
	post := testutils.CreatePost(t, gdb, author.ID, "hot")
	users := make([]model.User, 5)
	for i := range users {
		users[i] = testutils.CreateUser(t, gdb, "fan_"+string(rune('a'+i)))
	}

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u := users[i%len(users)]
			var err error
			if i%3 == 0 {
				_, err = svc.Remove(ctx, u.ID, post.ID)
			} else {
				_, err = svc.Add(ctx, u.ID, post.ID)
			}
			if err != nil {
				t.Errorf("toggle 返回错误: %v", err)
			}
		}(i)
	}
	wg.Wait()

	count, rel := favoriteCount(t, gdb, post.ID)
	if int64(count) != rel {
		t.Fatalf("期望计数等于关系数，实际为 %d/%d", count, rel)
	}
}

// 测试内容：验证 Recount 修复被篡改的计数。
func TestRecount(t *testing.T) {
	gdb := testutils.SetupDB(t)
	svc := New(repo.NewFavoriteRepository(gdb))
	ctx := context.Background()

	author := testutils.CreateUser(t, gdb, "author")
	fan := testutils.CreateUser(t, gdb, "fan")
	post := testutils.CreatePost(t, gdb, author.ID, "drift")
	other := testutils.CreatePost(t, gdb, author.ID, "other")
	if _, err := svc.Add(ctx, fan.ID, post.ID); err != nil {
		t.Fatalf("Add 返回错误: %v", err)
	}
	gdb.Model(&model.Post{}).Where("id IN ?", []uint{post.ID, other.ID}).UpdateColumn("favorite_count", 9)

	n, err := svc.Recount(ctx)
	if err != nil {
		t.Fatalf("Recount 返回错误: %v", err)
	}
	if n != 2 {
		t.Fatalf("期望更新 2 篇帖子，实际为 %d", n)
	}
	if count, _ := favoriteCount(t, gdb, post.ID); count != 1 {
		t.Fatalf("期望计数为 1，实际为 %d", count)
	}
	if count, _ := favoriteCount(t, gdb, other.ID); count != 0 {
		t.Fatalf("期望计数为 0，实际为 %d", count)
	}
}

// 测试内容：验证 Recount 成功时只输出一条结果日志。
func TestRecount_LogsOnce(t *testing.T) {
	gdb := testutils.SetupDB(t)
	svc := New(repo.NewFavoriteRepository(gdb))
	author := testutils.CreateUser(t, gdb, "author")
	testutils.CreatePost(t, gdb, author.ID, "p")

	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	if _, err := svc.Recount(context.Background()); err != nil {
		t.Fatalf("Recount 返回错误: %v", err)
	}
	if n := strings.Count(buf.String(), "已重算"); n != 1 {
		t.Fatalf("期望 1 条结果日志，实际为 %d: %s", n, buf.String())
	}
}

// 测试内容：验证批量查询收藏状态只返回已收藏的帖子。
func TestFavoritedPostIDs(t *testing.T) {
	gdb := testutils.SetupDB(t)
	svc := New(repo.NewFavoriteRepository(gdb))
	ctx := context.Background()

	author := testutils.CreateUser(t, gdb, "author")
	fan := testutils.CreateUser(t, gdb, "fan")
	a := testutils.CreatePost(t, gdb, author.ID, "a")
	b := testutils.CreatePost(t, gdb, author.ID, "b")
	if _, err := svc.Add(ctx, fan.ID, b.ID); err != nil {
		t.Fatalf("Add 返回错误: %v", err)
	}

	ids, err := svc.FavoritedPostIDs(ctx, fan.ID, []uint{a.ID, b.ID})
	if err != nil {
		t.Fatalf("FavoritedPostIDs 返回错误: %v", err)
	}
	if ids[a.ID] || !ids[b.ID] {
		t.Fatalf("结果不符: %v", ids)
	}
	if ids, _ := svc.FavoritedPostIDs(ctx, 0, []uint{b.ID}); len(ids) != 0 {
		t.Fatalf("匿名用户不应有收藏: %v", ids)
	}
}
