package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// 测试内容：验证本地存储的写入、读取、删除与访问地址。
func TestLocalStore_PutReadDelete(t *testing.T) {
	root := filepath.Join(t.TempDir(), "imgs")
	store := NewLocalStore(root, "/media")
	ctx := context.Background()

	if err := store.Put(ctx, "resized_abc_1.jpg", []byte("jpeg"), "image/jpeg"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(root, "resized_abc_1.jpg"))
	if err != nil || string(data) != "jpeg" {
		t.Fatalf("Read got %q err=%v", data, err)
	}

	entries, _ := os.ReadDir(root)
	if len(entries) != 1 {
		t.Fatalf("期望只保留目标文件（不残留临时文件），实际为 %d 个", len(entries))
	}

	if got := store.URL("resized_abc_1.jpg"); got != "/media/resized_abc_1.jpg" {
		t.Fatalf("unexpected url: %q", got)
	}

	if err := store.Delete(ctx, "resized_abc_1.jpg"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "resized_abc_1.jpg")); !os.IsNotExist(err) {
		t.Fatalf("期望文件已删除，实际为 %v", err)
	}
	// 删除不存在的对象不报错
	if err := store.Delete(ctx, "resized_abc_1.jpg"); err != nil {
		t.Fatalf("Delete missing failed: %v", err)
	}
}

// 测试内容：验证本地存储拒绝越界路径。
func TestLocalStore_RejectsTraversal(t *testing.T) {
	store := NewLocalStore(t.TempDir(), "")
	if err := store.Put(context.Background(), "../escape.jpg", []byte("x"), ""); err == nil {
		t.Fatalf("期望越界路径写入失败")
	}
}

// 测试内容：验证已取消的上下文不会写入文件。
func TestLocalStore_PutCanceledContext(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStore(root, "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := store.Put(ctx, "a.jpg", []byte("x"), ""); err == nil {
		t.Fatalf("期望取消的上下文返回错误")
	}
	if _, err := os.Stat(filepath.Join(root, "a.jpg")); !os.IsNotExist(err) {
		t.Fatalf("期望文件未被写入, err=%v", err)
	}
}
