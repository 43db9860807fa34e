package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"startup-hub-server/internal/utils"

	"github.com/google/uuid"
)

// LocalStore 将对象保存在本地目录中，通过静态路由对外提供访问
type LocalStore struct {
	root      string
	urlPrefix string
}

func NewLocalStore(root, urlPrefix string) *LocalStore {
	if root == "" {
		root = "uploads/post_images"
	}
	if urlPrefix == "" {
		urlPrefix = "/media/"
	}
	if !strings.HasSuffix(urlPrefix, "/") {
		urlPrefix += "/"
	}
	return &LocalStore{root: root, urlPrefix: urlPrefix}
}

func (s *LocalStore) Root() string {
	return s.root
}

func (s *LocalStore) Put(ctx context.Context, name string, data []byte, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rootAbs, err := filepath.Abs(s.root)
	if err != nil {
		return fmt.Errorf("resolve storage root: %w", err)
	}
	if err := utils.EnsurePathNotSymlink(rootAbs); err != nil {
		return err
	}
	if err := os.MkdirAll(rootAbs, 0755); err != nil {
		return fmt.Errorf("create storage root: %w", err)
	}

	dst, err := utils.SecureJoin(rootAbs, name)
	if err != nil {
		return err
	}

	// 先写临时文件再重命名，避免读到写了一半的图片
	tmp, err := utils.SecureJoin(rootAbs, "."+uuid.New().String()+".tmp")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write blob: %w", err)
	}
	if err := os.Rename(tmp, dst); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename blob: %w", err)
	}
	return nil
}

func (s *LocalStore) Delete(_ context.Context, name string) error {
	path, err := utils.SecureJoin(s.root, name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove blob: %w", err)
	}
	return nil
}

func (s *LocalStore) URL(name string) string {
	return s.urlPrefix + name
}
