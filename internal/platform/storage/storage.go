package storage

import (
	"context"
	"fmt"

	"startup-hub-server/internal/config"
)

// BlobStore 处理后图片的持久化存储
type BlobStore interface {
	// Put 写入对象，同名对象会被覆盖
	Put(ctx context.Context, name string, data []byte, contentType string) error
	// Delete 删除对象，对象不存在时返回 nil
	Delete(ctx context.Context, name string) error
	// URL 返回对象的可访问地址
	URL(name string) string
}

// New 根据配置创建存储实现
func New(cfg config.StorageConfig) (BlobStore, error) {
	switch cfg.Driver {
	case "", "local":
		return NewLocalStore(cfg.Local.Path, cfg.Local.URLPrefix), nil
	case "s3":
		return NewS3Store(cfg.S3)
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.Driver)
	}
}
