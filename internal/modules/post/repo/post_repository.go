package repo

import (
	"context"

	"startup-hub-server/internal/model"
)

type ListPostsParams struct {
	Title      string
	Author     string
	FavoriteBy *uint
	Offset     int
	Limit      int
}

type PostStore interface {
	Create(ctx context.Context, post *model.Post) error
	// Save 写回可修改的字段，记录不存在时返回 gorm.ErrRecordNotFound
	Save(ctx context.Context, post *model.Post) error
	FindByID(ctx context.Context, id uint) (*model.Post, error)
	List(ctx context.Context, params ListPostsParams) ([]model.Post, int64, error)
	// DeleteCascade 在同一事务中删除帖子及其评论、收藏关系
	DeleteCascade(ctx context.Context, id uint) error
}
