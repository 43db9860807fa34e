package repo

import (
	"context"

	"startup-hub-server/internal/model"
)

type ReviewStore interface {
	// CreateForPost 在帖子存在时写入评论，帖子不存在返回 gorm.ErrRecordNotFound
	CreateForPost(ctx context.Context, review *model.Review) error
	FindByIDAndPostID(ctx context.Context, reviewID, postID uint) (*model.Review, error)
	// Save 记录不存在时返回 gorm.ErrRecordNotFound
	Save(ctx context.Context, review *model.Review) error
	Delete(ctx context.Context, review *model.Review) error
	PostExists(ctx context.Context, postID uint) (bool, error)
	ListByPostID(ctx context.Context, postID uint, offset, limit int) ([]model.Review, int64, error)
}
