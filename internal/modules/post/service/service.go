package service

import (
	"context"

	imageservice "startup-hub-server/internal/modules/image/service"
	"startup-hub-server/internal/modules/post/repo"
)

// ImageDeriver 帖子图片的处理与清理
type ImageDeriver interface {
	Derive(ctx context.Context, raw []byte, originalFilename string) (*imageservice.DerivedImage, error)
	Discard(ctx context.Context, name string) error
	URL(name string) string
}

// FavoriteLookup 查询用户对帖子的收藏状态
type FavoriteLookup interface {
	HasFavorite(ctx context.Context, userID, postID uint) (bool, error)
	FavoritedPostIDs(ctx context.Context, userID uint, postIDs []uint) (map[uint]bool, error)
}

type Service struct {
	postStore repo.PostStore
	images    ImageDeriver
	favorites FavoriteLookup
}

func New(postStore repo.PostStore, images ImageDeriver, favorites FavoriteLookup) *Service {
	return &Service{
		postStore: postStore,
		images:    images,
		favorites: favorites,
	}
}
