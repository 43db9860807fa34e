package repo

import "context"

type FavoriteStore interface {
	// AddAndIncreaseCount 插入收藏关系，只有真正插入时才增加计数，返回最新计数
	AddAndIncreaseCount(ctx context.Context, userID, postID uint) (added bool, count uint, err error)
	// RemoveAndDecreaseCount 删除收藏关系，只有真正删除时才减少计数，返回最新计数
	RemoveAndDecreaseCount(ctx context.Context, userID, postID uint) (removed bool, count uint, err error)
	Exists(ctx context.Context, userID, postID uint) (bool, error)
	FavoritedPostIDs(ctx context.Context, userID uint, postIDs []uint) (map[uint]bool, error)
	// RecountAll 根据收藏关系重新计算所有帖子的收藏数，返回更新的帖子数
	RecountAll(ctx context.Context) (int64, error)
}
