package service

import (
	"context"
	"errors"
	"log"

	moduledto "startup-hub-server/internal/modules/favorite/dto"
	"startup-hub-server/internal/modules/favorite/repo"
	platformservice "startup-hub-server/internal/platform/service"

	"gorm.io/gorm"
)

type Service struct {
	favoriteStore repo.FavoriteStore
}

func New(favoriteStore repo.FavoriteStore) *Service {
	return &Service{favoriteStore: favoriteStore}
}

// Add 收藏帖子，重复收藏不改变计数
func (s *Service) Add(ctx context.Context, userID, postID uint) (*moduledto.FavoriteState, error) {
	_, count, err := s.favoriteStore.AddAndIncreaseCount(ctx, userID, postID)
	if err != nil {
		return nil, translate(err, "收藏失败")
	}
	return &moduledto.FavoriteState{PostID: postID, HasFavorite: true, FavoriteCount: count}, nil
}

// Remove 取消收藏，未收藏时不改变计数
func (s *Service) Remove(ctx context.Context, userID, postID uint) (*moduledto.FavoriteState, error) {
	_, count, err := s.favoriteStore.RemoveAndDecreaseCount(ctx, userID, postID)
	if err != nil {
		return nil, translate(err, "取消收藏失败")
	}
	return &moduledto.FavoriteState{PostID: postID, HasFavorite: false, FavoriteCount: count}, nil
}

func (s *Service) HasFavorite(ctx context.Context, userID, postID uint) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	ok, err := s.favoriteStore.Exists(ctx, userID, postID)
	if err != nil {
		return false, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "查询收藏状态失败", err)
	}
	return ok, nil
}

func (s *Service) FavoritedPostIDs(ctx context.Context, userID uint, postIDs []uint) (map[uint]bool, error) {
	ids, err := s.favoriteStore.FavoritedPostIDs(ctx, userID, postIDs)
	if err != nil {
		return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "查询收藏状态失败", err)
	}
	return ids, nil
}

// Recount 以收藏关系为准重算全部帖子的收藏数
func (s *Service) Recount(ctx context.Context) (int64, error) {
	n, err := s.favoriteStore.RecountAll(ctx)
	if err != nil {
		log.Printf("❌ 重算收藏数失败: %v", err)
		return 0, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "重算收藏数失败", err)
	}
	log.Printf("✅ 已重算 %d 篇帖子的收藏数", n)
	return n, nil
}

func translate(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return platformservice.NewNotFoundError("帖子不存在")
	}
	return platformservice.WrapServiceError(platformservice.ErrorCodeInternal, msg, err)
}
