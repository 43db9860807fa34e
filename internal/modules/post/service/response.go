package service

import (
	"context"

	"startup-hub-server/internal/model"
	moduledto "startup-hub-server/internal/modules/post/dto"
	userservice "startup-hub-server/internal/modules/user/service"
)

// ToResponses 组装帖子响应，附带作者信息与当前用户视角的 is_mine、has_favorite
func (s *Service) ToResponses(ctx context.Context, viewerID uint, posts []model.Post) ([]moduledto.PostResponse, error) {
	ids := make([]uint, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}

	favorited := map[uint]bool{}
	if viewerID != 0 && s.favorites != nil && len(ids) > 0 {
		var err error
		favorited, err = s.favorites.FavoritedPostIDs(ctx, viewerID, ids)
		if err != nil {
			return nil, err
		}
	}
	return s.buildResponses(viewerID, posts, favorited), nil
}

func (s *Service) buildResponses(viewerID uint, posts []model.Post, favorited map[uint]bool) []moduledto.PostResponse {
	out := make([]moduledto.PostResponse, 0, len(posts))
	for i := range posts {
		p := &posts[i]
		out = append(out, moduledto.PostResponse{
			ID:            p.ID,
			Title:         p.Title,
			Content:       p.Content,
			Image:         p.Image,
			ImageURL:      s.images.URL(p.Image),
			FavoriteCount: p.FavoriteCount,
			Author:        userservice.ToProfile(&p.User),
			IsMine:        viewerID != 0 && p.UserID == viewerID,
			HasFavorite:   favorited[p.ID],
			CreatedAt:     p.CreatedAt,
			PublishedAt:   p.PublishedAt,
		})
	}
	return out
}

// ToResponse 单个帖子的响应，只查询当前用户对该帖子的收藏状态
func (s *Service) ToResponse(ctx context.Context, viewerID uint, post *model.Post) (*moduledto.PostResponse, error) {
	favorited := map[uint]bool{}
	if viewerID != 0 && s.favorites != nil {
		has, err := s.favorites.HasFavorite(ctx, viewerID, post.ID)
		if err != nil {
			return nil, err
		}
		favorited[post.ID] = has
	}
	return &s.buildResponses(viewerID, []model.Post{*post}, favorited)[0], nil
}
