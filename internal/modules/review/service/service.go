package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"startup-hub-server/internal/model"
	moduledto "startup-hub-server/internal/modules/review/dto"
	"startup-hub-server/internal/modules/review/repo"
	userservice "startup-hub-server/internal/modules/user/service"
	platformservice "startup-hub-server/internal/platform/service"
	"startup-hub-server/internal/utils"

	"gorm.io/gorm"
)

type Service struct {
	reviewStore repo.ReviewStore
}

func New(reviewStore repo.ReviewStore) *Service {
	return &Service{reviewStore: reviewStore}
}

func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return platformservice.NewValidationError("评论内容不能为空")
	}
	return nil
}

// Create 为帖子添加评论
func (s *Service) Create(ctx context.Context, authorID, postID uint, content string) (*model.Review, error) {
	if err := validateContent(content); err != nil {
		return nil, err
	}

	review := model.Review{UserID: authorID, PostID: postID, Content: content, CreatedAt: time.Now()}
	if err := s.reviewStore.CreateForPost(ctx, &review); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("帖子不存在")
		}
		log.Printf("❌ 创建评论失败: %v", err)
		return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "评论失败", err)
	}
	return s.find(ctx, postID, review.ID)
}

// Update 修改评论内容，评论必须属于该帖子。每次保存都会刷新 CreatedAt。
func (s *Service) Update(ctx context.Context, postID, reviewID uint, content string) (*model.Review, error) {
	if err := validateContent(content); err != nil {
		return nil, err
	}
	review, err := s.find(ctx, postID, reviewID)
	if err != nil {
		return nil, err
	}

	review.Content = content
	review.CreatedAt = time.Now()
	if err := s.reviewStore.Save(ctx, review); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("评论不存在")
		}
		return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "保存失败", err)
	}
	return review, nil
}

func (s *Service) Delete(ctx context.Context, postID, reviewID uint) error {
	review, err := s.find(ctx, postID, reviewID)
	if err != nil {
		return err
	}
	if err := s.reviewStore.Delete(ctx, review); err != nil {
		return platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "删除失败", err)
	}
	return nil
}

// List 按时间倒序分页列出帖子的评论
func (s *Service) List(ctx context.Context, postID uint, page, pageSize int) (*moduledto.ReviewListResponse, error) {
	page, pageSize = utils.NormalizePage(page, pageSize)

	exists, err := s.reviewStore.PostExists(ctx, postID)
	if err != nil {
		return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "获取评论失败", err)
	}
	if !exists {
		return nil, platformservice.NewNotFoundError("帖子不存在")
	}

	reviews, total, err := s.reviewStore.ListByPostID(ctx, postID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "获取评论失败", err)
	}

	list := make([]moduledto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		list = append(list, ToResponse(&reviews[i]))
	}
	return &moduledto.ReviewListResponse{List: list, Total: total, Page: page, PageSize: pageSize}, nil
}

func ToResponse(r *model.Review) moduledto.ReviewResponse {
	return moduledto.ReviewResponse{
		ID:        r.ID,
		PostID:    r.PostID,
		Content:   r.Content,
		Author:    userservice.ToProfile(&r.User),
		CreatedAt: r.CreatedAt,
	}
}

func (s *Service) find(ctx context.Context, postID, reviewID uint) (*model.Review, error) {
	review, err := s.reviewStore.FindByIDAndPostID(ctx, reviewID, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("评论不存在")
		}
		return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "获取评论失败", err)
	}
	return review, nil
}
