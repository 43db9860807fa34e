package service

import (
	"context"
	"errors"
	"log"
	"path"
	"strings"
	"time"
	"unicode/utf8"

	"startup-hub-server/internal/consts"
	"startup-hub-server/internal/model"
	moduledto "startup-hub-server/internal/modules/post/dto"
	"startup-hub-server/internal/modules/post/repo"
	platformservice "startup-hub-server/internal/platform/service"
	"startup-hub-server/internal/utils"

	"gorm.io/gorm"
)

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return platformservice.NewValidationError("标题不能为空")
	}
	if utf8.RuneCountInString(title) > consts.PostTitleMaxRunes {
		return platformservice.NewValidationError("标题最多64个字符")
	}
	return nil
}

func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return platformservice.NewValidationError("内容不能为空")
	}
	return nil
}

func notFoundOr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return platformservice.NewNotFoundError("帖子不存在")
	}
	return platformservice.WrapServiceError(platformservice.ErrorCodeInternal, msg, err)
}

// deriveImage 处理上传图片，返回写入存储后的文件名
func (s *Service) deriveImage(ctx context.Context, raw *moduledto.RawImage) (string, error) {
	if raw == nil {
		return "", nil
	}
	if len(raw.Data) == 0 {
		return "", platformservice.NewValidationError("图片内容为空")
	}
	// 客户端文件名只取扩展名，避免带处理前缀的上传绕过处理
	derived, err := s.images.Derive(ctx, raw.Data, "upload"+strings.ToLower(path.Ext(raw.Filename)))
	if err != nil {
		return "", err
	}
	return derived.Name, nil
}

// discard 清理不再被引用的图片，失败只记录日志
func (s *Service) discard(ctx context.Context, name string) {
	if name == "" {
		return
	}
	if err := s.images.Discard(ctx, name); err != nil {
		log.Printf("⚠️ 清理图片 %s 失败: %v", name, err)
	}
}

// Create 发布帖子。图片在入库前同步处理，入库失败时删除已写入的图片。
func (s *Service) Create(ctx context.Context, authorID uint, req moduledto.CreatePostRequest) (*model.Post, error) {
	if err := validateTitle(req.Title); err != nil {
		return nil, err
	}
	if err := validateContent(req.Content); err != nil {
		return nil, err
	}

	imageName, err := s.deriveImage(ctx, req.Image)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	post := model.Post{
		UserID:       authorID,
		Title:        req.Title,
		Content:      req.Content,
		Image:        imageName,
		ImageDerived: imageName != "",
		CreatedAt:    now,
		PublishedAt:  now,
	}
	if err := s.postStore.Create(ctx, &post); err != nil {
		s.discard(context.WithoutCancel(ctx), imageName)
		log.Printf("❌ 创建帖子失败: %v", err)
		return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "发布失败", err)
	}

	return s.Get(ctx, post.ID)
}

// Update 修改帖子，仅作者可操作。每次保存都会刷新 CreatedAt。
func (s *Service) Update(ctx context.Context, postID, requesterID uint, req moduledto.UpdatePostRequest) (*model.Post, error) {
	post, err := s.postStore.FindByID(ctx, postID)
	if err != nil {
		return nil, notFoundOr(err, "查询帖子失败")
	}
	if post.UserID != requesterID {
		return nil, platformservice.NewForbiddenError("只有作者可以修改帖子")
	}

	if req.Title != nil {
		if err := validateTitle(*req.Title); err != nil {
			return nil, err
		}
		post.Title = *req.Title
	}
	if req.Content != nil {
		if err := validateContent(*req.Content); err != nil {
			return nil, err
		}
		post.Content = *req.Content
	}

	oldImage := post.Image
	newImage, err := s.deriveImage(ctx, req.Image)
	if err != nil {
		return nil, err
	}
	switch {
	case newImage != "":
		post.Image = newImage
		post.ImageDerived = true
	case req.RemoveImage:
		post.Image = ""
		post.ImageDerived = false
	}
	post.CreatedAt = time.Now()

	if err := s.postStore.Save(ctx, post); err != nil {
		s.discard(context.WithoutCancel(ctx), newImage)
		return nil, notFoundOr(err, "保存失败")
	}

	if oldImage != "" && oldImage != post.Image {
		s.discard(context.WithoutCancel(ctx), oldImage)
	}

	return s.Get(ctx, post.ID)
}

// Delete 删除帖子，仅作者可操作。评论与收藏关系在同一事务中删除，提交后清理图片。
func (s *Service) Delete(ctx context.Context, postID, requesterID uint) error {
	post, err := s.postStore.FindByID(ctx, postID)
	if err != nil {
		return notFoundOr(err, "查询帖子失败")
	}
	if post.UserID != requesterID {
		return platformservice.NewForbiddenError("只有作者可以删除帖子")
	}

	if err := s.postStore.DeleteCascade(ctx, postID); err != nil {
		return notFoundOr(err, "删除失败")
	}

	s.discard(context.WithoutCancel(ctx), post.Image)
	return nil
}

func (s *Service) Get(ctx context.Context, postID uint) (*model.Post, error) {
	post, err := s.postStore.FindByID(ctx, postID)
	if err != nil {
		return nil, notFoundOr(err, "查询帖子失败")
	}
	return post, nil
}

// List 按创建时间倒序分页查询帖子
func (s *Service) List(ctx context.Context, req moduledto.PostListRequest) ([]model.Post, int64, int, int, error) {
	page, pageSize := utils.NormalizePage(req.Page, req.PageSize)

	params := repo.ListPostsParams{
		Title:  strings.TrimSpace(req.Title),
		Author: strings.TrimSpace(req.Author),
		Offset: (page - 1) * pageSize,
		Limit:  pageSize,
	}
	if req.FavoriteOnly {
		if req.ViewerID == 0 {
			return nil, 0, page, pageSize, platformservice.NewUnauthorizedError("请先登录")
		}
		viewer := req.ViewerID
		params.FavoriteBy = &viewer
	}

	posts, total, err := s.postStore.List(ctx, params)
	if err != nil {
		return nil, 0, page, pageSize, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "获取帖子列表失败", err)
	}
	return posts, total, page, pageSize, nil
}
