package dto

import (
	"time"

	userdto "startup-hub-server/internal/modules/user/dto"
)

// RawImage 上传的原始图片
type RawImage struct {
	Filename string
	Data     []byte
}

type CreatePostRequest struct {
	Title   string
	Content string
	Image   *RawImage
}

// UpdatePostRequest 字段为 nil 表示不修改
type UpdatePostRequest struct {
	Title       *string
	Content     *string
	Image       *RawImage
	RemoveImage bool
}

type PostListRequest struct {
	Page         int
	PageSize     int
	Title        string
	Author       string
	FavoriteOnly bool
	ViewerID     uint
}

type PostResponse struct {
	ID            uint                `json:"id"`
	Title         string              `json:"title"`
	Content       string              `json:"content"`
	Image         string              `json:"image"`
	ImageURL      string              `json:"image_url"`
	FavoriteCount uint                `json:"favorite_count"`
	Author        userdto.UserProfile `json:"author"`
	IsMine        bool                `json:"is_mine"`
	HasFavorite   bool                `json:"has_favorite"`
	CreatedAt     time.Time           `json:"created_at"`
	PublishedAt   time.Time           `json:"published_at"`
}

type PostListResponse struct {
	List     []PostResponse `json:"list"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}
