package dto

import (
	"time"

	userdto "startup-hub-server/internal/modules/user/dto"
)

type ReviewRequest struct {
	Content string `json:"content" form:"content"`
}

type ReviewResponse struct {
	ID        uint                `json:"id"`
	PostID    uint                `json:"post_id"`
	Content   string              `json:"content"`
	Author    userdto.UserProfile `json:"author"`
	CreatedAt time.Time           `json:"created_at"`
}

type ReviewListResponse struct {
	List     []ReviewResponse `json:"list"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}
