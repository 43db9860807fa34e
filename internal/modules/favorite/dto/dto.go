package dto

// FavoriteState 收藏操作后的状态
type FavoriteState struct {
	PostID        uint `json:"post_id"`
	HasFavorite   bool `json:"has_favorite"`
	FavoriteCount uint `json:"favorite_count"`
}
