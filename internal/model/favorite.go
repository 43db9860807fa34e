package model

import "time"

// Favorite 用户收藏帖子的关系，(UserID, PostID) 唯一
type Favorite struct {
	UserID    uint      `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	PostID    uint      `json:"post_id" gorm:"primaryKey;autoIncrement:false;index"`
	User      User      `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
	Post      Post      `json:"-" gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE;"`
	CreatedAt time.Time `json:"created_at"`
}
