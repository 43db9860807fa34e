package model

import "time"

// Post 创业信息帖子
//
// CreatedAt 在每次保存成功时都会被刷新为当前时间（"最后保存时间"语义），
// 首次发布时间记录在 PublishedAt 中，之后不再变更。
type Post struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"user_id" gorm:"not null;index"`
	User          User      `json:"user" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
	Title         string    `json:"title" gorm:"size:64;not null"`
	Content       string    `json:"content" gorm:"type:text;not null"`
	Image         string    `json:"image"`
	ImageDerived  bool      `json:"-" gorm:"not null;default:false"`
	FavoriteCount uint      `json:"favorite_count" gorm:"not null;default:0"`
	CreatedAt     time.Time `json:"created_at" gorm:"index"`
	PublishedAt   time.Time `json:"published_at"`
}
