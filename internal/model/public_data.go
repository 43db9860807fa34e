package model

import "time"

// PublicPost 创业网公告（来自公共数据接口）
type PublicPost struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	URL       string    `json:"url" gorm:"size:512;not null;uniqueIndex"`
	PostedAt  time.Time `json:"posted_at"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// StartupPlace 创业支援中心位置（来自公共数据接口）
type StartupPlace struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"size:255;not null;uniqueIndex:idx_place_name_region"`
	Enterprise string    `json:"enterprise" gorm:"size:255"`
	Address    string    `json:"address" gorm:"size:512"`
	Tel        string    `json:"tel" gorm:"size:64"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Region     string    `json:"region" gorm:"size:64;not null;uniqueIndex:idx_place_name_region"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}
