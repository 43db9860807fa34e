package repo

import (
	"context"

	"startup-hub-server/internal/model"
)

type PublicDataStore interface {
	// UpsertNotices 按 url 写入或更新公告，整个批次在同一事务中
	UpsertNotices(ctx context.Context, posts []model.PublicPost) error
	// UpsertPlaces 按 (name, region) 写入或更新支援中心，整个批次在同一事务中
	UpsertPlaces(ctx context.Context, places []model.StartupPlace) error
	ListNotices(ctx context.Context, offset, limit int) ([]model.PublicPost, int64, error)
	ListPlaces(ctx context.Context, region string, offset, limit int) ([]model.StartupPlace, int64, error)
}
