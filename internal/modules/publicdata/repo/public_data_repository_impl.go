package repo

import (
	"context"

	"startup-hub-server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const upsertBatchSize = 100

type PublicDataRepository struct {
	db *gorm.DB
}

func NewPublicDataRepository(db *gorm.DB) PublicDataStore {
	return &PublicDataRepository{db: db}
}

func (r *PublicDataRepository) UpsertNotices(ctx context.Context, posts []model.PublicPost) error {
	if len(posts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "url"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "posted_at", "updated_at"}),
		}).CreateInBatches(&posts, upsertBatchSize).Error
	})
}

func (r *PublicDataRepository) UpsertPlaces(ctx context.Context, places []model.StartupPlace) error {
	if len(places) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}, {Name: "region"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"enterprise", "address", "tel", "latitude", "longitude", "updated_at",
			}),
		}).CreateInBatches(&places, upsertBatchSize).Error
	})
}

func (r *PublicDataRepository) ListNotices(ctx context.Context, offset, limit int) ([]model.PublicPost, int64, error) {
	var (
		posts []model.PublicPost
		total int64
	)
	query := r.db.WithContext(ctx).Model(&model.PublicPost{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("id DESC").Offset(offset).Limit(limit).Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *PublicDataRepository) ListPlaces(ctx context.Context, region string, offset, limit int) ([]model.StartupPlace, int64, error) {
	var (
		places []model.StartupPlace
		total  int64
	)
	query := r.db.WithContext(ctx).Model(&model.StartupPlace{})
	if region != "" {
		query = query.Where("region = ?", region)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("id ASC").Offset(offset).Limit(limit).Find(&places).Error; err != nil {
		return nil, 0, err
	}
	return places, total, nil
}
