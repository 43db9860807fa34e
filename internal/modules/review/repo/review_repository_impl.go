package repo

import (
	"context"

	"startup-hub-server/internal/model"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewStore {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) CreateForPost(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post model.Post
		if err := tx.Select("id").First(&post, review.PostID).Error; err != nil {
			return err
		}
		return tx.Omit("User", "Post").Create(review).Error
	})
}

func (r *ReviewRepository) FindByIDAndPostID(ctx context.Context, reviewID, postID uint) (*model.Review, error) {
	var review model.Review
	if err := r.db.WithContext(ctx).Preload("User").
		Where("id = ? AND post_id = ?", reviewID, postID).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) Save(ctx context.Context, review *model.Review) error {
	res := r.db.WithContext(ctx).Model(&model.Review{}).Where("id = ?", review.ID).
		Updates(map[string]interface{}{
			"content":    review.Content,
			"created_at": review.CreatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Delete(&model.Review{}, review.ID).Error
}

func (r *ReviewRepository) PostExists(ctx context.Context, postID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", postID).Count(&count).Error
	return count > 0, err
}

func (r *ReviewRepository) ListByPostID(ctx context.Context, postID uint, offset, limit int) ([]model.Review, int64, error) {
	var (
		reviews []model.Review
		total   int64
	)
	query := r.db.WithContext(ctx).Model(&model.Review{}).Where("post_id = ?", postID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Preload("User").Order("created_at DESC").Order("id DESC").
		Offset(offset).Limit(limit).Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}
