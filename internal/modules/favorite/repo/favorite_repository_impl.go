package repo

import (
	"context"

	"startup-hub-server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteStore {
	return &FavoriteRepository{db: db}
}

func findPost(tx *gorm.DB, postID uint) (*model.Post, error) {
	var post model.Post
	if err := tx.Select("id", "favorite_count").First(&post, postID).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func currentCount(tx *gorm.DB, postID uint) (uint, error) {
	var count uint
	err := tx.Model(&model.Post{}).Where("id = ?", postID).Pluck("favorite_count", &count).Error
	return count, err
}

func (r *FavoriteRepository) AddAndIncreaseCount(ctx context.Context, userID, postID uint) (bool, uint, error) {
	var (
		added bool
		count uint
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findPost(tx, postID); err != nil {
			return err
		}

		res := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model.Favorite{UserID: userID, PostID: postID})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 1 {
			added = true
			if err := tx.Model(&model.Post{}).Where("id = ?", postID).
				UpdateColumn("favorite_count", gorm.Expr("favorite_count + ?", 1)).Error; err != nil {
				return err
			}
		}

		var err error
		count, err = currentCount(tx, postID)
		return err
	})
	return added, count, err
}

func (r *FavoriteRepository) RemoveAndDecreaseCount(ctx context.Context, userID, postID uint) (bool, uint, error) {
	var (
		removed bool
		count   uint
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findPost(tx, postID); err != nil {
			return err
		}

		res := tx.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&model.Favorite{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			removed = true
			if err := tx.Model(&model.Post{}).Where("id = ? AND favorite_count > 0", postID).
				UpdateColumn("favorite_count", gorm.Expr("favorite_count - ?", 1)).Error; err != nil {
				return err
			}
		}

		var err error
		count, err = currentCount(tx, postID)
		return err
	})
	return removed, count, err
}

func (r *FavoriteRepository) Exists(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Favorite{}).
		Where("user_id = ? AND post_id = ?", userID, postID).Count(&count).Error
	return count > 0, err
}

func (r *FavoriteRepository) FavoritedPostIDs(ctx context.Context, userID uint, postIDs []uint) (map[uint]bool, error) {
	result := make(map[uint]bool, len(postIDs))
	if userID == 0 || len(postIDs) == 0 {
		return result, nil
	}

	var ids []uint
	if err := r.db.WithContext(ctx).Model(&model.Favorite{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error; err != nil {
		return nil, err
	}
	for _, id := range ids {
		result[id] = true
	}
	return result, nil
}

func (r *FavoriteRepository) RecountAll(ctx context.Context) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec("UPDATE posts SET favorite_count = " +
			"(SELECT COUNT(*) FROM favorites WHERE favorites.post_id = posts.id)")
		affected = res.RowsAffected
		return res.Error
	})
	return affected, err
}
