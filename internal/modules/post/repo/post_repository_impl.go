package repo

import (
	"context"

	"startup-hub-server/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostStore {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Omit("User").Create(post).Error
}

func (r *PostRepository) Save(ctx context.Context, post *model.Post) error {
	res := r.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", post.ID).
		Select("title", "content", "image", "image_derived", "created_at").
		Updates(map[string]interface{}{
			"title":         post.Title,
			"content":       post.Content,
			"image":         post.Image,
			"image_derived": post.ImageDerived,
			"created_at":    post.CreatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PostRepository) FindByID(ctx context.Context, id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).Preload("User").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) List(ctx context.Context, params ListPostsParams) ([]model.Post, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Post{})

	if params.Title != "" {
		query = query.Where("posts.title LIKE ?", "%"+params.Title+"%")
	}
	if params.Author != "" {
		query = query.Joins("JOIN users ON users.id = posts.user_id").
			Where("users.username LIKE ?", "%"+params.Author+"%")
	}
	if params.FavoriteBy != nil {
		query = query.Where("posts.id IN (?)",
			r.db.Model(&model.Favorite{}).Select("post_id").Where("user_id = ?", *params.FavoriteBy))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []model.Post
	err := query.Preload("User").
		Order("posts.created_at DESC").Order("posts.id DESC").
		Offset(params.Offset).Limit(params.Limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *PostRepository) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.Review{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Post{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
