package repository

import (
	"context"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/observability"

	"gorm.io/gorm"
)

// LikeRepository defines persistence operations for likes.
type LikeRepository interface {
	Create(ctx context.Context, like *models.Like) error
	ListByPost(ctx context.Context, postID uint) ([]*models.Like, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository returns a new LikeRepository implementation.
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Create inserts a like after verifying the target post exists. The insert is
// unconditional beyond that check: a user liking the same post twice gets two
// rows, and each shows up independently in the post's like list.
func (r *likeRepository) Create(ctx context.Context, like *models.Like) error {
	defer observability.ObserveQuery("create", "likes", time.Now())

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("id = ?", like.PostID).
		Count(&count).Error; err != nil {
		return models.NewInternalError(err)
	}
	if count == 0 {
		return models.NewNotFoundError("Post not found")
	}

	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		return models.NewInternalError(err)
	}
	observability.EntitiesCreated.WithLabelValues("like").Inc()
	return nil
}

// ListByPost returns every like on a post in insertion order.
func (r *likeRepository) ListByPost(ctx context.Context, postID uint) ([]*models.Like, error) {
	defer observability.ObserveQuery("list", "likes", time.Now())

	var likes []*models.Like
	if err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Find(&likes).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return likes, nil
}
