package repository

import (
	"context"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/observability"

	"gorm.io/gorm"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository returns a new CommentRepository implementation.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create inserts a comment after verifying the target post exists. Comments
// must never reference a missing post.
func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	defer observability.ObserveQuery("create", "comments", time.Now())

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("id = ?", comment.PostID).
		Count(&count).Error; err != nil {
		return models.NewInternalError(err)
	}
	if count == 0 {
		return models.NewNotFoundError("Post not found")
	}

	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	observability.EntitiesCreated.WithLabelValues("comment").Inc()
	return nil
}

// ListByPost returns every comment on a post in insertion order. A post with
// no comments (or an unknown post id) yields an empty slice, not an error.
func (r *commentRepository) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	defer observability.ObserveQuery("list", "comments", time.Now())

	var comments []*models.Comment
	if err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Find(&comments).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}
