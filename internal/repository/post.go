package repository

import (
	"context"
	"errors"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/observability"

	"gorm.io/gorm"
)

// PostRepository defines persistence operations for posts.
//
// UpdateOwned and DeleteOwned fold the ownership check into the WHERE clause
// of a single statement, so a missing row and a row owned by someone else are
// indistinguishable to the caller. Both surface as the same not-found error,
// which keeps the API from leaking whether a given post id exists.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context, q PostQuery) ([]*models.Post, error)
	UpdateOwned(ctx context.Context, id, ownerID uint, title, content, tags string) error
	DeleteOwned(ctx context.Context, id, ownerID uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	defer observability.ObserveQuery("create", "posts", time.Now())

	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	observability.EntitiesCreated.WithLabelValues("post").Inc()
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post not found")
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, q PostQuery) ([]*models.Post, error) {
	defer observability.ObserveQuery("list", "posts", time.Now())

	var posts []*models.Post
	if err := q.apply(r.db.WithContext(ctx)).Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) UpdateOwned(ctx context.Context, id, ownerID uint, title, content, tags string) error {
	defer observability.ObserveQuery("update", "posts", time.Now())

	result := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(map[string]interface{}{
			"title":   title,
			"content": content,
			"tags":    tags,
		})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Post not found or unauthorized")
	}
	return nil
}

func (r *postRepository) DeleteOwned(ctx context.Context, id, ownerID uint) error {
	defer observability.ObserveQuery("delete", "posts", time.Now())

	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&models.Post{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Post not found or unauthorized")
	}
	return nil
}
