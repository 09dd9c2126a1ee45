package comment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Upadhyay76/Chitrashala/internal/shared/apperr"
	"github.com/Upadhyay76/Chitrashala/internal/shared/db"
)

type Repository interface {
	Create(ctx context.Context, c *Comment) error
	FindByID(ctx context.Context, id string) (*Comment, error)
	ListByPost(ctx context.Context, postID string) ([]Comment, error)
	DeleteOwned(ctx context.Context, id, userID string) error
}

type repo struct{ store *db.Store }

func NewRepository(s *db.Store) Repository { return &repo{store: s} }

func (r *repo) Create(ctx context.Context, c *Comment) error {
	return r.store.Base.WithContext(ctx).Create(c).Error
}

func (r *repo) FindByID(ctx context.Context, id string) (*Comment, error) {
	var c Comment
	err := r.store.Base.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("comment " + id)
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repo) ListByPost(ctx context.Context, postID string) ([]Comment, error) {
	var out []Comment
	err := r.store.Base.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

// DeleteOwned collapses "absent" and "not yours" like the post edit path.
func (r *repo) DeleteOwned(ctx context.Context, id, userID string) error {
	res := r.store.Base.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.Unauthorized("comment " + id)
	}
	return nil
}
