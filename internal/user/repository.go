package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Upadhyay76/Chitrashala/internal/shared/apperr"
	"github.com/Upadhyay76/Chitrashala/internal/shared/db"
)

type Repository interface {
	FindByID(ctx context.Context, id string) (*User, error)
	FindByIDs(ctx context.Context, ids []string) ([]User, error)
}

type repo struct{ store *db.Store }

func NewRepository(s *db.Store) Repository { return &repo{store: s} }

func (r *repo) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.store.Base.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("user " + id)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repo) FindByIDs(ctx context.Context, ids []string) ([]User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []User
	err := r.store.Base.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error
	return out, err
}
