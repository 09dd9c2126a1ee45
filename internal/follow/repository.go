package follow

import (
	"context"

	"gorm.io/gorm/clause"

	"github.com/Upadhyay76/Chitrashala/internal/shared/db"
)

type Repository interface {
	Create(ctx context.Context, f *Follow) error
	Delete(ctx context.Context, followerID, followingID string) error
	FollowerIDs(ctx context.Context, userID string) ([]string, error)
	FollowingIDs(ctx context.Context, userID string) ([]string, error)
}

type repo struct{ store *db.Store }

func NewRepository(s *db.Store) Repository { return &repo{store: s} }

func (r *repo) Create(ctx context.Context, f *Follow) error {
	// Following twice is idempotent; the composite key absorbs duplicates.
	return r.store.Base.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(f).Error
}

func (r *repo) Delete(ctx context.Context, followerID, followingID string) error {
	return r.store.Base.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&Follow{}).Error
}

func (r *repo) FollowerIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.store.Base.WithContext(ctx).
		Model(&Follow{}).
		Where("following_id = ?", userID).
		Pluck("follower_id", &ids).Error
	return ids, err
}

func (r *repo) FollowingIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.store.Base.WithContext(ctx).
		Model(&Follow{}).
		Where("follower_id = ?", userID).
		Pluck("following_id", &ids).Error
	return ids, err
}
