package like

import (
	"context"

	"gorm.io/gorm/clause"

	"github.com/Upadhyay76/Chitrashala/internal/shared/db"
)

type Repository interface {
	LikePost(ctx context.Context, l *Like) error
	UnlikePost(ctx context.Context, userID, postID string) error
	LikeComment(ctx context.Context, l *Like) error
	UnlikeComment(ctx context.Context, userID, commentID string) error
	CountForPost(ctx context.Context, postID string) (int64, error)
	CountForComment(ctx context.Context, commentID string) (int64, error)
}

type repo struct{ store *db.Store }

func NewRepository(s *db.Store) Repository { return &repo{store: s} }

// Liking twice is a no-op rather than an error; the partial unique index
// absorbs the duplicate.
func (r *repo) LikePost(ctx context.Context, l *Like) error {
	return r.store.Base.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(l).Error
}

func (r *repo) UnlikePost(ctx context.Context, userID, postID string) error {
	return r.store.Base.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&Like{}).Error
}

func (r *repo) LikeComment(ctx context.Context, l *Like) error {
	return r.store.Base.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(l).Error
}

func (r *repo) UnlikeComment(ctx context.Context, userID, commentID string) error {
	return r.store.Base.WithContext(ctx).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		Delete(&Like{}).Error
}

func (r *repo) CountForPost(ctx context.Context, postID string) (int64, error) {
	var n int64
	err := r.store.Base.WithContext(ctx).
		Model(&Like{}).
		Where("post_id = ?", postID).
		Count(&n).Error
	return n, err
}

func (r *repo) CountForComment(ctx context.Context, commentID string) (int64, error) {
	var n int64
	err := r.store.Base.WithContext(ctx).
		Model(&Like{}).
		Where("comment_id = ?", commentID).
		Count(&n).Error
	return n, err
}
