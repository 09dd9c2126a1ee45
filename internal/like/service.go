package like

import (
	"context"

	"github.com/google/uuid"

	"github.com/Upadhyay76/Chitrashala/internal/shared/apperr"
)

type Service interface {
	LikePost(ctx context.Context, userID, postID string) (int64, error)
	UnlikePost(ctx context.Context, userID, postID string) (int64, error)
	LikeComment(ctx context.Context, userID, commentID string) (int64, error)
	UnlikeComment(ctx context.Context, userID, commentID string) (int64, error)
}

type service struct{ repo Repository }

func NewService(r Repository) Service { return &service{repo: r} }

func (s *service) LikePost(ctx context.Context, userID, postID string) (int64, error) {
	if postID == "" {
		return 0, apperr.Validation("post id required")
	}
	l := &Like{ID: uuid.NewString(), UserID: userID, PostID: &postID}
	if err := s.repo.LikePost(ctx, l); err != nil {
		return 0, err
	}
	return s.repo.CountForPost(ctx, postID)
}

func (s *service) UnlikePost(ctx context.Context, userID, postID string) (int64, error) {
	if postID == "" {
		return 0, apperr.Validation("post id required")
	}
	if err := s.repo.UnlikePost(ctx, userID, postID); err != nil {
		return 0, err
	}
	return s.repo.CountForPost(ctx, postID)
}

func (s *service) LikeComment(ctx context.Context, userID, commentID string) (int64, error) {
	if commentID == "" {
		return 0, apperr.Validation("comment id required")
	}
	l := &Like{ID: uuid.NewString(), UserID: userID, CommentID: &commentID}
	if err := s.repo.LikeComment(ctx, l); err != nil {
		return 0, err
	}
	return s.repo.CountForComment(ctx, commentID)
}

func (s *service) UnlikeComment(ctx context.Context, userID, commentID string) (int64, error) {
	if commentID == "" {
		return 0, apperr.Validation("comment id required")
	}
	if err := s.repo.UnlikeComment(ctx, userID, commentID); err != nil {
		return 0, err
	}
	return s.repo.CountForComment(ctx, commentID)
}
