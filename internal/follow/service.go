package follow

import (
	"context"

	"github.com/Upadhyay76/Chitrashala/internal/shared/apperr"
	"github.com/Upadhyay76/Chitrashala/internal/user"
)

type Service interface {
	Follow(ctx context.Context, followerID, followingID string) error
	Unfollow(ctx context.Context, followerID, followingID string) error
	Followers(ctx context.Context, userID string) ([]user.Summary, error)
	Following(ctx context.Context, userID string) ([]user.Summary, error)
}

type service struct {
	repo  Repository
	users user.Repository
}

func NewService(r Repository, u user.Repository) Service {
	return &service{repo: r, users: u}
}

func (s *service) Follow(ctx context.Context, followerID, followingID string) error {
	if followerID == followingID {
		return apperr.Validation("cannot follow yourself")
	}
	// The target must exist; a dangling edge would break listings.
	if _, err := s.users.FindByID(ctx, followingID); err != nil {
		return err
	}
	return s.repo.Create(ctx, &Follow{FollowerID: followerID, FollowingID: followingID})
}

func (s *service) Unfollow(ctx context.Context, followerID, followingID string) error {
	return s.repo.Delete(ctx, followerID, followingID)
}

func (s *service) Followers(ctx context.Context, userID string) ([]user.Summary, error) {
	ids, err := s.repo.FollowerIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.summaries(ctx, ids)
}

func (s *service) Following(ctx context.Context, userID string) ([]user.Summary, error) {
	ids, err := s.repo.FollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.summaries(ctx, ids)
}

func (s *service) summaries(ctx context.Context, ids []string) ([]user.Summary, error) {
	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]user.Summary, 0, len(users))
	for i := range users {
		out = append(out, users[i].Summary())
	}
	return out, nil
}
