package user

import "context"

type Service interface {
	GetProfile(ctx context.Context, id string) (*User, error)
}

type service struct{ repo Repository }

func NewService(r Repository) Service { return &service{repo: r} }

func (s *service) GetProfile(ctx context.Context, id string) (*User, error) {
	return s.repo.FindByID(ctx, id)
}
