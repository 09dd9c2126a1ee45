package comment

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Upadhyay76/Chitrashala/internal/shared/apperr"
	"github.com/Upadhyay76/Chitrashala/internal/user"
)

type Service interface {
	Create(ctx context.Context, userID, postID string, in CreateReq) (*Comment, error)
	ListByPost(ctx context.Context, postID string) ([]View, error)
	Delete(ctx context.Context, id, userID string) error
}

type service struct{ repo Repository }

func NewService(r Repository) Service { return &service{repo: r} }

func (s *service) Create(ctx context.Context, userID, postID string, in CreateReq) (*Comment, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, apperr.Validation("content is required")
	}
	if in.ParentID != nil {
		parent, err := s.repo.FindByID(ctx, *in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent.PostID != postID {
			return nil, apperr.Validation("parent comment belongs to another post")
		}
	}
	c := &Comment{
		ID:       uuid.NewString(),
		UserID:   userID,
		PostID:   postID,
		Content:  content,
		ParentID: in.ParentID,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) ListByPost(ctx context.Context, postID string) ([]View, error) {
	comments, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return nest(comments), nil
}

func (s *service) Delete(ctx context.Context, id, userID string) error {
	return s.repo.DeleteOwned(ctx, id, userID)
}

func nest(comments []Comment) []View {
	replies := map[string][]View{}
	roots := make([]View, 0, len(comments))
	for i := range comments {
		c := &comments[i]
		if c.ParentID != nil {
			replies[*c.ParentID] = append(replies[*c.ParentID], toView(c))
		}
	}
	for i := range comments {
		c := &comments[i]
		if c.ParentID != nil {
			continue
		}
		v := toView(c)
		v.Replies = replies[c.ID]
		roots = append(roots, v)
	}
	return roots
}

func toView(c *Comment) View {
	v := View{
		ID:        c.ID,
		PostID:    c.PostID,
		Content:   c.Content,
		ParentID:  c.ParentID,
		CreatedAt: c.CreatedAt,
	}
	if c.User != nil {
		v.User = c.User.Summary()
	} else {
		v.User = user.Summary{ID: c.UserID}
	}
	return v
}
