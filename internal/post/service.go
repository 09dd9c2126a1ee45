package post

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Upadhyay76/Chitrashala/internal/events"
	"github.com/Upadhyay76/Chitrashala/internal/metrics"
	"github.com/Upadhyay76/Chitrashala/internal/shared/apperr"
	"github.com/Upadhyay76/Chitrashala/internal/tag"
)

type Service interface {
	Create(ctx context.Context, userID string, in CreateReq) (*View, error)
	ListPublic(ctx context.Context) ([]View, error)
	GetByID(ctx context.Context, id string) (*View, error)
	ListOwn(ctx context.Context, userID string) ([]View, error)
	Search(ctx context.Context, query string) ([]View, error)
	Edit(ctx context.Context, postID, userID string, in EditReq) error
}

type service struct {
	repo     Repository
	tags     tag.Repository
	producer events.Producer
}

func NewService(r Repository, t tag.Repository, p events.Producer) Service {
	if p == nil {
		p = events.Nop{}
	}
	return &service{repo: r, tags: t, producer: p}
}

func (s *service) Create(ctx context.Context, userID string, in CreateReq) (*View, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperr.Validation("title is required")
	}
	if strings.TrimSpace(in.MediaURL) == "" {
		return nil, apperr.Validation("media_url is required")
	}
	if in.Type != TypeImage && in.Type != TypeVideo {
		return nil, apperr.Validation("type must be image or video")
	}
	visibility := in.Visibility
	if visibility == "" {
		visibility = VisibilityPublic
	}
	if visibility != VisibilityPublic && visibility != VisibilityPrivate {
		return nil, apperr.Validation("visibility must be public or private")
	}
	access := in.AccessType
	if access == "" {
		access = AccessFree
	}
	if access != AccessFree && access != AccessPaid {
		return nil, apperr.Validation("access_type must be free or paid")
	}
	if access == AccessPaid && (in.Price == nil || strings.TrimSpace(*in.Price) == "") {
		return nil, apperr.Validation("price is required for paid posts")
	}

	p := &Post{
		ID:             uuid.NewString(),
		UserID:         userID,
		Type:           in.Type,
		Title:          strings.TrimSpace(in.Title),
		Description:    in.Description,
		MediaURL:       in.MediaURL,
		ThumbnailURL:   in.ThumbnailURL,
		Visibility:     visibility,
		AccessType:     access,
		Price:          in.Price,
		IsDownloadable: in.IsDownloadable,
	}
	names := cleanTagNames(in.Tags)
	if err := s.repo.Create(ctx, p, names); err != nil {
		return nil, err
	}
	s.emit(ctx, events.PostCreated, p)

	v := toView(p, names)
	return &v, nil
}

func (s *service) ListPublic(ctx context.Context) ([]View, error) {
	posts, err := s.repo.ListPublic(ctx)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, posts)
}

func (s *service) GetByID(ctx context.Context, id string) (*View, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tags, err := s.repo.TagNamesByPost(ctx, []string{p.ID})
	if err != nil {
		return nil, err
	}
	v := toView(p, tags[p.ID])
	return &v, nil
}

func (s *service) ListOwn(ctx context.Context, userID string) ([]View, error) {
	posts, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, posts)
}

func (s *service) Search(ctx context.Context, query string) ([]View, error) {
	if query == "" {
		return nil, apperr.Validation("search term required")
	}
	tagIDs, err := s.tags.FindIDsMatching(ctx, query)
	if err != nil {
		return nil, err
	}
	posts, err := s.repo.Search(ctx, query, tagIDs)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, posts)
}

// Edit rejects bad input before any store access, then delegates the
// atomic field-update-plus-tag-replacement to the repository.
func (s *service) Edit(ctx context.Context, postID, userID string, in EditReq) error {
	err := s.edit(ctx, postID, userID, in)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.PostEdits.WithLabelValues(outcome).Inc()
	return err
}

func (s *service) edit(ctx context.Context, postID, userID string, in EditReq) error {
	if strings.TrimSpace(in.Title) == "" {
		return apperr.Validation("title is required")
	}
	visibility := in.Visibility
	if visibility == "" {
		visibility = VisibilityPublic
	}
	if visibility != VisibilityPublic && visibility != VisibilityPrivate {
		return apperr.Validation("visibility must be public or private")
	}

	p, err := s.repo.FindOwned(ctx, postID, userID)
	if err != nil {
		return err
	}

	p.Title = strings.TrimSpace(in.Title)
	p.Description = in.Description
	p.Visibility = visibility
	if err := s.repo.UpdateWithTags(ctx, p, cleanTagNames(in.Tags)); err != nil {
		return err
	}
	s.emit(ctx, events.PostUpdated, p)
	return nil
}

func (s *service) enrich(ctx context.Context, posts []Post) ([]View, error) {
	ids := make([]string, 0, len(posts))
	for i := range posts {
		ids = append(ids, posts[i].ID)
	}
	tags, err := s.repo.TagNamesByPost(ctx, ids)
	if err != nil {
		return nil, err
	}
	return toViews(posts, tags), nil
}

func (s *service) emit(ctx context.Context, kind string, p *Post) {
	e := events.Event{Kind: kind, PostID: p.ID, UserID: p.UserID, At: time.Now()}
	if err := s.producer.Publish(ctx, e); err != nil {
		logrus.WithError(err).WithField("kind", kind).Warn("event publish failed")
	}
}

func cleanTagNames(names []string) []string {
	out := make([]string, 0, len(names))
	seen := map[string]struct{}{}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
