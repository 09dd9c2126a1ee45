package post

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Upadhyay76/Chitrashala/internal/shared/apperr"
	"github.com/Upadhyay76/Chitrashala/internal/shared/db"
	"github.com/Upadhyay76/Chitrashala/internal/tag"
)

type Repository interface {
	Create(ctx context.Context, p *Post, tagNames []string) error
	ListPublic(ctx context.Context) ([]Post, error)
	FindByID(ctx context.Context, id string) (*Post, error)
	FindOwned(ctx context.Context, id, userID string) (*Post, error)
	ListByUser(ctx context.Context, userID string) ([]Post, error)
	Search(ctx context.Context, query string, tagIDs []string) ([]Post, error)
	TagNamesByPost(ctx context.Context, postIDs []string) (map[string][]string, error)
	UpdateWithTags(ctx context.Context, p *Post, tagNames []string) error
}

type repo struct{ store *db.Store }

func NewRepository(s *db.Store) Repository { return &repo{store: s} }

func (r *repo) Create(ctx context.Context, p *Post, tagNames []string) error {
	return r.store.Base.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		return linkTags(tx, p.ID, tagNames)
	})
}

func (r *repo) ListPublic(ctx context.Context) ([]Post, error) {
	var out []Post
	err := r.store.Base.WithContext(ctx).
		Preload("User").
		Where("visibility = ?", VisibilityPublic).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *repo) FindByID(ctx context.Context, id string) (*Post, error) {
	var p Post
	err := r.store.Base.WithContext(ctx).Preload("User").First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("post " + id)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindOwned returns Unauthorized for both a missing post and someone
// else's post, so the caller cannot tell the two apart.
func (r *repo) FindOwned(ctx context.Context, id, userID string) (*Post, error) {
	var p Post
	err := r.store.Base.WithContext(ctx).
		First(&p, "id = ? AND user_id = ?", id, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Unauthorized("post " + id)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repo) ListByUser(ctx context.Context, userID string) ([]Post, error) {
	var out []Post
	err := r.store.Base.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// Search unions title/description substring matches with posts linked to
// any of the already-resolved tag ids. Matching is case-insensitive via
// LOWER on both sides, which behaves the same on Postgres and SQLite.
func (r *repo) Search(ctx context.Context, query string, tagIDs []string) ([]Post, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	base := r.store.Base.WithContext(ctx)

	var taggedPostIDs []string
	if len(tagIDs) > 0 {
		if err := base.Model(&PostToTag{}).
			Where("tag_id IN ?", tagIDs).
			Distinct().
			Pluck("post_id", &taggedPostIDs).Error; err != nil {
			return nil, err
		}
	}

	q := base.Preload("User").
		Where("visibility = ?", VisibilityPublic).
		Order("created_at DESC")
	if len(taggedPostIDs) > 0 {
		q = q.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR id IN ?",
			pattern, pattern, taggedPostIDs,
		)
	} else {
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var out []Post
	err := q.Find(&out).Error
	return out, err
}

// TagNamesByPost resolves tag names for a batch of posts in one query so
// list endpoints stay at two round-trips regardless of result size.
func (r *repo) TagNamesByPost(ctx context.Context, postIDs []string) (map[string][]string, error) {
	if len(postIDs) == 0 {
		return map[string][]string{}, nil
	}
	type row struct {
		PostID string
		Name   string
	}
	var rows []row
	err := r.store.Base.WithContext(ctx).
		Table("post_to_tags").
		Select("post_to_tags.post_id, tags.name").
		Joins("JOIN tags ON tags.id = post_to_tags.tag_id").
		Where("post_to_tags.post_id IN ?", postIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string][]string, len(postIDs))
	for _, rw := range rows {
		out[rw.PostID] = append(out[rw.PostID], rw.Name)
	}
	return out, nil
}

// UpdateWithTags commits the field update and the full tag replacement as
// one transaction; any failure rolls both back.
func (r *repo) UpdateWithTags(ctx context.Context, p *Post, tagNames []string) error {
	return r.store.Base.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"title":       p.Title,
			"description": p.Description,
			"visibility":  p.Visibility,
			"updated_at":  time.Now(),
		}
		if err := tx.Model(&Post{}).Where("id = ?", p.ID).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", p.ID).Delete(&PostToTag{}).Error; err != nil {
			return err
		}
		return linkTags(tx, p.ID, tagNames)
	})
}

func linkTags(tx *gorm.DB, postID string, names []string) error {
	for _, name := range names {
		t, err := tag.GetOrCreate(tx, name)
		if err != nil {
			return err
		}
		if err := tx.Create(&PostToTag{PostID: postID, TagID: t.ID}).Error; err != nil {
			return err
		}
	}
	return nil
}
