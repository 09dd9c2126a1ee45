package tag

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Upadhyay76/Chitrashala/internal/metrics"
	"github.com/Upadhyay76/Chitrashala/internal/shared/db"
)

type Repository interface {
	GetOrCreate(ctx context.Context, name string) (*Tag, error)
	FindIDsMatching(ctx context.Context, substr string) ([]string, error)
}

type repo struct{ store *db.Store }

func NewRepository(s *db.Store) Repository { return &repo{store: s} }

func (r *repo) GetOrCreate(ctx context.Context, name string) (*Tag, error) {
	return GetOrCreate(r.store.Base.WithContext(ctx), name)
}

// GetOrCreate resolves a tag by exact name, inserting it when absent.
// Operates on a plain handle so it also runs inside edit transactions.
func GetOrCreate(tx *gorm.DB, name string) (*Tag, error) {
	var t Tag
	err := tx.First(&t, "name = ?", name).Error
	if err == nil {
		return &t, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return insertOrReuse(tx, name)
}

// insertOrReuse inserts with ON CONFLICT DO NOTHING so losing a race on
// the unique name index is not an error. A plain insert failure would
// abort the surrounding transaction on Postgres and take the whole edit
// down with it. When the insert was a no-op the winner's row is
// re-selected and used instead.
func insertOrReuse(tx *gorm.DB, name string) (*Tag, error) {
	t := Tag{ID: uuid.NewString(), Name: name}
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&t)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		var won Tag
		if err := tx.First(&won, "name = ?", name).Error; err != nil {
			return nil, err
		}
		return &won, nil
	}
	metrics.TagCreates.Inc()
	return &t, nil
}

func (r *repo) FindIDsMatching(ctx context.Context, substr string) ([]string, error) {
	var ids []string
	err := r.store.Base.WithContext(ctx).
		Model(&Tag{}).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(substr)+"%").
		Pluck("id", &ids).Error
	return ids, err
}
