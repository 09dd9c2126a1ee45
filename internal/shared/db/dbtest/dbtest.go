// Package dbtest opens throwaway in-memory SQLite stores for package
// tests, with the same schema and error translation as production.
package dbtest

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Upadhyay76/Chitrashala/internal/migrate"
	"github.com/Upadhyay76/Chitrashala/internal/shared/db"
)

// New returns a migrated store backed by a database unique to the test.
// cache=shared keeps every pooled connection on the same database.
func New(t *testing.T) *db.Store {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	base, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	store := &db.Store{Base: base}
	if err := migrate.AutoMigrateAll(store); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := base.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return store
}
