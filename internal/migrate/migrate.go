package migrate

import (
	"github.com/Upadhyay76/Chitrashala/internal/auth"
	"github.com/Upadhyay76/Chitrashala/internal/comment"
	"github.com/Upadhyay76/Chitrashala/internal/follow"
	"github.com/Upadhyay76/Chitrashala/internal/like"
	"github.com/Upadhyay76/Chitrashala/internal/post"
	"github.com/Upadhyay76/Chitrashala/internal/shared/db"
	"github.com/Upadhyay76/Chitrashala/internal/tag"
	"github.com/Upadhyay76/Chitrashala/internal/user"
)

func AutoMigrateAll(store *db.Store) error {
	return store.Base.AutoMigrate(
		&user.User{},
		&auth.Session{},
		&auth.Account{},
		&auth.Verification{},
		&post.Post{},
		&tag.Tag{},
		&post.PostToTag{},
		&comment.Comment{},
		&like.Like{},
		&follow.Follow{},
	)
}
