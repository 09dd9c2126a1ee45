package like_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/Upadhyay76/Chitrashala/internal/like"
	"github.com/Upadhyay76/Chitrashala/internal/shared/db/dbtest"
)

func TestLikePostIsIdempotent(t *testing.T) {
	store := dbtest.New(t)
	svc := like.NewService(like.NewRepository(store))
	ctx := context.Background()
	userID, postID := uuid.NewString(), uuid.NewString()

	n, err := svc.LikePost(ctx, userID, postID)
	if err != nil {
		t.Fatalf("like: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected count 1, got %d", n)
	}

	n, err = svc.LikePost(ctx, userID, postID)
	if err != nil {
		t.Fatalf("repeat like: %v", err)
	}
	if n != 1 {
		t.Fatalf("duplicate like changed count to %d", n)
	}
}

func TestUnlikePost(t *testing.T) {
	store := dbtest.New(t)
	svc := like.NewService(like.NewRepository(store))
	ctx := context.Background()
	userID, postID := uuid.NewString(), uuid.NewString()

	if _, err := svc.LikePost(ctx, userID, postID); err != nil {
		t.Fatalf("like: %v", err)
	}
	n, err := svc.UnlikePost(ctx, userID, postID)
	if err != nil {
		t.Fatalf("unlike: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected count 0, got %d", n)
	}
}

func TestPostAndCommentLikesAreIndependent(t *testing.T) {
	store := dbtest.New(t)
	svc := like.NewService(like.NewRepository(store))
	ctx := context.Background()
	userID := uuid.NewString()
	postID, commentID := uuid.NewString(), uuid.NewString()

	if _, err := svc.LikePost(ctx, userID, postID); err != nil {
		t.Fatalf("like post: %v", err)
	}
	n, err := svc.LikeComment(ctx, userID, commentID)
	if err != nil {
		t.Fatalf("like comment: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected comment like count 1, got %d", n)
	}

	// Every row targets exactly one of post or comment, never both.
	var both int64
	if err := store.Base.Model(&like.Like{}).
		Where("post_id IS NOT NULL AND comment_id IS NOT NULL").
		Count(&both).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if both != 0 {
		t.Fatalf("found %d rows targeting both post and comment", both)
	}
}
