// Seeds the database with fake users, posts, tags, comments, likes and
// follows for local development.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Upadhyay76/Chitrashala/configs"
	"github.com/Upadhyay76/Chitrashala/internal/comment"
	"github.com/Upadhyay76/Chitrashala/internal/migrate"
	"github.com/Upadhyay76/Chitrashala/internal/post"
	"github.com/Upadhyay76/Chitrashala/internal/shared/db"
	"github.com/Upadhyay76/Chitrashala/internal/user"
	"github.com/Upadhyay76/Chitrashala/pkg/di"
)

const (
	numUsers        = 10
	postsPerUser    = 5
	commentsPerPost = 3
)

var tagPool = []string{
	"nature", "sunset", "portrait", "street", "travel",
	"food", "macro", "night", "architecture", "wildlife",
}

func main() {
	gofakeit.Seed(time.Now().UnixNano())

	cfg := configs.LoadConfig()
	store, err := db.Open(cfg.DSN())
	if err != nil {
		logrus.Fatalf("db: %v", err)
	}
	if err := migrate.AutoMigrateAll(store); err != nil {
		logrus.Fatalf("migrate: %v", err)
	}
	c := di.Build(cfg, store)
	ctx := context.Background()

	users := make([]user.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		img := gofakeit.ImageURL(200, 200)
		u := user.User{
			ID:            uuid.NewString(),
			Name:          gofakeit.Name(),
			Email:         gofakeit.Email(),
			EmailVerified: true,
			Image:         &img,
		}
		if err := store.Base.Create(&u).Error; err != nil {
			logrus.Fatalf("user: %v", err)
		}
		users = append(users, u)
	}
	logrus.WithField("count", len(users)).Info("users created")

	var postIDs []string
	for _, u := range users {
		for i := 0; i < postsPerUser; i++ {
			kind := post.TypeImage
			if rand.Intn(4) == 0 {
				kind = post.TypeVideo
			}
			visibility := post.VisibilityPublic
			if rand.Intn(5) == 0 {
				visibility = post.VisibilityPrivate
			}
			desc := gofakeit.Sentence(12)
			v, err := c.PostService.Create(ctx, u.ID, post.CreateReq{
				Type:        kind,
				Title:       gofakeit.BookTitle(),
				Description: &desc,
				MediaURL:    gofakeit.ImageURL(1200, 800),
				Visibility:  visibility,
				Tags:        pickTags(),
			})
			if err != nil {
				logrus.Fatalf("post: %v", err)
			}
			postIDs = append(postIDs, v.ID)
		}
	}
	logrus.WithField("count", len(postIDs)).Info("posts created")

	for _, pid := range postIDs {
		for i := 0; i < commentsPerPost; i++ {
			author := users[rand.Intn(len(users))]
			_, err := c.CommentService.Create(ctx, author.ID, pid, comment.CreateReq{
				Content: gofakeit.Sentence(8),
			})
			if err != nil {
				logrus.Fatalf("comment: %v", err)
			}
		}
		for i := 0; i < rand.Intn(5); i++ {
			liker := users[rand.Intn(len(users))]
			if _, err := c.LikeService.LikePost(ctx, liker.ID, pid); err != nil {
				logrus.Fatalf("like: %v", err)
			}
		}
	}

	for _, u := range users {
		target := users[rand.Intn(len(users))]
		if target.ID == u.ID {
			continue
		}
		if err := c.FollowService.Follow(ctx, u.ID, target.ID); err != nil {
			logrus.Fatalf("follow: %v", err)
		}
	}

	fmt.Println("seeding done")
}

func pickTags() []string {
	n := 1 + rand.Intn(3)
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, tagPool[rand.Intn(len(tagPool))])
	}
	return out
}
