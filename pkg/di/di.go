package di

import (
	"github.com/Upadhyay76/Chitrashala/configs"
	"github.com/Upadhyay76/Chitrashala/internal/auth"
	"github.com/Upadhyay76/Chitrashala/internal/comment"
	"github.com/Upadhyay76/Chitrashala/internal/events"
	"github.com/Upadhyay76/Chitrashala/internal/follow"
	"github.com/Upadhyay76/Chitrashala/internal/like"
	"github.com/Upadhyay76/Chitrashala/internal/post"
	"github.com/Upadhyay76/Chitrashala/internal/shared/db"
	"github.com/Upadhyay76/Chitrashala/internal/tag"
	"github.com/Upadhyay76/Chitrashala/internal/user"
)

type Container struct {
	Store          *db.Store
	Verifier       *auth.Verifier
	Producer       events.Producer
	UserService    user.Service
	PostService    post.Service
	TagService     tag.Service
	CommentService comment.Service
	LikeService    like.Service
	FollowService  follow.Service
}

// Build wires repositories and services over one shared store. Kafka is
// optional; without a broker the post service publishes to a no-op sink.
func Build(cfg *configs.Config, store *db.Store) *Container {
	var producer events.Producer = events.Nop{}
	if cfg.KafkaBrokerURL != "" {
		producer = events.NewKafkaProducer(cfg.KafkaBrokerURL, cfg.KafkaTopic)
	}

	userRepo := user.NewRepository(store)
	tagRepo := tag.NewRepository(store)
	postRepo := post.NewRepository(store)
	commentRepo := comment.NewRepository(store)
	likeRepo := like.NewRepository(store)
	followRepo := follow.NewRepository(store)

	return &Container{
		Store:          store,
		Verifier:       auth.NewVerifier(store, cfg.JWTSecret),
		Producer:       producer,
		UserService:    user.NewService(userRepo),
		PostService:    post.NewService(postRepo, tagRepo, producer),
		TagService:     tag.NewService(tagRepo),
		CommentService: comment.NewService(commentRepo),
		LikeService:    like.NewService(likeRepo),
		FollowService:  follow.NewService(followRepo, userRepo),
	}
}
