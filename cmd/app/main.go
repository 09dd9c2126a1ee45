package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"github.com/Upadhyay76/Chitrashala/configs"
	"github.com/Upadhyay76/Chitrashala/internal/comment"
	"github.com/Upadhyay76/Chitrashala/internal/follow"
	"github.com/Upadhyay76/Chitrashala/internal/like"
	"github.com/Upadhyay76/Chitrashala/internal/metrics"
	"github.com/Upadhyay76/Chitrashala/internal/migrate"
	"github.com/Upadhyay76/Chitrashala/internal/post"
	"github.com/Upadhyay76/Chitrashala/internal/ratelimit"
	"github.com/Upadhyay76/Chitrashala/internal/shared/db"
	"github.com/Upadhyay76/Chitrashala/internal/shared/httpx"
	"github.com/Upadhyay76/Chitrashala/internal/user"
	"github.com/Upadhyay76/Chitrashala/pkg/di"
)

func initOTEL(ctx context.Context, cfg *configs.Config) func(context.Context) error {
	if cfg.OTLPEndpoint == "" {
		return func(context.Context) error { return nil }
	}
	exp, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(cfg.OTLPEndpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		logrus.Fatalf("otel exporter: %v", err)
	}
	res, _ := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName("chitrashala"),
	))
	tp := trace.NewTracerProvider(trace.WithBatcher(exp), trace.WithResource(res))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))
	return tp.Shutdown
}

func buildMux(c *di.Container, limiter *ratelimit.Limiter) *http.ServeMux {
	postH := post.NewHandler(c.PostService)
	commentH := comment.NewHandler(c.CommentService)
	likeH := like.NewHandler(c.LikeService)
	followH := follow.NewHandler(c.FollowService)
	userH := user.NewHandler(c.UserService)

	open := func(fn httpx.HandlerFunc) http.Handler { return httpx.Wrap(fn) }
	authed := func(fn httpx.HandlerFunc) http.Handler {
		return httpx.AuthMiddleware(c.Verifier, httpx.Wrap(fn))
	}
	limited := func(fn httpx.HandlerFunc) http.Handler {
		return httpx.AuthMiddleware(c.Verifier,
			limiter.LimitHTTP(30, time.Minute, httpx.Wrap(fn)))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.Handle("GET /api/posts", open(postH.ListPublic))
	mux.Handle("GET /api/posts/search", open(postH.Search))
	mux.Handle("GET /api/posts/{post_id}", open(postH.GetByID))
	mux.Handle("GET /api/me/posts", authed(postH.ListOwn))
	mux.Handle("POST /api/posts", limited(postH.Create))
	mux.Handle("PUT /api/posts/{post_id}", limited(postH.Edit))

	mux.Handle("POST /api/posts/{post_id}/comments", authed(commentH.Create))
	mux.Handle("GET /api/posts/{post_id}/comments", open(commentH.ListByPost))
	mux.Handle("DELETE /api/comments/{comment_id}", authed(commentH.Delete))

	mux.Handle("POST /api/posts/{post_id}/like", authed(likeH.LikePost))
	mux.Handle("DELETE /api/posts/{post_id}/like", authed(likeH.UnlikePost))
	mux.Handle("POST /api/comments/{comment_id}/like", authed(likeH.LikeComment))
	mux.Handle("DELETE /api/comments/{comment_id}/like", authed(likeH.UnlikeComment))

	mux.Handle("POST /api/users/{user_id}/follow", authed(followH.Follow))
	mux.Handle("DELETE /api/users/{user_id}/follow", authed(followH.Unfollow))
	mux.Handle("GET /api/users/{user_id}", open(userH.GetProfile))
	mux.Handle("GET /api/users/{user_id}/followers", open(followH.Followers))
	mux.Handle("GET /api/users/{user_id}/following", open(followH.Following))

	return mux
}

func main() {
	cfg := configs.LoadConfig()
	if cfg.Env == "prod" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	ctx := context.Background()
	shutdownOTEL := initOTEL(ctx, cfg)

	store, err := db.Open(cfg.DSN())
	if err != nil {
		logrus.Fatalf("db: %v", err)
	}
	if err := migrate.AutoMigrateAll(store); err != nil {
		logrus.Fatalf("migrate: %v", err)
	}

	container := di.Build(cfg, store)
	defer container.Producer.Close()

	var limiter *ratelimit.Limiter
	if cfg.RedisAddr != "" {
		limiter = ratelimit.New(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	}

	mux := buildMux(container, limiter)

	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           300,
	}).Handler(metrics.Middleware(mux))
	handler = otelhttp.NewHandler(handler, "http.server")

	server := &http.Server{
		Addr:              cfg.AppPort,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logrus.WithField("addr", cfg.AppPort).Info("listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)
	_ = shutdownOTEL(shutdownCtx)
}
