package http

import (
	"fmt"
	stdhttp "net/http"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"socialnet/internal/config"
	"socialnet/internal/database"
	"socialnet/internal/handler"
	"socialnet/internal/monitoring"
	"socialnet/internal/repository"
	"socialnet/internal/service"
)

// Run loads configuration, connects to the database, wires every layer
// together and starts the HTTP server.
func Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.LogLevel != "" {
		level, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			log.WithField("log_level", cfg.LogLevel).Warn("Unknown log level, using info")
		} else {
			log.SetLevel(level)
		}
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	monitoring.Register(prometheus.DefaultRegisterer)

	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)

	userService := service.NewUserService(userRepo, followRepo)
	authService := service.NewAuthService(refreshTokenRepo, cfg)
	followService := service.NewFollowService(followRepo, userRepo)
	feedService := service.NewFeedService(followRepo, postRepo)
	postService := service.NewPostService(postRepo, cfg.PermissiveDeletes)
	commentService := service.NewCommentService(commentRepo, postRepo, cfg.PermissiveDeletes)
	likeService := service.NewLikeService(likeRepo, postRepo)

	router := NewRouter(RouterConfig{
		AuthHandler:    handler.NewAuthHandler(userService, authService),
		UserHandler:    handler.NewUserHandler(userService),
		FollowHandler:  handler.NewFollowHandler(followService),
		FeedHandler:    handler.NewFeedHandler(feedService),
		PostHandler:    handler.NewPostHandler(postService),
		CommentHandler: handler.NewCommentHandler(commentService),
		LikeHandler:    handler.NewLikeHandler(likeService),
		JWTSecret:      cfg.JWTSecret,
	})

	addr := ":" + cfg.ServerPort
	log.WithField("addr", addr).Info("Starting server")

	return stdhttp.ListenAndServe(addr, router)
}
