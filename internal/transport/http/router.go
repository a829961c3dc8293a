package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"socialnet/internal/handler"
	"socialnet/internal/httputil"
	"socialnet/internal/monitoring"
	authmw "socialnet/internal/transport/http/middleware"
)

// RouterConfig holds the dependencies needed to create routes
type RouterConfig struct {
	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	FollowHandler  *handler.FollowHandler
	FeedHandler    *handler.FeedHandler
	PostHandler    *handler.PostHandler
	CommentHandler *handler.CommentHandler
	LikeHandler    *handler.LikeHandler
	JWTSecret      string
}

// NewRouter creates and configures a new Chi router with all route groups
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(monitoring.Middleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, 200, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", cfg.AuthHandler.Register)
		r.Post("/login", cfg.AuthHandler.Login)
		r.Post("/refresh", cfg.AuthHandler.Refresh)

		r.Group(func(r chi.Router) {
			r.Use(authmw.AuthMiddleware(cfg.JWTSecret))
			r.Get("/profile", cfg.AuthHandler.Profile)
			r.Post("/logout", cfg.AuthHandler.Logout)
			r.Post("/logout-all", cfg.AuthHandler.LogoutAll)
		})
	})

	r.Route("/api/users", func(r chi.Router) {
		r.Use(authmw.AuthMiddleware(cfg.JWTSecret))

		r.Post("/search", cfg.UserHandler.Search)
		r.Get("/profile/{id}", cfg.UserHandler.GetProfile)
		r.Put("/profile", cfg.UserHandler.UpdateProfile)
		r.Get("/{id}", cfg.UserHandler.GetByID)

		r.Post("/follow/{id}", cfg.FollowHandler.Follow)
		r.Delete("/unfollow/{id}", cfg.FollowHandler.Unfollow)
		r.Get("/following/{id}", cfg.FollowHandler.GetFollowing)
		r.Get("/followers/{id}", cfg.FollowHandler.GetFollowers)
		r.Get("/stats/{id}", cfg.FollowHandler.GetStats)
	})

	r.Route("/api/posts", func(r chi.Router) {
		r.Use(authmw.AuthMiddleware(cfg.JWTSecret))

		r.Post("/", cfg.PostHandler.Create)
		r.Get("/my", cfg.PostHandler.GetMyPosts)
		r.Get("/feed", cfg.FeedHandler.GetFeed)
		r.Get("/post/{post_id}", cfg.PostHandler.GetByID)
		r.Get("/user/{user_id}", cfg.PostHandler.GetUserPosts)
		r.Get("/search/{search}", cfg.PostHandler.Search)
		r.Put("/{post_id}", cfg.PostHandler.Update)
		r.Delete("/{post_id}", cfg.PostHandler.Delete)
	})

	r.Route("/api/likes", func(r chi.Router) {
		r.Use(authmw.AuthMiddleware(cfg.JWTSecret))

		r.Post("/{post_id}", cfg.LikeHandler.Like)
		r.Delete("/{post_id}", cfg.LikeHandler.Unlike)
		r.Get("/post/{post_id}", cfg.LikeHandler.GetPostLikes)
		r.Get("/user/{user_id}", cfg.LikeHandler.GetUserLikes)
	})

	r.Route("/api/comments", func(r chi.Router) {
		r.Use(authmw.AuthMiddleware(cfg.JWTSecret))

		r.Post("/", cfg.CommentHandler.Create)
		r.Get("/post/{post_id}", cfg.CommentHandler.GetPostComments)
		r.Get("/{comment_id}", cfg.CommentHandler.GetByID)
		r.Put("/{comment_id}", cfg.CommentHandler.Update)
		r.Delete("/{comment_id}", cfg.CommentHandler.Delete)
	})

	return r
}
