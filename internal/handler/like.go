package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"socialnet/internal/httputil"
	"socialnet/internal/model"
	"socialnet/internal/service"
	"socialnet/internal/transport/http/middleware"
)

type LikeHandler struct {
	likeService *service.LikeService
}

func NewLikeHandler(likeService *service.LikeService) *LikeHandler {
	return &LikeHandler{
		likeService: likeService,
	}
}

// Like handles POST /api/likes/{post_id}
func (h *LikeHandler) Like(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	postID, err := strconv.ParseInt(chi.URLParam(r, "post_id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	like, err := h.likeService.Like(r.Context(), postID, userID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrPostNotFound):
			httputil.WriteNotFound(w, "Post not found")
		case errors.Is(err, model.ErrAlreadyLiked):
			httputil.WriteConflict(w, "Post already liked")
		default:
			log.WithError(err).Error("Like handler failed")
			httputil.WriteInternalError(w, "Failed to like post")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Post liked successfully",
		"like":    like,
	})
}

// Unlike handles DELETE /api/likes/{post_id}. A missing like is not an error:
// the response carries a null like.
func (h *LikeHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	postID, err := strconv.ParseInt(chi.URLParam(r, "post_id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	like, err := h.likeService.Unlike(r.Context(), postID, userID)
	if err != nil {
		log.WithError(err).Error("Unlike handler failed")
		httputil.WriteInternalError(w, "Failed to unlike post")
		return
	}

	message := "Post unliked successfully"
	if like == nil {
		message = "Nothing to unlike"
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": message,
		"like":    like,
	})
}

// GetPostLikes handles GET /api/likes/post/{post_id}
func (h *LikeHandler) GetPostLikes(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "post_id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	likes, err := h.likeService.GetPostLikes(r.Context(), postID)
	if err != nil {
		log.WithError(err).Error("GetPostLikes handler failed")
		httputil.WriteInternalError(w, "Failed to get likes")
		return
	}
	if likes == nil {
		likes = []model.Like{}
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"likes": likes,
		"count": len(likes),
	})
}

// GetUserLikes handles GET /api/likes/user/{user_id}
func (h *LikeHandler) GetUserLikes(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}

	likes, err := h.likeService.GetUserLikes(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("GetUserLikes handler failed")
		httputil.WriteInternalError(w, "Failed to get likes")
		return
	}
	if likes == nil {
		likes = []model.Like{}
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"likes": likes,
		"count": len(likes),
	})
}
